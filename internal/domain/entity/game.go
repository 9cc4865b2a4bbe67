package entity

import (
	"time"
)

// Game is a catalog entry. Price 0 means free.
type Game struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	CoverImage  string    `json:"cover_image,omitempty" firestore:"coverImage,omitempty"`
	Genre       []string  `json:"genre,omitempty" firestore:"genre,omitempty"`
	ReleaseYear int       `json:"release_year,omitempty" firestore:"releaseYear,omitempty"`
	Developer   string    `json:"developer,omitempty" firestore:"developer,omitempty"`
	Platforms   []string  `json:"platforms,omitempty" firestore:"platforms,omitempty"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Rating      float64   `json:"rating,omitempty" firestore:"rating,omitempty"`
	Price       float64   `json:"price" firestore:"price"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
