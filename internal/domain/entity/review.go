package entity

import (
	"time"
)

// Review is a user-submitted rating of a game in the catalog.
type Review struct {
	ID          string    `json:"id" firestore:"id"`
	GameTitle   string    `json:"game_title" firestore:"gameTitle"`
	GameCover   string    `json:"game_cover,omitempty" firestore:"gameCover,omitempty"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Rating      int       `json:"rating" firestore:"rating"`
	Year        int       `json:"year,omitempty" firestore:"year,omitempty"`
	Genre       string    `json:"genre,omitempty" firestore:"genre,omitempty"`
	UserEmail   string    `json:"user_email" firestore:"userEmail"`
	UserName    string    `json:"user_name,omitempty" firestore:"userName,omitempty"`
	UserPhoto   string    `json:"user_photo,omitempty" firestore:"userPhoto,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// UpdateResult reports how many documents an update touched. Updating a
// missing id yields a zero-matched result, not an error.
type UpdateResult struct {
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
}

// DeleteResult reports how many documents a delete removed.
type DeleteResult struct {
	DeletedCount int64 `json:"deleted_count"`
}
