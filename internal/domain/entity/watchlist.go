package entity

import (
	"time"
)

// WatchlistEntry marks a game a user intends to revisit. The document id
// is derived from (userEmail, gameTitle), which makes the pair unique at
// the storage layer.
type WatchlistEntry struct {
	ID        string    `json:"id" firestore:"id"`
	UserEmail string    `json:"user_email" firestore:"userEmail"`
	GameTitle string    `json:"game_title" firestore:"gameTitle"`
	AddedAt   time.Time `json:"added_at" firestore:"addedAt"`
}
