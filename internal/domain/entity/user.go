package entity

import (
	"time"
)

// User is a profile document. Email is the business key: the users
// collection holds at most one document per email, and upserts are
// addressed by email rather than by a store-generated id.
type User struct {
	ID        string    `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	Name      string    `json:"name,omitempty" firestore:"name,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	JoinDate  time.Time `json:"join_date" firestore:"joinDate"`
	LastLogin time.Time `json:"last_login" firestore:"lastLogin"`
	Role      string    `json:"role" firestore:"role"`
}
