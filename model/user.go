package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User documents are keyed by email in the users collection.
type User struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Password  string    `firestore:"password" json:"-"`
	Role      string    `firestore:"role" json:"role"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
