package model

import "time"

type Note struct {
	ID          string    `firestore:"-" json:"id"`
	Headline    string    `firestore:"headline" json:"headline"`
	Description string    `firestore:"description" json:"description"`
	UserID      string    `firestore:"userId" json:"userId"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}
