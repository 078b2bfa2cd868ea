package model

import "time"

// Document is the metadata record for a file stored in the documents bucket.
type Document struct {
	ID         string    `firestore:"-" json:"id"`
	Name       string    `firestore:"name" json:"name"`
	URL        string    `firestore:"url" json:"url"`
	Path       string    `firestore:"path" json:"path"`
	Size       int64     `firestore:"size" json:"size"`
	Type       string    `firestore:"type" json:"type"` // MIME type
	UploadedAt time.Time `firestore:"uploadedAt" json:"uploadedAt"`
	UserID     string    `firestore:"userId" json:"userId"`
}
