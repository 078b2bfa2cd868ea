package model

import (
	"time"
)

// Task statuses in board order.
const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusReview     = "Review"
	StatusDone       = "Done"
)

var TaskStatuses = []string{StatusToDo, StatusInProgress, StatusReview, StatusDone}

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Attachment is a file already placed in the task-images bucket.
type Attachment struct {
	URL  string `firestore:"url" json:"url"`
	Path string `firestore:"path" json:"path"`
	Name string `firestore:"name" json:"name"`
}

type Comment struct {
	Text      string    `firestore:"text" json:"text"`
	UserID    string    `firestore:"userId" json:"userId"`
	UserEmail string    `firestore:"userEmail" json:"userEmail"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
}

type Task struct {
	ID          string       `firestore:"-" json:"id"`
	Headline    string       `firestore:"headline" json:"headline"`
	Description string       `firestore:"description" json:"description"`
	Priority    string       `firestore:"priority" json:"priority"`
	Status      string       `firestore:"status" json:"status"`
	Deadline    *time.Time   `firestore:"deadline" json:"deadline,omitempty"`
	AssignedTo  string       `firestore:"assignedTo" json:"assignedTo"`
	CreatedBy   string       `firestore:"createdBy" json:"createdBy"`
	CreatedAt   time.Time    `firestore:"createdAt" json:"createdAt"`
	Attachments []Attachment `firestore:"attachments" json:"attachments"`
	Comments    []Comment    `firestore:"comments" json:"comments"`
}
