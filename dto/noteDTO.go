package dto

type NoteRequest struct {
	Headline    string `json:"headline" binding:"required"`
	Description string `json:"description"`
}
