package dto

// AttachmentRequest is either a file already in storage (Path set) or a new
// upload carried inline as base64 (Data set).
type AttachmentRequest struct {
	URL         string `json:"url"`
	Path        string `json:"path"`
	Name        string `json:"name"`
	Data        string `json:"data,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

type TaskRequest struct {
	Headline    string              `json:"headline" binding:"required"`
	Description string              `json:"description"`
	Priority    string              `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Status      string              `json:"status" binding:"omitempty,oneof='To Do' 'In Progress' Review Done"`
	Deadline    string              `json:"deadline"` // RFC3339, empty for none
	AssignedTo  string              `json:"assignedTo"`
	Attachments []AttachmentRequest `json:"attachments"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CommentEditRequest struct {
	Text string `json:"text" binding:"required"`
}
