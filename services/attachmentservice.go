package services

import (
	"context"
	"log"

	"opsboard/model"
)

// PendingAttachment is an attachment as submitted with a task: either a file
// already in storage (Path set, no Data) or a new upload carried as bytes.
type PendingAttachment struct {
	URL         string
	Path        string
	Name        string
	Data        []byte
	ContentType string
}

func (a PendingAttachment) NeedsUpload() bool {
	return len(a.Data) > 0
}

// ResolveAttachments turns the submitted attachment list into the stored one:
// attachments already in storage keep their path, new ones are uploaded under
// a fresh path and appended after the kept ones. An upload failure is logged
// and that attachment dropped; the rest of the list still goes through.
func ResolveAttachments(ctx context.Context, store ObjectStorage, uploaderID string, pending []PendingAttachment) []model.Attachment {
	resolved := []model.Attachment{}
	var uploads []PendingAttachment

	for _, a := range pending {
		if a.NeedsUpload() {
			uploads = append(uploads, a)
			continue
		}
		resolved = append(resolved, model.Attachment{URL: a.URL, Path: a.Path, Name: a.Name})
	}

	for _, a := range uploads {
		path := ObjectPath(uploaderID, a.Name)
		result, err := store.Upload(ctx, BucketTaskImages, path, a.Data, a.ContentType)
		if err != nil {
			log.Printf("Error uploading attachment %q: %v", a.Name, err)
			continue
		}
		resolved = append(resolved, model.Attachment{URL: result.URL, Path: result.Path, Name: a.Name})
	}

	return resolved
}

// RemoveAttachments deletes every attachment's stored file, continuing past
// per-file failures.
func RemoveAttachments(ctx context.Context, store ObjectStorage, attachments []model.Attachment) {
	for _, a := range attachments {
		if a.Path == "" {
			continue
		}
		if err := store.Remove(ctx, BucketTaskImages, a.Path); err != nil {
			log.Printf("Error deleting attachment %q: %v", a.Path, err)
		}
	}
}
