package services

import (
	"context"
	"log"
	"strings"
	"time"

	"opsboard/model"
)

// DocumentFile is one file from a multi-file upload.
type DocumentFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadDocuments runs the per-file upload pipeline: store the object, then
// write its metadata record through save. A failed upload or save is logged
// and that file skipped; the remaining files still go through, so a batch can
// partially succeed.
func UploadDocuments(ctx context.Context, store ObjectStorage, userID string, files []DocumentFile, save func(model.Document) error) []model.Document {
	created := []model.Document{}
	for _, f := range files {
		path := ObjectPath(userID, f.Name)
		result, err := store.Upload(ctx, BucketDocuments, path, f.Data, f.ContentType)
		if err != nil {
			log.Printf("Error uploading document %q: %v", f.Name, err)
			continue
		}

		doc := model.Document{
			Name:       f.Name,
			URL:        result.URL,
			Path:       result.Path,
			Size:       int64(len(f.Data)),
			Type:       f.ContentType,
			UploadedAt: time.Now(),
			UserID:     userID,
		}
		if err := save(doc); err != nil {
			log.Printf("Error saving document record %q: %v", f.Name, err)
			continue
		}
		created = append(created, doc)
	}
	return created
}

// SearchDocuments filters by case-insensitive substring match against the
// file name or MIME type. A blank term matches everything.
func SearchDocuments(docs []model.Document, term string) []model.Document {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return docs
	}

	matched := []model.Document{}
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(strings.ToLower(d.Type), term) {
			matched = append(matched, d)
		}
	}
	return matched
}
