package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/storage"
)

// Storage bucket names.
const (
	BucketTaskImages = "task-images"
	BucketDocuments  = "documents"
)

type UploadResult struct {
	Path string
	URL  string
}

// ObjectStorage is the file-storage collaborator. Both methods are used
// best-effort: a failed upload drops the file, a failed remove leaves the
// object behind.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (*UploadResult, error)
	Remove(ctx context.Context, bucket, path string) error
}

// ObjectPath builds the storage key for an upload: the uploader's id, a
// millisecond timestamp, and the original file name.
func ObjectPath(uploaderID, name string) string {
	return fmt.Sprintf("%s/%d_%s", uploaderID, time.Now().UnixMilli(), name)
}

// CloudStorage talks to the Cloud Storage buckets behind the dashboard. An
// optional STORAGE_BUCKET_PREFIX maps the logical bucket names onto the
// project's real bucket names.
type CloudStorage struct {
	client *storage.Client
	prefix string
}

func NewCloudStorage(client *storage.Client) *CloudStorage {
	return &CloudStorage{
		client: client,
		prefix: os.Getenv("STORAGE_BUCKET_PREFIX"),
	}
}

func (s *CloudStorage) bucketName(bucket string) string {
	return s.prefix + bucket
}

func (s *CloudStorage) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (*UploadResult, error) {
	name := s.bucketName(bucket)
	w := s.client.Bucket(name).Object(path).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=3600"

	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return &UploadResult{
		Path: path,
		URL:  fmt.Sprintf("https://storage.googleapis.com/%s/%s", name, path),
	}, nil
}

func (s *CloudStorage) Remove(ctx context.Context, bucket, path string) error {
	return s.client.Bucket(s.bucketName(bucket)).Object(path).Delete(ctx)
}
