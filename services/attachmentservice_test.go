package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"opsboard/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage records uploads and removals, failing any path listed in
// failOn.
type fakeStorage struct {
	uploads []string
	removed []string
	failOn  map[string]bool
	uploadN int
	failNth int // fail the Nth upload (1-based) when set
}

func (f *fakeStorage) Upload(_ context.Context, bucket, path string, data []byte, _ string) (*UploadResult, error) {
	f.uploadN++
	if f.failNth != 0 && f.uploadN == f.failNth {
		return nil, errors.New("upload failed")
	}
	if f.failOn[path] {
		return nil, errors.New("upload failed")
	}
	f.uploads = append(f.uploads, path)
	return &UploadResult{
		Path: path,
		URL:  fmt.Sprintf("https://storage.example.com/%s/%s", bucket, path),
	}, nil
}

func (f *fakeStorage) Remove(_ context.Context, _ string, path string) error {
	if f.failOn[path] {
		return errors.New("remove failed")
	}
	f.removed = append(f.removed, path)
	return nil
}

func TestObjectPathFormat(t *testing.T) {
	path := ObjectPath("user-1", "report.pdf")
	assert.Regexp(t, regexp.MustCompile(`^user-1/\d+_report\.pdf$`), path)
}

func TestResolveAttachmentsKeepsStoredFiles(t *testing.T) {
	storage := &fakeStorage{}

	resolved := ResolveAttachments(context.Background(), storage, "u1", []PendingAttachment{
		{URL: "https://x/old.png", Path: "u1/1_old.png", Name: "old.png"},
	})

	require.Len(t, resolved, 1)
	assert.Equal(t, "u1/1_old.png", resolved[0].Path, "kept attachments retain their stored path")
	assert.Empty(t, storage.uploads, "nothing re-uploaded")
}

func TestResolveAttachmentsUploadsNewOnesAfterKept(t *testing.T) {
	storage := &fakeStorage{}

	resolved := ResolveAttachments(context.Background(), storage, "u1", []PendingAttachment{
		{Name: "new.png", Data: []byte("png"), ContentType: "image/png"},
		{URL: "https://x/old.png", Path: "u1/1_old.png", Name: "old.png"},
	})

	require.Len(t, resolved, 2)
	assert.Equal(t, "old.png", resolved[0].Name, "kept files come first")
	assert.Equal(t, "new.png", resolved[1].Name)
	assert.NotEmpty(t, resolved[1].Path, "new files gain a freshly generated path")
	assert.Len(t, storage.uploads, 1)
}

func TestResolveAttachmentsDropsFailedUploads(t *testing.T) {
	storage := &fakeStorage{failNth: 1}

	resolved := ResolveAttachments(context.Background(), storage, "u1", []PendingAttachment{
		{Name: "bad.png", Data: []byte("x")},
		{Name: "good.png", Data: []byte("y")},
	})

	require.Len(t, resolved, 1, "failure drops only the failed file")
	assert.Equal(t, "good.png", resolved[0].Name)
}

func TestResolveAttachmentsDropsRemovedFiles(t *testing.T) {
	storage := &fakeStorage{}

	// The caller simply omits removed attachments from the submitted list.
	resolved := ResolveAttachments(context.Background(), storage, "u1", nil)
	assert.Empty(t, resolved)
}

func TestRemoveAttachmentsContinuesPastFailures(t *testing.T) {
	storage := &fakeStorage{failOn: map[string]bool{"u1/2_b.png": true}}

	RemoveAttachments(context.Background(), storage, []model.Attachment{
		{Path: "u1/1_a.png"},
		{Path: "u1/2_b.png"},
		{Path: "u1/3_c.png"},
		{Path: ""},
	})

	assert.Equal(t, []string{"u1/1_a.png", "u1/3_c.png"}, storage.removed)
}
