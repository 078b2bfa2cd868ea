package services

import (
	"context"
	"errors"
	"testing"

	"opsboard/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadDocumentsPartialFailure(t *testing.T) {
	storage := &fakeStorage{failNth: 2}

	var saved []model.Document
	created := UploadDocuments(context.Background(), storage, "u1", []DocumentFile{
		{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("aaaa")},
		{Name: "b.pdf", ContentType: "application/pdf", Data: []byte("bb")},
	}, func(d model.Document) error {
		saved = append(saved, d)
		return nil
	})

	// The failed file produces no metadata record; the first still lands.
	require.Len(t, created, 1)
	require.Len(t, saved, 1)
	assert.Equal(t, "a.pdf", saved[0].Name)
	assert.Equal(t, int64(4), saved[0].Size)
	assert.Equal(t, "application/pdf", saved[0].Type)
	assert.Equal(t, "u1", saved[0].UserID)
}

func TestUploadDocumentsSaveFailureSkipsRecord(t *testing.T) {
	storage := &fakeStorage{}

	created := UploadDocuments(context.Background(), storage, "u1", []DocumentFile{
		{Name: "a.pdf", Data: []byte("x")},
	}, func(model.Document) error {
		return errors.New("write failed")
	})

	// The object is already in storage but no record exists: the orphan is
	// accepted, not rolled back.
	assert.Empty(t, created)
	assert.Len(t, storage.uploads, 1)
}

func TestSearchDocuments(t *testing.T) {
	docs := []model.Document{
		{ID: "D1", Name: "Quarterly Report.pdf", Type: "application/pdf"},
		{ID: "D2", Name: "logo.png", Type: "image/png"},
		{ID: "D3", Name: "notes.txt", Type: "text/plain"},
	}

	assert.Len(t, SearchDocuments(docs, "report"), 1, "name match is case-insensitive")
	assert.Len(t, SearchDocuments(docs, "image/"), 1, "MIME type matches too")
	assert.Len(t, SearchDocuments(docs, "pdf"), 1, "matches either field")
	assert.Equal(t, docs, SearchDocuments(docs, ""))
	assert.Empty(t, SearchDocuments(docs, "spreadsheet"))
}
