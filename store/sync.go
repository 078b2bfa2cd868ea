package store

import (
	"context"
	"log"

	"opsboard/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sync opens one snapshot listener per collection. Each listener replaces its
// mirror on every emitted snapshot and stops on error without retrying; the
// mirror then simply stops updating. Cancelling ctx ends all listeners.
func (s *Store) Sync(ctx context.Context, fb *firestore.Client) {
	go watchCollection(ctx, fb, "tasks", func(docs []*firestore.DocumentSnapshot) {
		s.ReplaceTasks(decodeTasks(docs))
	})
	go watchCollection(ctx, fb, "notes", func(docs []*firestore.DocumentSnapshot) {
		s.ReplaceNotes(decodeNotes(docs))
	})
	go watchCollection(ctx, fb, "documents", func(docs []*firestore.DocumentSnapshot) {
		s.ReplaceDocuments(decodeDocuments(docs))
	})
	go watchCollection(ctx, fb, "stockTypes", func(docs []*firestore.DocumentSnapshot) {
		s.ReplaceStockTypes(decodeStockTypes(docs))
	})
	go watchCollection(ctx, fb, "stockItems", func(docs []*firestore.DocumentSnapshot) {
		s.ReplaceStockItems(decodeStockItems(docs))
	})
	go watchCollection(ctx, fb, "users", func(docs []*firestore.DocumentSnapshot) {
		s.ReplaceUsers(decodeUsers(docs))
	})
}

func watchCollection(ctx context.Context, fb *firestore.Client, name string, apply func([]*firestore.DocumentSnapshot)) {
	iter := fb.Collection(name).Snapshots(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled {
				return
			}
			log.Printf("Error watching %s: %v", name, err)
			return
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			log.Printf("Error reading %s snapshot: %v", name, err)
			continue
		}
		apply(docs)
	}
}

// A document that fails to decode is logged and skipped; the rest of the
// snapshot still lands.
func decodeTasks(docs []*firestore.DocumentSnapshot) []model.Task {
	tasks := make([]model.Task, 0, len(docs))
	for _, doc := range docs {
		var t model.Task
		if err := doc.DataTo(&t); err != nil {
			log.Printf("Error parsing tasks document %s: %v", doc.Ref.ID, err)
			continue
		}
		t.ID = doc.Ref.ID
		tasks = append(tasks, t)
	}
	return tasks
}

func decodeNotes(docs []*firestore.DocumentSnapshot) []model.Note {
	notes := make([]model.Note, 0, len(docs))
	for _, doc := range docs {
		var n model.Note
		if err := doc.DataTo(&n); err != nil {
			log.Printf("Error parsing notes document %s: %v", doc.Ref.ID, err)
			continue
		}
		n.ID = doc.Ref.ID
		notes = append(notes, n)
	}
	return notes
}

func decodeDocuments(docs []*firestore.DocumentSnapshot) []model.Document {
	records := make([]model.Document, 0, len(docs))
	for _, doc := range docs {
		var d model.Document
		if err := doc.DataTo(&d); err != nil {
			log.Printf("Error parsing documents document %s: %v", doc.Ref.ID, err)
			continue
		}
		d.ID = doc.Ref.ID
		records = append(records, d)
	}
	return records
}

func decodeStockTypes(docs []*firestore.DocumentSnapshot) []model.StockType {
	types := make([]model.StockType, 0, len(docs))
	for _, doc := range docs {
		var t model.StockType
		if err := doc.DataTo(&t); err != nil {
			log.Printf("Error parsing stockTypes document %s: %v", doc.Ref.ID, err)
			continue
		}
		t.ID = doc.Ref.ID
		types = append(types, t)
	}
	return types
}

func decodeStockItems(docs []*firestore.DocumentSnapshot) []model.StockItem {
	items := make([]model.StockItem, 0, len(docs))
	for _, doc := range docs {
		var i model.StockItem
		if err := doc.DataTo(&i); err != nil {
			log.Printf("Error parsing stockItems document %s: %v", doc.Ref.ID, err)
			continue
		}
		i.ID = doc.Ref.ID
		items = append(items, i)
	}
	return items
}

func decodeUsers(docs []*firestore.DocumentSnapshot) []model.User {
	users := make([]model.User, 0, len(docs))
	for _, doc := range docs {
		var u model.User
		if err := doc.DataTo(&u); err != nil {
			log.Printf("Error parsing users document %s: %v", doc.Ref.ID, err)
			continue
		}
		u.ID = doc.Ref.ID
		users = append(users, u)
	}
	return users
}
