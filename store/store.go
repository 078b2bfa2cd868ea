// Package store mirrors the six backend collections in memory. Each mirror
// is replaced wholesale whenever the backend emits a snapshot, so readers
// always see a full, recent copy of a collection in backend order.
package store

import (
	"sort"
	"strings"
	"sync"

	"opsboard/model"
)

type Store struct {
	mu         sync.RWMutex
	tasks      []model.Task
	notes      []model.Note
	documents  []model.Document
	stockTypes []model.StockType
	stockItems []model.StockItem
	users      []model.User
}

func New() *Store {
	return &Store{}
}

func (s *Store) ReplaceTasks(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
}

func (s *Store) ReplaceNotes(notes []model.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
}

func (s *Store) ReplaceDocuments(docs []model.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = docs
}

func (s *Store) ReplaceStockTypes(types []model.StockType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stockTypes = types
}

func (s *Store) ReplaceStockItems(items []model.StockItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stockItems = items
}

// ReplaceUsers re-sorts by display name, falling back to email. The other
// mirrors keep backend order.
func (s *Store) ReplaceUsers(users []model.User) {
	sorted := append([]model.User(nil), users...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(displayName(sorted[i])) < strings.ToLower(displayName(sorted[j]))
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = sorted
}

func displayName(u model.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Task(nil), s.tasks...)
}

func (s *Store) Notes() []model.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Note(nil), s.notes...)
}

func (s *Store) Documents() []model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Document(nil), s.documents...)
}

func (s *Store) StockTypes() []model.StockType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.StockType(nil), s.stockTypes...)
}

func (s *Store) StockItems() []model.StockItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.StockItem(nil), s.stockItems...)
}

func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

func (s *Store) Task(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (s *Store) Note(id string) (model.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return model.Note{}, false
}

func (s *Store) Document(id string) (model.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.documents {
		if d.ID == id {
			return d, true
		}
	}
	return model.Document{}, false
}

func (s *Store) StockType(id string) (model.StockType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.stockTypes {
		if t.ID == id {
			return t, true
		}
	}
	return model.StockType{}, false
}

func (s *Store) StockItem(id string) (model.StockItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, i := range s.stockItems {
		if i.ID == id {
			return i, true
		}
	}
	return model.StockItem{}, false
}

// IsAdmin reads the user's current role from the live users mirror, so role
// changes take effect without a new session.
func (s *Store) IsAdmin(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u.IsAdmin()
		}
	}
	return false
}
