package model

import "time"

// StockType is a shelf-location category. Row runs 1-5, Col runs A-C; both
// are optional.
type StockType struct {
	ID          string    `firestore:"-" json:"id"`
	Name        string    `firestore:"name" json:"name"`
	Description string    `firestore:"description" json:"description"`
	Row         *int      `firestore:"row" json:"row,omitempty"`
	Col         *string   `firestore:"col" json:"col,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	CreatedBy   string    `firestore:"createdBy" json:"createdBy"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// StockItem carries a denormalized TypeName: it mirrors the type's name as of
// the item's last write, not the type's current name.
type StockItem struct {
	ID         string            `firestore:"-" json:"id"`
	Name       string            `firestore:"name" json:"name"`
	TypeID     string            `firestore:"typeId" json:"typeId"`
	TypeName   string            `firestore:"typeName" json:"typeName"`
	Quantity   int               `firestore:"quantity" json:"quantity"`
	Properties map[string]string `firestore:"properties" json:"properties"`
	Note       string            `firestore:"note" json:"note"`
	Available  *bool             `firestore:"available" json:"available"`
	CreatedAt  time.Time         `firestore:"createdAt" json:"createdAt"`
	CreatedBy  string            `firestore:"createdBy" json:"createdBy"`
}

// IsAvailable treats a missing flag as available, matching the reader-side
// definition "available != false".
func (i StockItem) IsAvailable() bool {
	return i.Available == nil || *i.Available
}
