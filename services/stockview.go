package services

import (
	"strings"

	"opsboard/model"
)

// Stock availability filter values.
const (
	AvailabilityAll          = "all"
	AvailabilityAvailable    = "available"
	AvailabilityNotAvailable = "not_available"
)

// ScopeStockItems applies the type and availability filters. The result is
// the scoped set aggregates are computed over, before any text search.
func ScopeStockItems(items []model.StockItem, typeID, availability string) []model.StockItem {
	scoped := []model.StockItem{}
	for _, i := range items {
		if typeID != "" && typeID != "all" && i.TypeID != typeID {
			continue
		}
		switch availability {
		case AvailabilityAvailable:
			if !i.IsAvailable() {
				continue
			}
		case AvailabilityNotAvailable:
			if i.IsAvailable() {
				continue
			}
		}
		scoped = append(scoped, i)
	}
	return scoped
}

// SearchStockItems keeps items whose name, type name, note, or any "key
// value" property pair contains the term, case-insensitively.
func SearchStockItems(items []model.StockItem, term string) []model.StockItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	matched := []model.StockItem{}
	for _, i := range items {
		if stockItemMatches(i, term) {
			matched = append(matched, i)
		}
	}
	return matched
}

func stockItemMatches(item model.StockItem, term string) bool {
	if strings.Contains(strings.ToLower(item.Name), term) ||
		strings.Contains(strings.ToLower(item.TypeName), term) ||
		strings.Contains(strings.ToLower(item.Note), term) {
		return true
	}
	for k, v := range item.Properties {
		if strings.Contains(strings.ToLower(k+" "+v), term) {
			return true
		}
	}
	return false
}

// StockSummary holds the overview figures for a scoped item set. Available
// and NotAvailable are sums of quantity, not counts of items.
type StockSummary struct {
	Products             int `json:"products"`
	TotalQuantity        int `json:"totalQuantity"`
	AvailableQuantity    int `json:"availableQuantity"`
	NotAvailableQuantity int `json:"notAvailableQuantity"`
	OutOfStock           int `json:"outOfStock"`
}

func SummarizeStock(scoped []model.StockItem) StockSummary {
	var summary StockSummary
	summary.Products = len(scoped)
	for _, i := range scoped {
		summary.TotalQuantity += i.Quantity
		if i.IsAvailable() {
			summary.AvailableQuantity += i.Quantity
		} else {
			summary.NotAvailableQuantity += i.Quantity
		}
		if i.Quantity == 0 {
			summary.OutOfStock++
		}
	}
	return summary
}

// ClampQuantity applies a signed delta with a floor of zero and no ceiling.
func ClampQuantity(current, delta int) int {
	if next := current + delta; next > 0 {
		return next
	}
	return 0
}

// ResolveTypeName returns the current display name of the referenced type, or
// "" when the type is gone. Stored on the item so type renames show up
// without an item edit, but only as of the item's last write.
func ResolveTypeName(types []model.StockType, typeID string) string {
	for _, t := range types {
		if t.ID == typeID {
			return t.Name
		}
	}
	return ""
}
