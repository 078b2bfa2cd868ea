package services

import (
	"testing"

	"opsboard/model"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func sampleStockItems() []model.StockItem {
	return []model.StockItem{
		{ID: "I1", Name: "Dell Mouse", TypeID: "T1", TypeName: "Peripherals", Quantity: 5, Available: boolPtr(true)},
		{ID: "I2", Name: "HP Printer", TypeID: "T2", TypeName: "Printers", Quantity: 2, Available: boolPtr(false)},
		{ID: "I3", Name: "Lenovo Laptop", TypeID: "T3", TypeName: "Computers", Quantity: 0, Available: boolPtr(true)},
		{ID: "I4", Name: "Cable", TypeID: "T1", TypeName: "Peripherals", Quantity: 10,
			Note:       "spare drawer",
			Properties: map[string]string{"length": "2m", "color": "black"}},
	}
}

func TestScopeStockItemsByType(t *testing.T) {
	items := sampleStockItems()

	scoped := ScopeStockItems(items, "T1", AvailabilityAll)
	assert.Len(t, scoped, 2)
	assert.Equal(t, "I1", scoped[0].ID)
	assert.Equal(t, "I4", scoped[1].ID)

	assert.Len(t, ScopeStockItems(items, "all", AvailabilityAll), 4)
	assert.Len(t, ScopeStockItems(items, "", AvailabilityAll), 4)
}

func TestScopeStockItemsByAvailability(t *testing.T) {
	items := sampleStockItems()

	available := ScopeStockItems(items, "all", AvailabilityAvailable)
	assert.Len(t, available, 3)
	for _, i := range available {
		assert.True(t, i.IsAvailable())
	}

	notAvailable := ScopeStockItems(items, "all", AvailabilityNotAvailable)
	assert.Len(t, notAvailable, 1)
	assert.Equal(t, "I2", notAvailable[0].ID)
}

func TestMissingAvailableFlagCountsAsAvailable(t *testing.T) {
	items := []model.StockItem{{ID: "I1", Quantity: 3}}

	assert.Len(t, ScopeStockItems(items, "all", AvailabilityAvailable), 1)
	assert.Empty(t, ScopeStockItems(items, "all", AvailabilityNotAvailable))
}

func TestSearchStockItems(t *testing.T) {
	items := sampleStockItems()

	assert.Len(t, SearchStockItems(items, "dell"), 1, "name match is case-insensitive")
	assert.Len(t, SearchStockItems(items, "PERIPH"), 2, "type name match")
	assert.Len(t, SearchStockItems(items, "drawer"), 1, "note match")
	assert.Equal(t, items, SearchStockItems(items, "  "), "blank term matches everything")
	assert.Empty(t, SearchStockItems(items, "missing"))
}

func TestSearchStockItemsMatchesProperties(t *testing.T) {
	items := sampleStockItems()

	// "2m" appears only in a property value.
	matched := SearchStockItems(items, "2m")
	assert.Len(t, matched, 1)
	assert.Equal(t, "I4", matched[0].ID)

	// Properties match as flattened "key value" text.
	assert.Len(t, SearchStockItems(items, "color black"), 1)
}

func TestSummarizeStock(t *testing.T) {
	summary := SummarizeStock(sampleStockItems())

	assert.Equal(t, 4, summary.Products)
	assert.Equal(t, 17, summary.TotalQuantity)
	assert.Equal(t, 15, summary.AvailableQuantity, "sum of quantities, not item count")
	assert.Equal(t, 2, summary.NotAvailableQuantity)
	assert.Equal(t, 1, summary.OutOfStock)
}

func TestSummaryInvariants(t *testing.T) {
	cases := [][]model.StockItem{
		nil,
		sampleStockItems(),
		ScopeStockItems(sampleStockItems(), "T1", AvailabilityAll),
		ScopeStockItems(sampleStockItems(), "all", AvailabilityNotAvailable),
	}

	for _, scoped := range cases {
		summary := SummarizeStock(scoped)
		assert.Equal(t, summary.TotalQuantity, summary.AvailableQuantity+summary.NotAvailableQuantity)
		assert.LessOrEqual(t, summary.OutOfStock, summary.Products)
	}
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 3, ClampQuantity(5, -2))
	assert.Equal(t, 0, ClampQuantity(3, -10), "floor of zero")
	assert.Equal(t, 8, ClampQuantity(5, 3), "no ceiling")
	assert.Equal(t, 0, ClampQuantity(0, -1))
	assert.Equal(t, 5, ClampQuantity(5, 0))
}

func TestQuantityLifecycle(t *testing.T) {
	item := model.StockItem{ID: "I1", Name: "Dell Mouse", TypeID: "T1", TypeName: "Peripherals", Quantity: 5, Available: boolPtr(true)}

	item.Quantity = ClampQuantity(item.Quantity, -2)
	assert.Equal(t, 3, item.Quantity)

	item.Quantity = ClampQuantity(item.Quantity, -10)
	assert.Equal(t, 0, item.Quantity)

	summary := SummarizeStock(ScopeStockItems([]model.StockItem{item}, "T1", AvailabilityAll))
	assert.Equal(t, 1, summary.OutOfStock)
}

func TestResolveTypeName(t *testing.T) {
	types := []model.StockType{
		{ID: "T1", Name: "Peripherals"},
		{ID: "T2", Name: "Printers"},
	}

	assert.Equal(t, "Peripherals", ResolveTypeName(types, "T1"))
	assert.Equal(t, "", ResolveTypeName(types, "T9"), "dangling type id resolves to empty name")
}
