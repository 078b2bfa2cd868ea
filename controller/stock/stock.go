package stock

import (
	"context"
	"net/http"
	"time"

	"opsboard/connection"
	"opsboard/dto"
	"opsboard/middleware"
	"opsboard/model"
	"opsboard/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func StockController(router *gin.Engine, app *connection.App) {
	routes := router.Group("/stock", middleware.AccessTokenMiddleware())
	{
		routes.GET("/types", func(c *gin.Context) {
			ListStockTypes(c, app)
		})
		routes.GET("/items", func(c *gin.Context) {
			ListStockItems(c, app)
		})
		routes.GET("/summary", func(c *gin.Context) {
			StockOverview(c, app)
		})
		routes.POST("/items", func(c *gin.Context) {
			CreateStockItem(c, app)
		})
		routes.PUT("/items/:id", func(c *gin.Context) {
			UpdateStockItem(c, app)
		})
		routes.POST("/items/:id/quantity", func(c *gin.Context) {
			ChangeStockQuantity(c, app)
		})

		admin := routes.Group("", middleware.AdminMiddleware(app.Store))
		{
			admin.POST("/types", func(c *gin.Context) {
				CreateStockType(c, app)
			})
			admin.PUT("/types/:id", func(c *gin.Context) {
				UpdateStockType(c, app)
			})
			admin.DELETE("/types/:id", func(c *gin.Context) {
				DeleteStockType(c, app)
			})
			admin.DELETE("/items/:id", func(c *gin.Context) {
				DeleteStockItem(c, app)
			})
		}
	}
}

func ListStockTypes(c *gin.Context, app *connection.App) {
	c.JSON(http.StatusOK, app.Store.StockTypes())
}

// ListStockItems applies type and availability scoping, then the free-text
// search.
func ListStockItems(c *gin.Context, app *connection.App) {
	typeID := c.DefaultQuery("type", "all")
	availability := c.DefaultQuery("availability", services.AvailabilityAll)
	search := c.Query("search")

	scoped := services.ScopeStockItems(app.Store.StockItems(), typeID, availability)
	c.JSON(http.StatusOK, services.SearchStockItems(scoped, search))
}

// StockOverview computes the aggregates over the scoped set, before any text
// search.
func StockOverview(c *gin.Context, app *connection.App) {
	typeID := c.DefaultQuery("type", "all")
	availability := c.DefaultQuery("availability", services.AvailabilityAll)

	scoped := services.ScopeStockItems(app.Store.StockItems(), typeID, availability)
	c.JSON(http.StatusOK, services.SummarizeStock(scoped))
}

func CreateStockType(c *gin.Context, app *connection.App) {
	email := c.MustGet("email").(string)

	var typeReq dto.StockTypeRequest
	if err := c.ShouldBindJSON(&typeReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	typeid := uuid.New().String()
	newtype := model.StockType{
		ID:          typeid,
		Name:        typeReq.Name,
		Description: typeReq.Description,
		Row:         typeReq.Row,
		Col:         typeReq.Col,
		CreatedAt:   time.Now(),
		CreatedBy:   email,
	}

	ctx := context.Background()
	if _, err := app.Firestore.Collection("stockTypes").Doc(typeid).Set(ctx, newtype); err != nil {
		c.JSON(500, gin.H{"error": "Failed to create stock type"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Stock type created successfully",
		"typeId":  typeid,
	})
}

// UpdateStockType renames or moves a shelf category. Items referencing it
// keep their stored typeName until they are next saved.
func UpdateStockType(c *gin.Context, app *connection.App) {
	typeid := c.Param("id")

	var typeReq dto.StockTypeRequest
	if err := c.ShouldBindJSON(&typeReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Merging into an unknown id would upsert a partial type, so the mirror
	// gates the write.
	if _, found := app.Store.StockType(typeid); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stock type not found"})
		return
	}

	ctx := context.Background()
	update := map[string]interface{}{
		"name":        typeReq.Name,
		"description": typeReq.Description,
		"row":         typeReq.Row,
		"col":         typeReq.Col,
		"updatedAt":   time.Now(),
	}
	if _, err := app.Firestore.Collection("stockTypes").Doc(typeid).Set(ctx, update, firestore.MergeAll); err != nil {
		c.JSON(500, gin.H{"error": "Failed to update stock type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock type updated successfully"})
}

// DeleteStockType does not cascade: items keep a dangling typeId and their
// last-known typeName.
func DeleteStockType(c *gin.Context, app *connection.App) {
	typeid := c.Param("id")

	ctx := context.Background()
	if _, err := app.Firestore.Collection("stockTypes").Doc(typeid).Delete(ctx); err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete stock type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock type deleted successfully"})
}

func CreateStockItem(c *gin.Context, app *connection.App) {
	email := c.MustGet("email").(string)

	var itemReq dto.StockItemRequest
	if err := c.ShouldBindJSON(&itemReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	available := true
	if itemReq.Available != nil {
		available = *itemReq.Available
	}

	itemid := uuid.New().String()
	newitem := model.StockItem{
		ID:         itemid,
		Name:       itemReq.Name,
		TypeID:     itemReq.TypeID,
		TypeName:   services.ResolveTypeName(app.Store.StockTypes(), itemReq.TypeID),
		Quantity:   itemReq.Quantity,
		Properties: itemReq.Properties,
		Note:       itemReq.Note,
		Available:  &available,
		CreatedAt:  time.Now(),
		CreatedBy:  email,
	}

	ctx := context.Background()
	if _, err := app.Firestore.Collection("stockItems").Doc(itemid).Set(ctx, newitem); err != nil {
		c.JSON(500, gin.H{"error": "Failed to create stock item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Stock item created successfully",
		"itemId":  itemid,
	})
}

// UpdateStockItem re-resolves the denormalized typeName against the current
// types mirror, so a type rename lands on the item at its next save.
func UpdateStockItem(c *gin.Context, app *connection.App) {
	itemid := c.Param("id")

	var itemReq dto.StockItemRequest
	if err := c.ShouldBindJSON(&itemReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	previous, found := app.Store.StockItem(itemid)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stock item not found"})
		return
	}

	available := previous.IsAvailable()
	if itemReq.Available != nil {
		available = *itemReq.Available
	}

	updated := model.StockItem{
		ID:         itemid,
		Name:       itemReq.Name,
		TypeID:     itemReq.TypeID,
		TypeName:   services.ResolveTypeName(app.Store.StockTypes(), itemReq.TypeID),
		Quantity:   itemReq.Quantity,
		Properties: itemReq.Properties,
		Note:       itemReq.Note,
		Available:  &available,
		CreatedAt:  previous.CreatedAt,
		CreatedBy:  previous.CreatedBy,
	}

	ctx := context.Background()
	if _, err := app.Firestore.Collection("stockItems").Doc(itemid).Set(ctx, updated); err != nil {
		c.JSON(500, gin.H{"error": "Failed to update stock item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock item updated successfully"})
}

// ChangeStockQuantity applies a signed delta clamped at zero. An unknown id
// is a no-op.
func ChangeStockQuantity(c *gin.Context, app *connection.App) {
	itemid := c.Param("id")

	var qtyReq dto.QuantityRequest
	if err := c.ShouldBindJSON(&qtyReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	item, found := app.Store.StockItem(itemid)
	if !found {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}

	newQty := services.ClampQuantity(item.Quantity, qtyReq.Delta)

	ctx := context.Background()
	update := map[string]interface{}{"quantity": newQty}
	if _, err := app.Firestore.Collection("stockItems").Doc(itemid).Set(ctx, update, firestore.MergeAll); err != nil {
		c.JSON(500, gin.H{"error": "Failed to update stock quantity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true, "quantity": newQty})
}

func DeleteStockItem(c *gin.Context, app *connection.App) {
	itemid := c.Param("id")

	ctx := context.Background()
	if _, err := app.Firestore.Collection("stockItems").Doc(itemid).Delete(ctx); err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete stock item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock item deleted successfully"})
}
