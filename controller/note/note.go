package note

import (
	"context"
	"net/http"
	"time"

	"opsboard/connection"
	"opsboard/dto"
	"opsboard/middleware"
	"opsboard/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func NoteController(router *gin.Engine, app *connection.App) {
	routes := router.Group("/notes", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListNotes(c, app)
		})
		routes.POST("", func(c *gin.Context) {
			CreateNote(c, app)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateNote(c, app)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteNote(c, app)
		})
	}
}

func ListNotes(c *gin.Context, app *connection.App) {
	c.JSON(http.StatusOK, app.Store.Notes())
}

func CreateNote(c *gin.Context, app *connection.App) {
	userId := c.MustGet("userId").(string)

	var noteReq dto.NoteRequest
	if err := c.ShouldBindJSON(&noteReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	noteid := uuid.New().String()
	now := time.Now()

	// createdAt and updatedAt start equal.
	newnote := model.Note{
		ID:          noteid,
		Headline:    noteReq.Headline,
		Description: noteReq.Description,
		UserID:      userId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx := context.Background()
	if _, err := app.Firestore.Collection("notes").Doc(noteid).Set(ctx, newnote); err != nil {
		c.JSON(500, gin.H{"error": "Failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Note created successfully",
		"noteId":  noteid,
	})
}

// UpdateNote edits in place and refreshes only updatedAt.
func UpdateNote(c *gin.Context, app *connection.App) {
	noteid := c.Param("id")

	var noteReq dto.NoteRequest
	if err := c.ShouldBindJSON(&noteReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Merging into an unknown id would upsert a partial note, so the mirror
	// gates the write.
	if _, found := app.Store.Note(noteid); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}

	ctx := context.Background()
	update := map[string]interface{}{
		"headline":    noteReq.Headline,
		"description": noteReq.Description,
		"updatedAt":   time.Now(),
	}
	if _, err := app.Firestore.Collection("notes").Doc(noteid).Set(ctx, update, firestore.MergeAll); err != nil {
		c.JSON(500, gin.H{"error": "Failed to update note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note updated successfully"})
}

func DeleteNote(c *gin.Context, app *connection.App) {
	noteid := c.Param("id")

	ctx := context.Background()
	if _, err := app.Firestore.Collection("notes").Doc(noteid).Delete(ctx); err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
