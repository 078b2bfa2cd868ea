package document

import (
	"context"
	"io"
	"log"
	"net/http"

	"opsboard/connection"
	"opsboard/middleware"
	"opsboard/model"
	"opsboard/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func DocumentController(router *gin.Engine, app *connection.App) {
	routes := router.Group("/documents", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListDocuments(c, app)
		})
		routes.GET("/:id/download", func(c *gin.Context) {
			DownloadDocument(c, app)
		})
		routes.POST("", func(c *gin.Context) {
			UploadDocuments(c, app)
		})
		routes.DELETE("/:id", middleware.AdminMiddleware(app.Store), func(c *gin.Context) {
			DeleteDocument(c, app)
		})
	}
}

func ListDocuments(c *gin.Context, app *connection.App) {
	search := c.Query("search")
	c.JSON(http.StatusOK, services.SearchDocuments(app.Store.Documents(), search))
}

// DownloadDocument redirects to the stored object's public URL.
func DownloadDocument(c *gin.Context, app *connection.App) {
	docid := c.Param("id")

	doc, found := app.Store.Document(docid)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.Redirect(http.StatusFound, doc.URL)
}

// UploadDocuments accepts a multipart batch under the "files" field. Each
// file is handled independently: a failed upload is logged and skipped, so
// the batch can partially succeed.
func UploadDocuments(c *gin.Context, app *connection.App) {
	userId := c.MustGet("userId").(string)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	var files []services.DocumentFile
	for _, header := range form.File["files"] {
		f, err := header.Open()
		if err != nil {
			log.Printf("Error opening uploaded file %q: %v", header.Filename, err)
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			log.Printf("Error reading uploaded file %q: %v", header.Filename, err)
			continue
		}
		files = append(files, services.DocumentFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	ctx := context.Background()
	created := services.UploadDocuments(ctx, app.Storage, userId, files, func(doc model.Document) error {
		_, err := app.Firestore.Collection("documents").Doc(uuid.New().String()).Set(ctx, doc)
		return err
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Documents uploaded",
		"uploaded":  len(created),
		"documents": created,
	})
}

// DeleteDocument removes the stored object best-effort, then deletes the
// metadata record unconditionally. A failed object delete can orphan the
// stored file; that matches the documented behavior.
func DeleteDocument(c *gin.Context, app *connection.App) {
	docid := c.Param("id")

	ctx := context.Background()
	if doc, found := app.Store.Document(docid); found && doc.Path != "" {
		if err := app.Storage.Remove(ctx, services.BucketDocuments, doc.Path); err != nil {
			log.Printf("Error deleting file from storage: %v", err)
		}
	}

	if _, err := app.Firestore.Collection("documents").Doc(docid).Delete(ctx); err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
