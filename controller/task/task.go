package task

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"
	"strconv"
	"strings"
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

func TaskController(router *gin.Engine, app *connection.App) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListTasks(c, app)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, app)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateTask(c, app)
		})
		routes.DELETE("/:id", middleware.AdminMiddleware(app.Store), func(c *gin.Context) {
			DeleteTask(c, app)
		})
		routes.POST("/:id/comments", func(c *gin.Context) {
			AddComment(c, app)
		})
		routes.PUT("/:id/comments/:index", func(c *gin.Context) {
			EditComment(c, app)
		})
	}
}

// ListTasks serves the dashboard's task view from the mirror: ownership
// filter first, then status.
func ListTasks(c *gin.Context, app *connection.App) {
	email := c.MustGet("email").(string)
	ownership := c.DefaultQuery("ownership", services.OwnershipAll)
	status := c.DefaultQuery("status", "all")

	tasks := services.TaskView(app.Store.Tasks(), ownership, status, email)
	c.JSON(http.StatusOK, tasks)
}

func CreateTask(c *gin.Context, app *connection.App) {
	userId := c.MustGet("userId").(string)
	email := c.MustGet("email").(string)

	var taskReq dto.TaskRequest
	if err := c.ShouldBindJSON(&taskReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	deadline, ok := parseDeadline(c, taskReq.Deadline)
	if !ok {
		return
	}

	ctx := context.Background()
	attachments := services.ResolveAttachments(ctx, app.Storage, userId, pendingAttachments(taskReq.Attachments))

	taskid := uuid.New().String()

	// PrepareNewTask forces status and comments regardless of what the
	// caller sent.
	newtask := services.PrepareNewTask(model.Task{
		ID:          taskid,
		Headline:    taskReq.Headline,
		Description: taskReq.Description,
		Priority:    taskReq.Priority,
		Status:      taskReq.Status,
		Deadline:    deadline,
		AssignedTo:  taskReq.AssignedTo,
		CreatedBy:   email,
		CreatedAt:   time.Now(),
		Attachments: attachments,
	})

	if _, err := app.Firestore.Collection("tasks").Doc(taskid).Set(ctx, newtask); err != nil {
		c.JSON(500, gin.H{"error": "Failed to create task"})
		return
	}

	// Email failure must not roll back or retry the creation.
	if strings.TrimSpace(newtask.AssignedTo) != "" {
		if err := services.SendTaskAssignmentEmail(app.Mailer, newtask); err != nil {
			log.Printf("Failed to send assignment email: %v", err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"taskId":  taskid,
	})
}

func UpdateTask(c *gin.Context, app *connection.App) {
	userId := c.MustGet("userId").(string)
	email := c.MustGet("email").(string)
	taskid := c.Param("id")

	var taskReq dto.TaskRequest
	if err := c.ShouldBindJSON(&taskReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	previous, found := app.Store.Task(taskid)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	deadline, ok := parseDeadline(c, taskReq.Deadline)
	if !ok {
		return
	}

	ctx := context.Background()
	attachments := services.ResolveAttachments(ctx, app.Storage, userId, pendingAttachments(taskReq.Attachments))

	status := taskReq.Status
	if status == "" {
		status = previous.Status
	}

	updated := model.Task{
		ID:          taskid,
		Headline:    taskReq.Headline,
		Description: taskReq.Description,
		Priority:    taskReq.Priority,
		Status:      status,
		Deadline:    deadline,
		AssignedTo:  taskReq.AssignedTo,
		CreatedBy:   previous.CreatedBy,
		CreatedAt:   previous.CreatedAt,
		Attachments: attachments,
		Comments:    previous.Comments,
	}

	if _, err := app.Firestore.Collection("tasks").Doc(taskid).Set(ctx, updated); err != nil {
		c.JSON(500, gin.H{"error": "Failed to update task"})
		return
	}

	// Only a status change notifies; edits to any other field never do. The
	// recipient comes from the written task, so a reassignment in the same
	// update reaches the new assignee.
	if err := services.NotifyTaskUpdate(app.Mailer, previous, updated, email); err != nil {
		log.Printf("Failed to send status change email: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully"})
}

func DeleteTask(c *gin.Context, app *connection.App) {
	taskid := c.Param("id")

	task, found := app.Store.Task(taskid)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	// Stored files go first, best-effort; the document delete proceeds
	// regardless.
	ctx := context.Background()
	services.RemoveAttachments(ctx, app.Storage, task.Attachments)

	if _, err := app.Firestore.Collection("tasks").Doc(taskid).Delete(ctx); err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// AddComment appends to the task's comment list. Comments never trigger
// notifications.
func AddComment(c *gin.Context, app *connection.App) {
	userId := c.MustGet("userId").(string)
	email := c.MustGet("email").(string)
	taskid := c.Param("id")

	var commentReq dto.CommentRequest
	if err := c.ShouldBindJSON(&commentReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	task, found := app.Store.Task(taskid)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	comments := append(task.Comments, model.Comment{
		Text:      commentReq.Text,
		UserID:    userId,
		UserEmail: email,
		Timestamp: time.Now(),
	})

	ctx := context.Background()
	update := map[string]interface{}{"comments": comments}
	if _, err := app.Firestore.Collection("tasks").Doc(taskid).Set(ctx, update, firestore.MergeAll); err != nil {
		c.JSON(500, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment added successfully"})
}

// EditComment replaces the text of the comment at a position. Ownership of
// the comment is enforced by the UI, not here.
func EditComment(c *gin.Context, app *connection.App) {
	taskid := c.Param("id")

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment index"})
		return
	}

	var commentReq dto.CommentEditRequest
	if err := c.ShouldBindJSON(&commentReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	task, found := app.Store.Task(taskid)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	if index < 0 || index >= len(task.Comments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	comments := append([]model.Comment(nil), task.Comments...)
	comments[index].Text = commentReq.Text

	ctx := context.Background()
	update := map[string]interface{}{"comments": comments}
	if _, err := app.Firestore.Collection("tasks").Doc(taskid).Set(ctx, update, firestore.MergeAll); err != nil {
		c.JSON(500, gin.H{"error": "Failed to update comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment updated successfully"})
}

func parseDeadline(c *gin.Context, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid deadline format"})
		return nil, false
	}
	return &parsed, true
}

func pendingAttachments(reqs []dto.AttachmentRequest) []services.PendingAttachment {
	pending := make([]services.PendingAttachment, 0, len(reqs))
	for _, r := range reqs {
		a := services.PendingAttachment{
			URL:         r.URL,
			Path:        r.Path,
			Name:        r.Name,
			ContentType: r.ContentType,
		}
		if r.Data != "" {
			data, err := base64.StdEncoding.DecodeString(r.Data)
			if err != nil {
				log.Printf("Error decoding attachment %q: %v", r.Name, err)
				continue
			}
			a.Data = data
		}
		pending = append(pending, a)
	}
	return pending
}
