package services

import (
	"testing"
	"time"

	"opsboard/model"

	"github.com/stretchr/testify/assert"
)

func TestPrepareNewTaskForcesStatusAndComments(t *testing.T) {
	sent := model.Task{
		Headline: "Restock shelves",
		Status:   model.StatusDone,
		Comments: []model.Comment{{Text: "smuggled in", UserEmail: "alice@x.com"}},
	}

	task := PrepareNewTask(sent)

	assert.Equal(t, model.StatusToDo, task.Status)
	assert.NotNil(t, task.Comments)
	assert.Empty(t, task.Comments)
}

func TestPrepareNewTaskKeepsEverythingElse(t *testing.T) {
	deadline := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	sent := model.Task{
		ID:          "t-1",
		Headline:    "Restock shelves",
		Description: "Aisle 4 first",
		Priority:    model.PriorityHigh,
		Deadline:    &deadline,
		AssignedTo:  "bob@x.com",
		CreatedBy:   "alice@x.com",
	}

	task := PrepareNewTask(sent)

	assert.Equal(t, "t-1", task.ID)
	assert.Equal(t, "Restock shelves", task.Headline)
	assert.Equal(t, "Aisle 4 first", task.Description)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.Equal(t, &deadline, task.Deadline)
	assert.Equal(t, "bob@x.com", task.AssignedTo)
	assert.Equal(t, "alice@x.com", task.CreatedBy)
}
