package services

import (
	"testing"

	"opsboard/model"

	"github.com/stretchr/testify/assert"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "A", Status: model.StatusToDo, AssignedTo: "bob@x.com", CreatedBy: "alice@x.com"},
		{ID: "B", Status: model.StatusInProgress, AssignedTo: "alice@x.com", CreatedBy: "bob@x.com"},
		{ID: "C", Status: model.StatusToDo, AssignedTo: "alice@x.com", CreatedBy: "alice@x.com"},
		{ID: "D", Status: model.StatusDone, AssignedTo: "", CreatedBy: "alice@x.com"},
	}
}

func taskIDs(tasks []model.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestOwnershipFilterIsDisjoint(t *testing.T) {
	tasks := sampleTasks()

	assigned := FilterTasksByOwnership(tasks, OwnershipAssignedToMe, "alice@x.com")
	sent := FilterTasksByOwnership(tasks, OwnershipSentByMe, "alice@x.com")

	assert.Equal(t, []string{"B", "C"}, taskIDs(assigned))
	assert.Equal(t, []string{"A", "D"}, taskIDs(sent))

	// A self-assigned task lands in exactly one group.
	for _, s := range sent {
		for _, a := range assigned {
			assert.NotEqual(t, a.ID, s.ID)
		}
	}
}

func TestOwnershipFilterPreservesOrder(t *testing.T) {
	tasks := sampleTasks()
	all := FilterTasksByOwnership(tasks, OwnershipAll, "alice@x.com")
	assert.Equal(t, taskIDs(tasks), taskIDs(all))
}

func TestStatusFilter(t *testing.T) {
	tasks := sampleTasks()

	assert.Equal(t, []string{"A", "C"}, taskIDs(FilterTasksByStatus(tasks, model.StatusToDo)))
	assert.Equal(t, taskIDs(tasks), taskIDs(FilterTasksByStatus(tasks, "all")))
	assert.Equal(t, taskIDs(tasks), taskIDs(FilterTasksByStatus(tasks, "")))
	assert.Empty(t, FilterTasksByStatus(tasks, model.StatusReview))
}

func TestTaskViewAppliesOwnershipBeforeStatus(t *testing.T) {
	tasks := sampleTasks()

	// Sent-by-alice narrows to {A, D}; "To Do" then keeps only A.
	view := TaskView(tasks, OwnershipSentByMe, model.StatusToDo, "alice@x.com")
	assert.Equal(t, []string{"A"}, taskIDs(view))

	// Status alone over the full set would have kept C as well.
	assert.Equal(t, []string{"A", "C"}, taskIDs(TaskView(tasks, OwnershipAll, model.StatusToDo, "alice@x.com")))
}
