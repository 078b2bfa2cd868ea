package services

import (
	"opsboard/model"
)

// Task ownership filter modes. The two modes partition the tasks the user is
// involved in: a task the user both created and is assigned to counts as
// assigned-to-me only.
const (
	OwnershipAll          = "all"
	OwnershipAssignedToMe = "assigned_to_me"
	OwnershipSentByMe     = "sent_by_me"
)

// FilterTasksByOwnership narrows tasks to the requested ownership group,
// preserving collection order.
func FilterTasksByOwnership(tasks []model.Task, mode, userEmail string) []model.Task {
	switch mode {
	case OwnershipAssignedToMe:
		filtered := []model.Task{}
		for _, t := range tasks {
			if t.AssignedTo == userEmail {
				filtered = append(filtered, t)
			}
		}
		return filtered
	case OwnershipSentByMe:
		filtered := []model.Task{}
		for _, t := range tasks {
			if t.CreatedBy == userEmail && t.AssignedTo != userEmail {
				filtered = append(filtered, t)
			}
		}
		return filtered
	default:
		return tasks
	}
}

// FilterTasksByStatus keeps tasks with the exact status, or everything for
// "all". Applied after the ownership filter, never before.
func FilterTasksByStatus(tasks []model.Task, status string) []model.Task {
	if status == "" || status == "all" {
		return tasks
	}

	filtered := []model.Task{}
	for _, t := range tasks {
		if t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// TaskView composes the task list the dashboard renders: ownership first,
// then status.
func TaskView(tasks []model.Task, ownership, status, userEmail string) []model.Task {
	return FilterTasksByStatus(FilterTasksByOwnership(tasks, ownership, userEmail), status)
}
