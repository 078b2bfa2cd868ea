package services

import (
	"opsboard/model"
)

// PrepareNewTask forces the fields a creator cannot set: new tasks always
// start at "To Do" with an empty comment thread, whatever the request
// carried.
func PrepareNewTask(task model.Task) model.Task {
	task.Status = model.StatusToDo
	task.Comments = []model.Comment{}
	return task
}
