package main

import (
	"opsboard/connection"
	"opsboard/controller/auth"
	"opsboard/controller/document"
	"opsboard/controller/note"
	"opsboard/controller/stock"
	"opsboard/controller/task"
	"opsboard/controller/user"

	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	connection.StartServer(
		auth.SignInController,
		auth.SignUpController,
		auth.TokenController,
		task.TaskController,
		note.NoteController,
		document.DocumentController,
		stock.StockController,
		user.UserController,
	)
}
