package connection

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes is implemented by the controller packages; wiring happens in
// main to keep this package free of controller imports.
type RegisterRoutes func(router *gin.Engine, app *App)

func StartServer(register ...RegisterRoutes) {
	router := gin.Default()

	app, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize Firebase clients: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	// Mirror the six collections for the lifetime of the server.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.Store.Sync(ctx, app.Firestore)

	for _, r := range register {
		r(router, app)
	}

	router.Run()
}
