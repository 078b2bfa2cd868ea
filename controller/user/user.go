package user

import (
	"net/http"
	"time"

	"opsboard/connection"
	"opsboard/dto"
	"opsboard/middleware"

	"github.com/gin-gonic/gin"
)

func UserController(router *gin.Engine, app *connection.App) {
	routes := router.Group("/users", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListUsers(c, app)
		})
	}
}

// ListUsers serves the directory for the assignment picker. The mirror keeps
// it sorted by display name.
func ListUsers(c *gin.Context, app *connection.App) {
	users := app.Store.Users()

	userResponses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		userResponses = append(userResponses, dto.UserResponse{
			UserID:    u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, userResponses)
}
