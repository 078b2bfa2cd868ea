package auth

import (
	"context"
	"net/http"
	"time"

	"opsboard/connection"
	"opsboard/dto"
	"opsboard/model"
	"opsboard/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func SignUpController(router *gin.Engine, app *connection.App) {
	router.POST("/auth/signup", func(c *gin.Context) {
		Signup(c, app)
	})
}

func Signup(c *gin.Context, app *connection.App) {
	var request dto.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	exists, err := services.UserExists(ctx, app.Firestore, request.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	// User documents are keyed by email so the users mirror can resolve roles
	// without a query.
	newUser := model.User{
		Name:      request.Name,
		Email:     request.Email,
		Password:  string(hashedPassword),
		Role:      model.RoleUser,
		CreatedAt: time.Now(),
	}

	if _, err := app.Firestore.Collection("users").Doc(request.Email).Set(ctx, newUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}
