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

func SignInController(router *gin.Engine, app *connection.App) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, app)
	})
}

func Signin(c *gin.Context, app *connection.App) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	user, err := services.GetUserByEmail(ctx, app.Firestore, request.Email)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	accessToken, err := services.CreateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	refreshToken, err := services.CreateRefreshToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refresh token"})
		return
	}

	hashedRefreshToken, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash refresh token"})
		return
	}

	now := time.Now()
	expiresAt := now.Add(7 * 24 * time.Hour).Unix()
	issuedAt := now.Unix()

	tokenRecord := model.TokenRecord{
		UserID:       user.ID,
		RefreshToken: hashedRefreshToken,
		CreatedAt:    issuedAt,
		Revoked:      false,
		ExpiresIn:    expiresAt - issuedAt,
	}

	if _, err := app.Firestore.Collection("refreshTokens").Doc(user.ID).Set(ctx, tokenRecord); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"user": gin.H{
			"userId": user.ID,
			"name":   user.Name,
			"email":  user.Email,
			"role":   user.Role,
		},
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
	})
}
