package auth

import (
	"context"
	"net/http"

	"opsboard/connection"
	"opsboard/middleware"
	"opsboard/model"
	"opsboard/services"

	"github.com/gin-gonic/gin"
)

func TokenController(router *gin.Engine, app *connection.App) {
	router.POST("/auth/refresh", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		RefreshAccessToken(c, app)
	})
	router.POST("/auth/signout", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Signout(c, app)
	})
}

// RefreshAccessToken trades a valid, unrevoked refresh token for a new
// access token.
func RefreshAccessToken(c *gin.Context, app *connection.App) {
	userID := c.MustGet("userId").(string)
	presented := c.MustGet("refreshToken").(string)

	ctx := context.Background()
	snap, err := app.Firestore.Collection("refreshTokens").Doc(userID).Get(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token not found"})
		return
	}

	var record model.TokenRecord
	if err := snap.DataTo(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse token record"})
		return
	}

	if record.Revoked || !services.CompareRefreshToken(record.RefreshToken, presented) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is revoked or does not match"})
		return
	}

	user, err := services.GetUserByEmail(ctx, app.Firestore, userID)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	accessToken, err := services.CreateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

// Signout revokes the stored refresh token; the access token simply expires.
func Signout(c *gin.Context, app *connection.App) {
	userID := c.MustGet("userId").(string)

	ctx := context.Background()
	if _, err := app.Firestore.Collection("refreshTokens").Doc(userID).Delete(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
