package handler

import (
	"log"
	"os"

	"main/dto"
	"main/middleware"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// TokenHandler exchanges the configured operator access key for a signed JWT.
// There are no user accounts; a single key guards the whole API.
func TokenHandler(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "access_key is required")
		return
	}

	storedHash := os.Getenv("ACCESS_KEY_HASH")
	if storedHash == "" {
		log.Print("ACCESS_KEY_HASH is not configured")
		utils.InternalError(c, "Authentication is not configured")
		return
	}

	if !services.CompareAccessKeys(storedHash, req.AccessKey) {
		middleware.TrackError("auth")
		utils.Unauthorized(c, "Invalid access key")
		return
	}

	token, err := utils.GenerateToken()
	if err != nil {
		log.Printf("Error generating token: %v", err)
		utils.InternalError(c, "Failed to generate token")
		return
	}

	utils.Success(c, gin.H{
		"token":      token,
		"expires_in": utils.JWTExpirationTime,
	})
}
