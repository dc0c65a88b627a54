package auth

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware validates player tokens and protects routes
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>" format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format. Expected: Bearer <token>",
			})
			c.Abort()
			return
		}

		tokenString := parts[1]

		// Validate token
		claims, err := ValidateToken(tokenString)
		if err != nil {
			log.Printf("[Auth] token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// Set player information in context
		c.Set("player_id", claims.PlayerID)
		c.Set("game_id", claims.GameID)
		c.Set("is_host", claims.IsHost)

		c.Next()
	}
}

// HostOnly rejects requests whose token was not issued to the game host.
// Must run after AuthMiddleware.
func HostOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isHost, exists := c.Get("is_host")
		if !exists || !isHost.(bool) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "host privileges required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPlayerID retrieves the player ID from the context
func GetPlayerID(c *gin.Context) (uuid.UUID, bool) {
	playerID, exists := c.Get("player_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := playerID.(uuid.UUID)
	return id, ok
}

// GetGameID retrieves the game ID from the context
func GetGameID(c *gin.Context) (uuid.UUID, bool) {
	gameID, exists := c.Get("game_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := gameID.(uuid.UUID)
	return id, ok
}
