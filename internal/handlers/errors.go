package handlers

import (
	"errors"
	"net/http"

	"fightpicks/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service failures onto HTTP statuses. Locked and
// out-of-order rejections carry their own codes so clients can show "picks
// locked" or "score the current fight first" instead of a generic retry.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGameNotFound),
		errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrFightNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPicksLocked):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "code": "picks_locked"})
	case errors.Is(err, services.ErrOutOfOrder):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "out_of_order"})
	case errors.Is(err, services.ErrAlreadyStarted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "already_started"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
