package handlers

import (
	"net/http"

	"fightpicks/internal/auth"
	"fightpicks/internal/models"
	"fightpicks/internal/services"

	"github.com/gin-gonic/gin"
)

type PickHandler struct {
	pickService *services.PickService
}

func NewPickHandler(pickService *services.PickService) *PickHandler {
	return &PickHandler{pickService: pickService}
}

// SubmitPicks saves the calling player's picks for the listed fights
// POST /api/picks
func (h *PickHandler) SubmitPicks(c *gin.Context) {
	playerID, ok := auth.GetPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req models.SubmitPicksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Picks) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no picks to save"})
		return
	}

	if err := h.pickService.SubmitPicks(c.Request.Context(), playerID, req.Picks); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetMyPicks returns the calling player's picks
// GET /api/picks
func (h *PickHandler) GetMyPicks(c *gin.Context) {
	playerID, ok := auth.GetPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	picks, err := h.pickService.GetPlayerPicks(c.Request.Context(), playerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, picks)
}
