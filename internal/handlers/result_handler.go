package handlers

import (
	"net/http"

	"fightpicks/internal/auth"
	"fightpicks/internal/models"
	"fightpicks/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResultHandler struct {
	resultService      *services.ResultService
	progressionService *services.ProgressionService
}

func NewResultHandler(resultService *services.ResultService, progressionService *services.ProgressionService) *ResultHandler {
	return &ResultHandler{
		resultService:      resultService,
		progressionService: progressionService,
	}
}

// RecordResult writes a fight's official outcome and rescores its picks.
// Host only, and scoped to the host's own game: the fight must belong to the
// game named in the token.
// POST /api/fights/:id/result
func (h *ResultHandler) RecordResult(c *gin.Context) {
	gameID, ok := auth.GetGameID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fight id"})
		return
	}

	var req models.FightResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Round != nil && (*req.Round < 1 || *req.Round > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "round must be between 1 and 5"})
		return
	}

	resp, err := h.resultService.RecordResult(c.Request.Context(), gameID, fightID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProgress classifies a game's fights as scored, current, or upcoming
// GET /api/live/:id/progress
func (h *ResultHandler) GetProgress(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	progress, err := h.progressionService.GetProgress(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}
