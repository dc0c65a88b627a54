package handlers

import (
	"fmt"
	"net/http"
	"time"

	"fightpicks/internal/auth"
	"fightpicks/internal/models"
	"fightpicks/internal/services"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

type GameHandler struct {
	gameService *services.GameService
	frontendURL string
}

func NewGameHandler(gameService *services.GameService, frontendURL string) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		frontendURL: frontendURL,
	}
}

// CreateGame creates a new game with the host joined as player 0
// POST /api/games
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req models.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, host, err := h.gameService.CreateGame(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.GenerateToken(host.ID, game.ID, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"game":   game,
		"player": host,
		"token":  token,
	})
}

// JoinGame joins an existing game by code
// POST /api/games/join
func (h *GameHandler) JoinGame(c *gin.Context) {
	var req models.JoinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, player, err := h.gameService.JoinGame(c.Request.Context(), req.Code, req.DisplayName)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.GenerateToken(player.ID, game.ID, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"game":   game,
		"player": player,
		"token":  token,
	})
}

// GetGame returns the full lobby/card snapshot for a game
// GET /api/games/:code
func (h *GameHandler) GetGame(c *gin.Context) {
	snapshot, err := h.gameService.GetSnapshot(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// GetJoinQR renders the join link for a game as a PNG QR code
// GET /api/games/:code/qr
func (h *GameHandler) GetJoinQR(c *gin.Context) {
	snapshot, err := h.gameService.GetSnapshot(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	joinURL := fmt.Sprintf("%s/join?code=%s", h.frontendURL, snapshot.Game.Code)

	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// StartGame flips the host's game to live and locks picks (host only). The
// game is taken from the host's token, never from the request.
// POST /api/games/start
func (h *GameHandler) StartGame(c *gin.Context) {
	gameID, ok := auth.GetGameID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	// Body is optional: an empty start request just means "start now"
	var req models.StartGameRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	game, err := h.gameService.StartGame(c.Request.Context(), gameID, req.StartAt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// UpdateReady toggles the calling player's lobby ready flag
// PATCH /api/players/me/ready
func (h *GameHandler) UpdateReady(c *gin.Context) {
	playerID, ok := auth.GetPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req models.UpdateReadyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.gameService.SetReady(c.Request.Context(), playerID, req.IsReady)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// UpdatePhoto stores the calling player's photo reference
// PATCH /api/players/me/photo
func (h *GameHandler) UpdatePhoto(c *gin.Context) {
	playerID, ok := auth.GetPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req models.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.gameService.SetPhoto(c.Request.Context(), playerID, req.PhotoURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// ServerTime returns the server clock so clients can run synchronized
// countdowns against the stamped start instant
// GET /api/time
func (h *GameHandler) ServerTime(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"now": time.Now().UTC().Format(time.RFC3339Nano),
	})
}
