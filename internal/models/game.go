package models

import (
	"time"

	"github.com/google/uuid"
)

type GameStatus string

const (
	GameStatusLobby    GameStatus = "lobby"
	GameStatusLive     GameStatus = "live"
	GameStatusFinished GameStatus = "finished"
)

// Game represents one prediction game session, identified by a short join code.
type Game struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string     `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	HostName  string     `gorm:"size:255;not null" json:"host_name"`
	Status    GameStatus `gorm:"size:20;not null;default:lobby;index" json:"status"`
	StartedAt *time.Time `json:"started_at"`
	CreatedAt time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Game) TableName() string {
	return "games"
}

// PicksLocked reports whether pick submissions are rejected for this game.
// The lock takes effect the moment the game leaves the lobby, before any
// client-side countdown finishes.
func (g *Game) PicksLocked() bool {
	return g.Status != GameStatusLobby
}

// CreateGameRequest is the payload for creating a new game
type CreateGameRequest struct {
	Name     string `json:"name"`
	HostName string `json:"host_name"`
}

// JoinGameRequest is the payload for joining an existing game by code
type JoinGameRequest struct {
	Code        string `json:"code" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
}

// StartGameRequest optionally carries a future start instant so every
// client can run the same countdown
type StartGameRequest struct {
	StartAt *time.Time `json:"start_at"`
}

// GameSnapshot bundles everything a lobby/card/host screen needs in one read
type GameSnapshot struct {
	Game    *Game     `json:"game"`
	Fights  []*Fight  `json:"fights"`
	Players []*Player `json:"players"`
}
