package models

import (
	"time"

	"github.com/google/uuid"
)

// Player is one participant in a game. TotalPoints is a derived cache: it is
// only ever written by the rescoring path, and always as a full recomputed sum
// over the player's picks, never as an increment.
type Player struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GameID      uuid.UUID `gorm:"type:uuid;not null;index" json:"game_id"`
	DisplayName string    `gorm:"size:255;not null" json:"display_name"`
	IsHost      bool      `gorm:"not null;default:false" json:"is_host"`
	IsReady     bool      `gorm:"not null;default:false" json:"is_ready"`
	TotalPoints int       `gorm:"not null;default:0" json:"total_points"`
	PhotoURL    *string   `gorm:"size:500" json:"photo_url"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Player) TableName() string {
	return "players"
}

// UpdateReadyRequest toggles the lobby ready flag
type UpdateReadyRequest struct {
	IsReady bool `json:"is_ready"`
}

// UpdatePhotoRequest stores a reference to an already-uploaded player photo
type UpdatePhotoRequest struct {
	PhotoURL string `json:"photo_url" binding:"required"`
}
