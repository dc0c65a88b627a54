package models

import (
	"time"

	"github.com/google/uuid"
)

// Pick is one player's guess for one fight. The (player_id, fight_id) pair is
// the natural key; a second submission for the same pair replaces the first
// entirely. PointsAwarded stays nil until the fight's result is recorded and
// is rewritten on every result revision.
type Pick struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PlayerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_picks_player_fight" json:"player_id"`
	FightID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_picks_player_fight;index" json:"fight_id"`
	PickWinner    *Corner   `gorm:"size:1" json:"pick_winner"`
	PickMethod    *Method   `gorm:"size:10" json:"pick_method"`
	PickRound     *int      `json:"pick_round"`
	PointsAwarded *int      `json:"points_awarded"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Pick) TableName() string {
	return "picks"
}

// PickEntry is one fight's guess inside a batch submission
type PickEntry struct {
	FightID uuid.UUID `json:"fight_id" binding:"required"`
	Winner  *Corner   `json:"winner"`
	Method  *Method   `json:"method"`
	Round   *int      `json:"round"`
}

// SubmitPicksRequest carries the player's full pick state for each listed
// fight; the batch is applied all-or-nothing
type SubmitPicksRequest struct {
	Picks []PickEntry `json:"picks" binding:"required"`
}
