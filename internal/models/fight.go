package models

import (
	"time"

	"github.com/google/uuid"
)

// Corner identifies which side of a fight a pick or result refers to.
type Corner string

const (
	CornerA Corner = "A"
	CornerB Corner = "B"
)

// Method is how a fight officially ended.
type Method string

const (
	MethodKO         Method = "KO"
	MethodSubmission Method = "SUB"
	MethodDecision   Method = "DEC"
)

// Fight is one bout on a game's card. Result fields stay nil until the host
// records an official outcome; the host may revise them later, which triggers
// a full rescore of every pick on the fight.
type Fight struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	GameID          uuid.UUID  `gorm:"type:uuid;not null;index;index:idx_fights_game_order,unique" json:"game_id"`
	FighterA        string     `gorm:"size:255;not null" json:"fighter_a"`
	FighterB        string     `gorm:"size:255;not null" json:"fighter_b"`
	FighterACountry string     `gorm:"size:2" json:"fighter_a_country"`
	FighterBCountry string     `gorm:"size:2" json:"fighter_b_country"`
	OrderIndex      int        `gorm:"not null;index:idx_fights_game_order,unique" json:"order_index"`
	ResultWinner    *Corner    `gorm:"size:1" json:"result_winner"`
	ResultMethod    *Method    `gorm:"size:10" json:"result_method"`
	ResultRound     *int       `json:"result_round"`
	CreatedAt       time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Fight) TableName() string {
	return "fights"
}

// Decided reports whether any result field has been recorded.
func (f *Fight) Decided() bool {
	return f.ResultWinner != nil || f.ResultMethod != nil || f.ResultRound != nil
}

// FullyScored reports whether all three result fields are recorded. The
// progression tracker only advances past a fight once it is fully scored.
func (f *Fight) FullyScored() bool {
	return f.ResultWinner != nil && f.ResultMethod != nil && f.ResultRound != nil
}

// FightResultRequest is the host's payload for recording a fight's outcome.
// Omitted fields clear the corresponding result column: a result write is a
// replace, not a merge.
type FightResultRequest struct {
	Winner *Corner `json:"winner"`
	Method *Method `json:"method"`
	Round  *int    `json:"round"`
}

// FightResultResponse reports how far the rescore got
type FightResultResponse struct {
	PicksScored    int  `json:"picks_scored"`
	PlayersUpdated int  `json:"players_updated"`
	GameFinished   bool `json:"game_finished"`
}

// FightProgress classifies one fight for host/card sequencing
type FightProgress struct {
	FightID uuid.UUID         `json:"fight_id"`
	Status  ProgressionStatus `json:"status"`
}

type ProgressionStatus string

const (
	ProgressionScored   ProgressionStatus = "scored"
	ProgressionCurrent  ProgressionStatus = "current"
	ProgressionUpcoming ProgressionStatus = "upcoming"
)
