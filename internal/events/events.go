package events

import (
	"github.com/google/uuid"
)

type EventType string

const (
	EventPickScored    EventType = "pick_scored"
	EventPlayerUpdated EventType = "player_updated"
	EventGameUpdated   EventType = "game_updated"
	EventFightUpdated  EventType = "fight_updated"
)

// Event is one state change published to every viewer of a game
type Event struct {
	Type    EventType   `json:"type"`
	GameID  uuid.UUID   `json:"game_id"`
	Payload interface{} `json:"payload"`
}

// PickScored carries previous and new awarded points so consumers can tell a
// first-time score (PreviousPoints nil) from a re-score and must not replay
// one-time celebration effects on the latter.
type PickScored struct {
	PickID         uuid.UUID `json:"pick_id"`
	PlayerID       uuid.UUID `json:"player_id"`
	FightID        uuid.UUID `json:"fight_id"`
	PreviousPoints *int      `json:"previous_points"`
	Points         int       `json:"points"`
}

// PlayerUpdated reflects any player row change (ready flag, photo, total)
type PlayerUpdated struct {
	PlayerID    uuid.UUID `json:"player_id"`
	DisplayName string    `json:"display_name"`
	IsReady     bool      `json:"is_ready"`
	TotalPoints int       `json:"total_points"`
}

// GameUpdated reflects a game status transition
type GameUpdated struct {
	Status    string  `json:"status"`
	StartedAt *string `json:"started_at"`
}

// FightUpdated reflects a result write on a fight
type FightUpdated struct {
	FightID      uuid.UUID `json:"fight_id"`
	ResultWinner *string   `json:"result_winner"`
	ResultMethod *string   `json:"result_method"`
	ResultRound  *int      `json:"result_round"`
}
