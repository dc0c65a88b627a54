package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"fightpicks/internal/events"
	"fightpicks/internal/models"
	"fightpicks/internal/repository"
	"fightpicks/internal/scoring"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResultService records official fight outcomes and drives rescoring. It is
// the only writer of pick points and player totals.
type ResultService struct {
	repo        *repository.Repository
	hub         *events.Hub
	strictOrder bool

	mu         sync.Mutex
	fightLocks map[uuid.UUID]*sync.Mutex
}

func NewResultService(repo *repository.Repository, hub *events.Hub, strictOrder bool) *ResultService {
	return &ResultService{
		repo:        repo,
		hub:         hub,
		strictOrder: strictOrder,
		fightLocks:  make(map[uuid.UUID]*sync.Mutex),
	}
}

// RecordResult writes a fight's official outcome and rescores every pick on
// it. Only the host of the fight's own game may write: a host credential from
// another game gets the same not-found as a bogus fight id, since fight ids
// are visible in every snapshot. The supplied fields replace the stored
// result in full: omitted fields become unset. Rescoring recomputes each
// pick's points from scratch against the new result, then recomputes each
// affected player's total as the full sum over all their picks, so repeating
// a call (or racing a duplicate submit) converges to the same state instead
// of double counting. A failure while updating one player's cached total does
// not stop the others: the per-pick points written in the transaction are the
// ledger of record, the totals are a derived cache.
func (rs *ResultService) RecordResult(ctx context.Context, gameID, fightID uuid.UUID, req *models.FightResultRequest) (*models.FightResultResponse, error) {
	fight, err := rs.repo.GetFightByID(ctx, fightID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFightNotFound
		}
		return nil, fmt.Errorf("failed to load fight: %w", err)
	}

	if fight.GameID != gameID {
		return nil, ErrFightNotFound
	}

	if req.Winner == nil && req.Method == nil && req.Round == nil {
		log.Printf("[ResultService] ignoring empty result for fight %s", fightID)
		return &models.FightResultResponse{}, nil
	}

	if rs.strictOrder {
		if err := rs.checkOrder(ctx, fight); err != nil {
			return nil, err
		}
	}

	// Serialize result writes per fight so concurrent submissions cannot
	// leave picks scored against two different outcomes.
	lock := rs.lockFor(fightID)
	lock.Lock()
	defer lock.Unlock()

	rescored, err := rs.repo.RescoreFight(ctx, fightID, map[string]interface{}{
		"result_winner": req.Winner,
		"result_method": req.Method,
		"result_round":  req.Round,
		"updated_at":    time.Now(),
	}, func(pick *models.Pick) int {
		return scoring.Score(pick, req.Winner, req.Method, req.Round)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to rescore fight: %w", err)
	}

	rs.publishRescore(fight, req, rescored)

	playersUpdated := rs.refreshTotals(ctx, fight.GameID, rescored)

	finished, err := rs.maybeFinishGame(ctx, fight.GameID)
	if err != nil {
		// The rescore itself is durable; a failed finish check only delays
		// the derived status flip until the next result.
		log.Printf("[ResultService] finish check failed for game %s: %v", fight.GameID, err)
	}

	log.Printf("[ResultService] fight %s scored: %d picks rescored, %d players updated",
		fightID, len(rescored), playersUpdated)

	return &models.FightResultResponse{
		PicksScored:    len(rescored),
		PlayersUpdated: playersUpdated,
		GameFinished:   finished,
	}, nil
}

// checkOrder enforces the strict scoring policy: only the current fight on
// the card may receive a result.
func (rs *ResultService) checkOrder(ctx context.Context, fight *models.Fight) error {
	fights, err := rs.repo.GetFightsByGame(ctx, fight.GameID)
	if err != nil {
		return fmt.Errorf("failed to load fights: %w", err)
	}

	current := CurrentFight(fights)
	if current == nil || current.ID != fight.ID {
		return ErrOutOfOrder
	}
	return nil
}

// refreshTotals recomputes the cached total of every player touched by a
// rescore. Always a full sum over the player's picks, never an increment, so
// concurrent rescores of different fights converge no matter how their
// writes interleave. Individual failures are logged and skipped.
func (rs *ResultService) refreshTotals(ctx context.Context, gameID uuid.UUID, rescored []repository.PickRescore) int {
	seen := make(map[uuid.UUID]bool)
	updated := 0

	for _, pr := range rescored {
		if seen[pr.PlayerID] {
			continue
		}
		seen[pr.PlayerID] = true

		total, err := rs.repo.SumPlayerPoints(ctx, pr.PlayerID)
		if err != nil {
			log.Printf("[ResultService] failed to sum points for player %s: %v", pr.PlayerID, err)
			continue
		}

		if err := rs.repo.UpdatePlayer(ctx, pr.PlayerID, map[string]interface{}{
			"total_points": total,
			"updated_at":   time.Now(),
		}); err != nil {
			log.Printf("[ResultService] failed to update total for player %s: %v", pr.PlayerID, err)
			continue
		}

		updated++

		player, err := rs.repo.GetPlayerByID(ctx, pr.PlayerID)
		if err != nil {
			continue
		}
		rs.hub.Publish(events.Event{
			Type:   events.EventPlayerUpdated,
			GameID: gameID,
			Payload: events.PlayerUpdated{
				PlayerID:    player.ID,
				DisplayName: player.DisplayName,
				IsReady:     player.IsReady,
				TotalPoints: player.TotalPoints,
			},
		})
	}

	return updated
}

// maybeFinishGame flips a game to finished once every fight has a result
func (rs *ResultService) maybeFinishGame(ctx context.Context, gameID uuid.UUID) (bool, error) {
	undecided, err := rs.repo.CountUndecidedFights(ctx, gameID)
	if err != nil {
		return false, err
	}
	if undecided > 0 {
		return false, nil
	}

	game, err := rs.repo.GetGameByID(ctx, gameID)
	if err != nil {
		return false, err
	}
	if game.Status == models.GameStatusFinished {
		return true, nil
	}

	if err := rs.repo.UpdateGame(ctx, gameID, map[string]interface{}{
		"status":     models.GameStatusFinished,
		"updated_at": time.Now(),
	}); err != nil {
		return false, err
	}

	rs.hub.Publish(events.Event{
		Type:   events.EventGameUpdated,
		GameID: gameID,
		Payload: events.GameUpdated{
			Status: string(models.GameStatusFinished),
		},
	})

	log.Printf("[ResultService] game %s finished: all fights decided", gameID)
	return true, nil
}

func (rs *ResultService) publishRescore(fight *models.Fight, req *models.FightResultRequest, rescored []repository.PickRescore) {
	var winner, method *string
	if req.Winner != nil {
		w := string(*req.Winner)
		winner = &w
	}
	if req.Method != nil {
		m := string(*req.Method)
		method = &m
	}

	rs.hub.Publish(events.Event{
		Type:   events.EventFightUpdated,
		GameID: fight.GameID,
		Payload: events.FightUpdated{
			FightID:      fight.ID,
			ResultWinner: winner,
			ResultMethod: method,
			ResultRound:  req.Round,
		},
	})

	// One event per pick per result write, carrying the previous points so
	// viewers can tell a first score from a correction.
	for _, pr := range rescored {
		rs.hub.Publish(events.Event{
			Type:   events.EventPickScored,
			GameID: fight.GameID,
			Payload: events.PickScored{
				PickID:         pr.PickID,
				PlayerID:       pr.PlayerID,
				FightID:        fight.ID,
				PreviousPoints: pr.OldPoints,
				Points:         pr.NewPoints,
			},
		})
	}
}

func (rs *ResultService) lockFor(fightID uuid.UUID) *sync.Mutex {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	lock, ok := rs.fightLocks[fightID]
	if !ok {
		lock = &sync.Mutex{}
		rs.fightLocks[fightID] = lock
	}
	return lock
}
