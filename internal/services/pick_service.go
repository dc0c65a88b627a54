package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fightpicks/internal/models"
	"fightpicks/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PickService struct {
	repo *repository.Repository
}

func NewPickService(repo *repository.Repository) *PickService {
	return &PickService{repo: repo}
}

// SubmitPicks upserts a player's picks for the listed fights as one
// all-or-nothing batch. Each entry carries the player's full pick state for
// that fight and replaces any earlier submission for the same fight. Rejected
// once the game has left the lobby: the lock is checked against the game's
// status at submit time, not against any client-side countdown.
func (ps *PickService) SubmitPicks(ctx context.Context, playerID uuid.UUID, entries []models.PickEntry) error {
	if len(entries) == 0 {
		return errors.New("no picks to save")
	}

	player, err := ps.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to load player: %w", err)
	}

	game, err := ps.repo.GetGameByID(ctx, player.GameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return fmt.Errorf("failed to load game: %w", err)
	}

	if game.PicksLocked() {
		return ErrPicksLocked
	}

	fights, err := ps.repo.GetFightsByGame(ctx, game.ID)
	if err != nil {
		return fmt.Errorf("failed to load fights: %w", err)
	}

	onCard := make(map[uuid.UUID]bool, len(fights))
	for _, f := range fights {
		onCard[f.ID] = true
	}

	// Last entry wins when a batch names the same fight twice; a duplicate
	// inside one statement would otherwise trip the conflict clause.
	byFight := make(map[uuid.UUID]int, len(entries))
	picks := make([]*models.Pick, 0, len(entries))
	for _, entry := range entries {
		if !onCard[entry.FightID] {
			return ErrFightNotFound
		}
		pick := &models.Pick{
			ID:         uuid.New(),
			PlayerID:   playerID,
			FightID:    entry.FightID,
			PickWinner: entry.Winner,
			PickMethod: entry.Method,
			PickRound:  entry.Round,
		}
		if i, seen := byFight[entry.FightID]; seen {
			picks[i] = pick
			continue
		}
		byFight[entry.FightID] = len(picks)
		picks = append(picks, pick)
	}

	if err := ps.repo.UpsertPicks(ctx, game.ID, picks); err != nil {
		if errors.Is(err, repository.ErrGameLocked) {
			return ErrPicksLocked
		}
		return fmt.Errorf("failed to save picks: %w", err)
	}

	log.Printf("[PickService] player %s saved %d picks in game %s", playerID, len(picks), game.ID)
	return nil
}

// GetPlayerPicks returns all of a player's picks
func (ps *PickService) GetPlayerPicks(ctx context.Context, playerID uuid.UUID) ([]*models.Pick, error) {
	if _, err := ps.repo.GetPlayerByID(ctx, playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	picks, err := ps.repo.GetPicksByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load picks: %w", err)
	}
	return picks, nil
}
