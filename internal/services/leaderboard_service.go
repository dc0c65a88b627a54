package services

import (
	"context"
	"errors"
	"fmt"

	"fightpicks/internal/models"
	"fightpicks/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaderboardService exposes the ranked standings view. Read-only: it never
// touches the cached totals it reports.
type LeaderboardService struct {
	repo *repository.Repository
}

func NewLeaderboardService(repo *repository.Repository) *LeaderboardService {
	return &LeaderboardService{repo: repo}
}

// GetLeaderboard returns a game's players ordered by total points descending,
// name ascending on ties
func (ls *LeaderboardService) GetLeaderboard(ctx context.Context, gameID uuid.UUID) ([]*models.Player, error) {
	if _, err := ls.repo.GetGameByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	players, err := ls.repo.GetLeaderboard(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return players, nil
}
