package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"fightpicks/internal/models"
	"fightpicks/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressionService classifies a game's fights for host and card screens.
// Exactly one fight is current at a time: the earliest fight on the card that
// is not yet fully scored. Once every fight is fully scored nothing is
// current. Presentation may reverse the display order; classification always
// runs in card order.
type ProgressionService struct {
	repo *repository.Repository
}

func NewProgressionService(repo *repository.Repository) *ProgressionService {
	return &ProgressionService{repo: repo}
}

// GetProgress returns one classification per fight, in card order
func (ps *ProgressionService) GetProgress(ctx context.Context, gameID uuid.UUID) ([]models.FightProgress, error) {
	fights, err := ps.repo.GetFightsByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fights: %w", err)
	}
	if len(fights) == 0 {
		if _, err := ps.repo.GetGameByID(ctx, gameID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrGameNotFound
			}
			return nil, fmt.Errorf("failed to load game: %w", err)
		}
	}
	return TrackFights(fights), nil
}

// TrackFights classifies fights as scored, current, or upcoming. A fight
// counts as scored here only when all three result fields are set; a
// partially recorded result keeps the fight current so the host finishes it
// before moving on.
func TrackFights(fights []*models.Fight) []models.FightProgress {
	ordered := make([]*models.Fight, len(fights))
	copy(ordered, fights)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	progress := make([]models.FightProgress, 0, len(ordered))
	currentSeen := false

	for _, fight := range ordered {
		status := models.ProgressionUpcoming
		switch {
		case fight.FullyScored():
			status = models.ProgressionScored
		case !currentSeen:
			status = models.ProgressionCurrent
			currentSeen = true
		}
		progress = append(progress, models.FightProgress{
			FightID: fight.ID,
			Status:  status,
		})
	}

	return progress
}

// CurrentFight returns the fight that is next in line for a result, or nil
// when every fight is fully scored
func CurrentFight(fights []*models.Fight) *models.Fight {
	ordered := make([]*models.Fight, len(fights))
	copy(ordered, fights)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	for _, fight := range ordered {
		if !fight.FullyScored() {
			return fight
		}
	}
	return nil
}
