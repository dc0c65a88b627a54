package repository

import (
	"context"
	"time"

	"fightpicks/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PickRescore reports one pick's transition during a fight rescore
type PickRescore struct {
	PickID    uuid.UUID
	PlayerID  uuid.UUID
	OldPoints *int
	NewPoints int
}

// RescoreFight atomically replaces a fight's result fields and rewrites the
// awarded points of every pick on the fight using the supplied score
// function. Either the new result and every pick's points land together or
// nothing does, so readers never observe picks scored against two different
// outcomes of the same fight.
func (r *Repository) RescoreFight(
	ctx context.Context,
	fightID uuid.UUID,
	updates map[string]interface{},
	score func(*models.Pick) int,
) ([]PickRescore, error) {
	var rescored []PickRescore

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Fight{}).Where("id = ?", fightID).Updates(updates).Error; err != nil {
			return err
		}

		var picks []*models.Pick
		if err := tx.Where("fight_id = ?", fightID).Find(&picks).Error; err != nil {
			return err
		}

		rescored = make([]PickRescore, 0, len(picks))
		for _, pick := range picks {
			points := score(pick)

			if err := tx.Model(&models.Pick{}).Where("id = ?", pick.ID).Updates(map[string]interface{}{
				"points_awarded": points,
				"updated_at":     time.Now(),
			}).Error; err != nil {
				return err
			}

			rescored = append(rescored, PickRescore{
				PickID:    pick.ID,
				PlayerID:  pick.PlayerID,
				OldPoints: pick.PointsAwarded,
				NewPoints: points,
			})
		}

		return nil
	})

	if err != nil {
		return nil, err
	}
	return rescored, nil
}
