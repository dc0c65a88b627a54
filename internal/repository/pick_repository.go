package repository

import (
	"context"
	"errors"

	"fightpicks/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrGameLocked is returned when a pick batch targets a game that has left
// the lobby.
var ErrGameLocked = errors.New("game is no longer accepting picks")

// UpsertPicks writes a batch of picks keyed by (player_id, fight_id). An
// existing row for the pair is replaced in full: all three pick fields take
// the incoming values. points_awarded is left untouched here; only the
// rescoring path writes it. The batch runs inside a transaction so a player
// never ends up with half of one submission, and the transaction re-checks
// the game's status so a submission racing the start flip cannot land after
// picks lock.
func (r *Repository) UpsertPicks(ctx context.Context, gameID uuid.UUID, picks []*models.Pick) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Game{}).
			Where("id = ? AND status = ?", gameID, models.GameStatusLobby).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrGameLocked
		}

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "player_id"}, {Name: "fight_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"pick_winner", "pick_method", "pick_round", "updated_at",
			}),
		}).Create(&picks).Error
	})
}

// GetPicksByFight retrieves every pick referencing a fight
func (r *Repository) GetPicksByFight(ctx context.Context, fightID uuid.UUID) ([]*models.Pick, error) {
	var picks []*models.Pick
	err := r.db.WithContext(ctx).Where("fight_id = ?", fightID).Find(&picks).Error
	if err != nil {
		return nil, err
	}
	return picks, nil
}

// GetPicksByPlayer retrieves all of a player's picks
func (r *Repository) GetPicksByPlayer(ctx context.Context, playerID uuid.UUID) ([]*models.Pick, error) {
	var picks []*models.Pick
	err := r.db.WithContext(ctx).Where("player_id = ?", playerID).Find(&picks).Error
	if err != nil {
		return nil, err
	}
	return picks, nil
}

// SumPlayerPoints computes a player's true total from their scored picks,
// treating unscored picks as zero
func (r *Repository) SumPlayerPoints(ctx context.Context, playerID uuid.UUID) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Pick{}).
		Where("player_id = ?", playerID).
		Select("COALESCE(SUM(points_awarded), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}
