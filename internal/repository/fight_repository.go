package repository

import (
	"context"

	"fightpicks/internal/models"

	"github.com/google/uuid"
)

// CreateFights bulk-inserts a game's fight card
func (r *Repository) CreateFights(ctx context.Context, fights []*models.Fight) error {
	return r.db.WithContext(ctx).Create(&fights).Error
}

// GetFightByID retrieves a fight by ID
func (r *Repository) GetFightByID(ctx context.Context, fightID uuid.UUID) (*models.Fight, error) {
	var fight models.Fight
	err := r.db.WithContext(ctx).Where("id = ?", fightID).First(&fight).Error
	if err != nil {
		return nil, err
	}
	return &fight, nil
}

// GetFightsByGame retrieves a game's fights in card order
func (r *Repository) GetFightsByGame(ctx context.Context, gameID uuid.UUID) ([]*models.Fight, error) {
	var fights []*models.Fight
	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("order_index ASC").
		Find(&fights).Error
	if err != nil {
		return nil, err
	}
	return fights, nil
}

// CountUndecidedFights counts fights in a game with no result field set
func (r *Repository) CountUndecidedFights(ctx context.Context, gameID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Fight{}).
		Where("game_id = ? AND result_winner IS NULL AND result_method IS NULL AND result_round IS NULL", gameID).
		Count(&count).Error
	return count, err
}
