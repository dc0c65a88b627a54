package repository

import (
	"context"

	"fightpicks/internal/models"

	"github.com/google/uuid"
)

// CreateGame creates a new game
func (r *Repository) CreateGame(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

// GetGameByID retrieves a game by ID
func (r *Repository) GetGameByID(ctx context.Context, gameID uuid.UUID) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).Where("id = ?", gameID).First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetGameByCode retrieves a game by its join code
func (r *Repository) GetGameByCode(ctx context.Context, code string) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// CodeExists reports whether a join code is already taken
func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Game{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateGame applies field updates to a game
func (r *Repository) UpdateGame(ctx context.Context, gameID uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Game{}).Where("id = ?", gameID).Updates(updates).Error
}

// StartGame flips a lobby game to live, guarded so a double start keeps the
// first start instant. Returns the number of rows changed.
func (r *Repository) StartGame(ctx context.Context, gameID uuid.UUID, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Game{}).
		Where("id = ? AND status = ?", gameID, models.GameStatusLobby).
		Updates(updates)
	return result.RowsAffected, result.Error
}
