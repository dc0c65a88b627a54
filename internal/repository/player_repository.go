package repository

import (
	"context"

	"fightpicks/internal/models"

	"github.com/google/uuid"
)

// CreatePlayer creates a new player
func (r *Repository) CreatePlayer(ctx context.Context, player *models.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

// GetPlayerByID retrieves a player by ID
func (r *Repository) GetPlayerByID(ctx context.Context, playerID uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).Where("id = ?", playerID).First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetPlayersByGame retrieves all players in a game, oldest first
func (r *Repository) GetPlayersByGame(ctx context.Context, gameID uuid.UUID) ([]*models.Player, error) {
	var players []*models.Player
	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("created_at ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetLeaderboard retrieves a game's players ranked by total points descending,
// display name ascending on ties so the order is deterministic
func (r *Repository) GetLeaderboard(ctx context.Context, gameID uuid.UUID) ([]*models.Player, error) {
	var players []*models.Player
	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("total_points DESC").
		Order("display_name ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// UpdatePlayer applies field updates to a player
func (r *Repository) UpdatePlayer(ctx context.Context, playerID uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Player{}).Where("id = ?", playerID).Updates(updates).Error
}
