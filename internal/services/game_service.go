package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fightpicks/internal/events"
	"fightpicks/internal/models"
	"fightpicks/internal/repository"
	"fightpicks/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// codeRetries bounds the unique-code generation loop; with a 32^5 code space
// collisions are rare enough that hitting the bound means something is wrong
// with the store, not the generator.
const codeRetries = 10

type GameService struct {
	repo *repository.Repository
	hub  *events.Hub
	card []CardEntry
}

func NewGameService(repo *repository.Repository, hub *events.Hub, card []CardEntry) *GameService {
	if len(card) == 0 {
		card = DefaultFightCard
	}
	return &GameService{
		repo: repo,
		hub:  hub,
		card: card,
	}
}

// CreateGame creates a lobby game with its fight card and the host joined as
// the first player. Returns the game and the host's player row.
func (gs *GameService) CreateGame(ctx context.Context, req *models.CreateGameRequest) (*models.Game, *models.Player, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "UFC Main Card"
	}
	hostName := strings.TrimSpace(req.HostName)
	if hostName == "" {
		hostName = "Host"
	}

	code, err := gs.uniqueCode(ctx)
	if err != nil {
		return nil, nil, err
	}

	game := &models.Game{
		ID:       uuid.New(),
		Code:     code,
		Name:     name,
		HostName: hostName,
		Status:   models.GameStatusLobby,
	}

	if err := gs.repo.CreateGame(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("failed to create game: %w", err)
	}

	host := &models.Player{
		ID:          uuid.New(),
		GameID:      game.ID,
		DisplayName: hostName,
		IsHost:      true,
	}

	if err := gs.repo.CreatePlayer(ctx, host); err != nil {
		return nil, nil, fmt.Errorf("failed to create host player: %w", err)
	}

	fights := make([]*models.Fight, 0, len(gs.card))
	for i, entry := range gs.card {
		fights = append(fights, &models.Fight{
			ID:              uuid.New(),
			GameID:          game.ID,
			FighterA:        entry.FighterA,
			FighterB:        entry.FighterB,
			FighterACountry: entry.FighterACountry,
			FighterBCountry: entry.FighterBCountry,
			OrderIndex:      i + 1,
		})
	}

	if err := gs.repo.CreateFights(ctx, fights); err != nil {
		return nil, nil, fmt.Errorf("failed to create fight card: %w", err)
	}

	log.Printf("[GameService] created game %s (code %s) with %d fights", game.ID, game.Code, len(fights))
	return game, host, nil
}

// JoinGame adds a player to a game looked up by join code
func (gs *GameService) JoinGame(ctx context.Context, code, displayName string) (*models.Game, *models.Player, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	displayName = strings.TrimSpace(displayName)
	if code == "" || displayName == "" {
		return nil, nil, errors.New("game code and display name are required")
	}

	game, err := gs.repo.GetGameByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrGameNotFound
		}
		return nil, nil, fmt.Errorf("failed to load game: %w", err)
	}

	player := &models.Player{
		ID:          uuid.New(),
		GameID:      game.ID,
		DisplayName: displayName,
	}

	if err := gs.repo.CreatePlayer(ctx, player); err != nil {
		return nil, nil, fmt.Errorf("failed to create player: %w", err)
	}

	gs.hub.Publish(events.Event{
		Type:   events.EventPlayerUpdated,
		GameID: game.ID,
		Payload: events.PlayerUpdated{
			PlayerID:    player.ID,
			DisplayName: player.DisplayName,
		},
	})

	return game, player, nil
}

// StartGame flips a lobby game to live and stamps the start instant. Picks
// are rejected from the moment this commits, even if clients are still
// showing a countdown toward a future start instant. One-way: starting a
// game that already left the lobby fails.
func (gs *GameService) StartGame(ctx context.Context, gameID uuid.UUID, startAt *time.Time) (*models.Game, error) {
	startedAt := time.Now()
	if startAt != nil && startAt.After(startedAt) {
		startedAt = *startAt
	}

	rows, err := gs.repo.StartGame(ctx, gameID, map[string]interface{}{
		"status":     models.GameStatusLive,
		"started_at": startedAt,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	game, err := gs.repo.GetGameByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	if rows == 0 {
		// The guarded update matched nothing: the game exists but already
		// left the lobby.
		return nil, ErrAlreadyStarted
	}

	gs.publishGameUpdate(game)
	log.Printf("[GameService] game %s started, picks locked", gameID)
	return game, nil
}

// SetReady toggles a player's lobby ready flag
func (gs *GameService) SetReady(ctx context.Context, playerID uuid.UUID, ready bool) (*models.Player, error) {
	return gs.updatePlayer(ctx, playerID, map[string]interface{}{
		"is_ready":   ready,
		"updated_at": time.Now(),
	})
}

// SetPhoto stores a reference to the player's uploaded photo
func (gs *GameService) SetPhoto(ctx context.Context, playerID uuid.UUID, photoURL string) (*models.Player, error) {
	return gs.updatePlayer(ctx, playerID, map[string]interface{}{
		"photo_url":  photoURL,
		"updated_at": time.Now(),
	})
}

// GetSnapshot loads a game with its fights and players in one read
func (gs *GameService) GetSnapshot(ctx context.Context, code string) (*models.GameSnapshot, error) {
	game, err := gs.repo.GetGameByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	fights, err := gs.repo.GetFightsByGame(ctx, game.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fights: %w", err)
	}

	players, err := gs.repo.GetPlayersByGame(ctx, game.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	return &models.GameSnapshot{
		Game:    game,
		Fights:  fights,
		Players: players,
	}, nil
}

// GetGameByID loads a single game
func (gs *GameService) GetGameByID(ctx context.Context, gameID uuid.UUID) (*models.Game, error) {
	game, err := gs.repo.GetGameByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return game, nil
}

func (gs *GameService) updatePlayer(ctx context.Context, playerID uuid.UUID, updates map[string]interface{}) (*models.Player, error) {
	player, err := gs.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	if err := gs.repo.UpdatePlayer(ctx, playerID, updates); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	player, err = gs.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload player: %w", err)
	}

	gs.hub.Publish(events.Event{
		Type:   events.EventPlayerUpdated,
		GameID: player.GameID,
		Payload: events.PlayerUpdated{
			PlayerID:    player.ID,
			DisplayName: player.DisplayName,
			IsReady:     player.IsReady,
			TotalPoints: player.TotalPoints,
		},
	})

	return player, nil
}

func (gs *GameService) uniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < codeRetries; i++ {
		code, err := utils.GenerateGameCode()
		if err != nil {
			return "", err
		}

		exists, err := gs.repo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique game code")
}

func (gs *GameService) publishGameUpdate(game *models.Game) {
	var startedAt *string
	if game.StartedAt != nil {
		s := game.StartedAt.Format(time.RFC3339)
		startedAt = &s
	}
	gs.hub.Publish(events.Event{
		Type:   events.EventGameUpdated,
		GameID: game.ID,
		Payload: events.GameUpdated{
			Status:    string(game.Status),
			StartedAt: startedAt,
		},
	})
}
