package services

import (
	"context"
	"strings"
	"testing"

	"fightpicks/internal/models"
)

func TestCreateGame(t *testing.T) {
	repo, hub := setupServices(t)
	gs := NewGameService(repo, hub, nil)

	game, host, err := gs.CreateGame(context.Background(), &models.CreateGameRequest{
		Name:     "Fight Night",
		HostName: "Dana",
	})
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	if game.Status != models.GameStatusLobby {
		t.Errorf("new game status = %s, want lobby", game.Status)
	}
	if len(game.Code) != 5 {
		t.Errorf("code length = %d, want 5", len(game.Code))
	}
	for _, ch := range game.Code {
		if strings.ContainsRune("O0I1", ch) {
			t.Errorf("code %s contains ambiguous character %c", game.Code, ch)
		}
	}

	if !host.IsHost {
		t.Error("host player is not flagged as host")
	}
	if host.DisplayName != "Dana" {
		t.Errorf("host display name = %s, want Dana", host.DisplayName)
	}

	fights, err := repo.GetFightsByGame(context.Background(), game.ID)
	if err != nil {
		t.Fatalf("failed to load fights: %v", err)
	}
	if len(fights) != len(DefaultFightCard) {
		t.Fatalf("fight count = %d, want %d", len(fights), len(DefaultFightCard))
	}
	for i, fight := range fights {
		if fight.OrderIndex != i+1 {
			t.Errorf("fight %d has order_index %d", i, fight.OrderIndex)
		}
		if fight.Decided() {
			t.Errorf("new fight %d already has a result", i)
		}
	}
}

func TestCreateGameDefaults(t *testing.T) {
	repo, hub := setupServices(t)
	gs := NewGameService(repo, hub, nil)

	game, host, err := gs.CreateGame(context.Background(), &models.CreateGameRequest{})
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	if game.Name == "" || host.DisplayName == "" {
		t.Error("empty request should fall back to default name and host name")
	}
}

func TestJoinGame(t *testing.T) {
	repo, hub := setupServices(t)
	gs := NewGameService(repo, hub, nil)

	game, _, err := gs.CreateGame(context.Background(), &models.CreateGameRequest{Name: "Test", HostName: "Host"})
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	// Lowercase code with whitespace still joins
	joined, player, err := gs.JoinGame(context.Background(), " "+strings.ToLower(game.Code)+" ", "Alice")
	if err != nil {
		t.Fatalf("JoinGame failed: %v", err)
	}
	if joined.ID != game.ID {
		t.Error("joined the wrong game")
	}
	if player.IsHost {
		t.Error("joining player must not be host")
	}

	players, err := repo.GetPlayersByGame(context.Background(), game.ID)
	if err != nil {
		t.Fatalf("failed to load players: %v", err)
	}
	if len(players) != 2 {
		t.Errorf("player count = %d, want 2", len(players))
	}
}

func TestJoinGameUnknownCode(t *testing.T) {
	repo, hub := setupServices(t)
	gs := NewGameService(repo, hub, nil)

	_, _, err := gs.JoinGame(context.Background(), "ZZZZZ", "Alice")
	if err != ErrGameNotFound {
		t.Errorf("JoinGame error = %v, want ErrGameNotFound", err)
	}
}

func TestStartGame(t *testing.T) {
	repo, hub := setupServices(t)
	gs := NewGameService(repo, hub, nil)

	game, _, err := gs.CreateGame(context.Background(), &models.CreateGameRequest{Name: "Test", HostName: "Host"})
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	started, err := gs.StartGame(context.Background(), game.ID, nil)
	if err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	if started.Status != models.GameStatusLive {
		t.Errorf("status = %s, want live", started.Status)
	}
	if started.StartedAt == nil {
		t.Error("started game has no start instant")
	}
	if !started.PicksLocked() {
		t.Error("live game must report picks locked")
	}

	// Starting twice is rejected and keeps the first start instant
	_, err = gs.StartGame(context.Background(), game.ID, nil)
	if err != ErrAlreadyStarted {
		t.Errorf("second StartGame error = %v, want ErrAlreadyStarted", err)
	}

	reloaded, err := gs.GetGameByID(context.Background(), game.ID)
	if err != nil {
		t.Fatalf("failed to reload game: %v", err)
	}
	if !reloaded.StartedAt.Equal(*started.StartedAt) {
		t.Error("double start changed the start instant")
	}
}

func TestStartGameNotFound(t *testing.T) {
	repo, hub := setupServices(t)
	gs := NewGameService(repo, hub, nil)

	_, err := gs.StartGame(context.Background(), newUUID(t), nil)
	if err != ErrGameNotFound {
		t.Errorf("StartGame error = %v, want ErrGameNotFound", err)
	}
}

func TestSetReady(t *testing.T) {
	repo, hub := setupServices(t)
	gs := NewGameService(repo, hub, nil)

	game, _, err := gs.CreateGame(context.Background(), &models.CreateGameRequest{Name: "Test", HostName: "Host"})
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	_, player, err := gs.JoinGame(context.Background(), game.Code, "Alice")
	if err != nil {
		t.Fatalf("JoinGame failed: %v", err)
	}

	updated, err := gs.SetReady(context.Background(), player.ID, true)
	if err != nil {
		t.Fatalf("SetReady failed: %v", err)
	}
	if !updated.IsReady {
		t.Error("player not marked ready")
	}

	updated, err = gs.SetReady(context.Background(), player.ID, false)
	if err != nil {
		t.Fatalf("SetReady failed: %v", err)
	}
	if updated.IsReady {
		t.Error("player still marked ready")
	}
}

func TestGetSnapshot(t *testing.T) {
	repo, hub := setupServices(t)
	gs := NewGameService(repo, hub, nil)

	game, _, err := gs.CreateGame(context.Background(), &models.CreateGameRequest{Name: "Test", HostName: "Host"})
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	snapshot, err := gs.GetSnapshot(context.Background(), game.Code)
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if snapshot.Game.ID != game.ID {
		t.Error("snapshot returned the wrong game")
	}
	if len(snapshot.Fights) != len(DefaultFightCard) {
		t.Errorf("snapshot fights = %d, want %d", len(snapshot.Fights), len(DefaultFightCard))
	}
	if len(snapshot.Players) != 1 {
		t.Errorf("snapshot players = %d, want 1", len(snapshot.Players))
	}
}
