package services

import (
	"context"
	"testing"

	"fightpicks/internal/models"
	"fightpicks/internal/repository"
)

func TestSubmitPicksUpsert(t *testing.T) {
	repo, hub := setupServices(t)
	gs := NewGameService(repo, hub, nil)
	ps := NewPickService(repo)
	ctx := context.Background()

	game, _, err := gs.CreateGame(ctx, &models.CreateGameRequest{Name: "Test", HostName: "Host"})
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	_, player, err := gs.JoinGame(ctx, game.Code, "Alice")
	if err != nil {
		t.Fatalf("JoinGame failed: %v", err)
	}
	fights, _ := repo.GetFightsByGame(ctx, game.ID)

	err = ps.SubmitPicks(ctx, player.ID, []models.PickEntry{
		{FightID: fights[0].ID, Winner: corner(models.CornerA), Method: method(models.MethodKO), Round: round(2)},
		{FightID: fights[1].ID, Winner: corner(models.CornerB)},
	})
	if err != nil {
		t.Fatalf("SubmitPicks failed: %v", err)
	}

	picks, err := ps.GetPlayerPicks(ctx, player.ID)
	if err != nil {
		t.Fatalf("GetPlayerPicks failed: %v", err)
	}
	if len(picks) != 2 {
		t.Fatalf("pick count = %d, want 2", len(picks))
	}

	// Resubmitting for the same fight replaces the row entirely
	err = ps.SubmitPicks(ctx, player.ID, []models.PickEntry{
		{FightID: fights[0].ID, Winner: corner(models.CornerB), Method: method(models.MethodDecision), Round: round(3)},
	})
	if err != nil {
		t.Fatalf("second SubmitPicks failed: %v", err)
	}

	picks, _ = ps.GetPlayerPicks(ctx, player.ID)
	if len(picks) != 2 {
		t.Fatalf("pick count after resubmit = %d, want 2", len(picks))
	}

	var forFight0 *models.Pick
	for _, p := range picks {
		if p.FightID == fights[0].ID {
			forFight0 = p
		}
	}
	if forFight0 == nil {
		t.Fatal("pick for first fight disappeared")
	}
	if *forFight0.PickWinner != models.CornerB || *forFight0.PickMethod != models.MethodDecision || *forFight0.PickRound != 3 {
		t.Errorf("pick was not fully replaced: %+v", forFight0)
	}
}

func TestSubmitPicksLockedAfterStart(t *testing.T) {
	repo, hub := setupServices(t)
	gs := NewGameService(repo, hub, nil)
	ps := NewPickService(repo)
	ctx := context.Background()

	game, _, _ := gs.CreateGame(ctx, &models.CreateGameRequest{Name: "Test", HostName: "Host"})
	_, player, _ := gs.JoinGame(ctx, game.Code, "Alice")
	fights, _ := repo.GetFightsByGame(ctx, game.ID)

	err := ps.SubmitPicks(ctx, player.ID, []models.PickEntry{
		{FightID: fights[0].ID, Winner: corner(models.CornerA)},
	})
	if err != nil {
		t.Fatalf("SubmitPicks before start failed: %v", err)
	}

	if _, err := gs.StartGame(ctx, game.ID, nil); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	err = ps.SubmitPicks(ctx, player.ID, []models.PickEntry{
		{FightID: fights[0].ID, Winner: corner(models.CornerB)},
	})
	if err != ErrPicksLocked {
		t.Errorf("SubmitPicks after start error = %v, want ErrPicksLocked", err)
	}

	// The locked submission must not have touched the stored pick
	picks, _ := ps.GetPlayerPicks(ctx, player.ID)
	if len(picks) != 1 || *picks[0].PickWinner != models.CornerA {
		t.Error("locked submission modified the stored pick")
	}
}

func TestSubmitPicksDuplicateFightLastWins(t *testing.T) {
	repo, hub := setupServices(t)
	gs := NewGameService(repo, hub, nil)
	ps := NewPickService(repo)
	ctx := context.Background()

	game, _, _ := gs.CreateGame(ctx, &models.CreateGameRequest{Name: "Test", HostName: "Host"})
	_, player, _ := gs.JoinGame(ctx, game.Code, "Alice")
	fights, _ := repo.GetFightsByGame(ctx, game.ID)

	// Two entries for the same fight in one batch: the later one wins, and
	// the batch must not blow up the single-statement upsert
	err := ps.SubmitPicks(ctx, player.ID, []models.PickEntry{
		{FightID: fights[0].ID, Winner: corner(models.CornerA), Method: method(models.MethodKO), Round: round(1)},
		{FightID: fights[0].ID, Winner: corner(models.CornerB), Method: method(models.MethodDecision), Round: round(3)},
	})
	if err != nil {
		t.Fatalf("SubmitPicks with duplicate fight failed: %v", err)
	}

	picks, _ := ps.GetPlayerPicks(ctx, player.ID)
	if len(picks) != 1 {
		t.Fatalf("pick count = %d, want 1", len(picks))
	}
	if *picks[0].PickWinner != models.CornerB || *picks[0].PickMethod != models.MethodDecision || *picks[0].PickRound != 3 {
		t.Errorf("earlier duplicate entry won: %+v", picks[0])
	}
}

func TestUpsertPicksGuardedByGameStatus(t *testing.T) {
	repo, hub := setupServices(t)
	gs := NewGameService(repo, hub, nil)
	ctx := context.Background()

	game, _, _ := gs.CreateGame(ctx, &models.CreateGameRequest{Name: "Test", HostName: "Host"})
	_, player, _ := gs.JoinGame(ctx, game.Code, "Alice")
	fights, _ := repo.GetFightsByGame(ctx, game.ID)

	if _, err := gs.StartGame(ctx, game.ID, nil); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	// Even a writer that skipped the service's status check cannot land a
	// pick once the game has left the lobby: the write transaction carries
	// its own guard, closing the race against the start flip.
	err := repo.UpsertPicks(ctx, game.ID, []*models.Pick{{
		ID:         newUUID(t),
		PlayerID:   player.ID,
		FightID:    fights[0].ID,
		PickWinner: corner(models.CornerA),
	}})
	if err != repository.ErrGameLocked {
		t.Fatalf("UpsertPicks error = %v, want ErrGameLocked", err)
	}

	picks, _ := repo.GetPicksByPlayer(ctx, player.ID)
	if len(picks) != 0 {
		t.Errorf("guarded upsert still stored %d picks", len(picks))
	}
}

func TestSubmitPicksUnknownPlayer(t *testing.T) {
	repo, hub := setupServices(t)
	_ = hub
	ps := NewPickService(repo)

	err := ps.SubmitPicks(context.Background(), newUUID(t), []models.PickEntry{
		{FightID: newUUID(t), Winner: corner(models.CornerA)},
	})
	if err != ErrPlayerNotFound {
		t.Errorf("SubmitPicks error = %v, want ErrPlayerNotFound", err)
	}
}

func TestSubmitPicksUnknownFight(t *testing.T) {
	repo, hub := setupServices(t)
	gs := NewGameService(repo, hub, nil)
	ps := NewPickService(repo)
	ctx := context.Background()

	game, _, _ := gs.CreateGame(ctx, &models.CreateGameRequest{Name: "Test", HostName: "Host"})
	_, player, _ := gs.JoinGame(ctx, game.Code, "Alice")
	fights, _ := repo.GetFightsByGame(ctx, game.ID)

	// One valid entry plus one for a fight outside the game: the whole
	// batch must be rejected
	err := ps.SubmitPicks(ctx, player.ID, []models.PickEntry{
		{FightID: fights[0].ID, Winner: corner(models.CornerA)},
		{FightID: newUUID(t), Winner: corner(models.CornerB)},
	})
	if err != ErrFightNotFound {
		t.Errorf("SubmitPicks error = %v, want ErrFightNotFound", err)
	}

	picks, _ := ps.GetPlayerPicks(ctx, player.ID)
	if len(picks) != 0 {
		t.Errorf("rejected batch still stored %d picks", len(picks))
	}
}

func TestSubmitPicksEmptyBatch(t *testing.T) {
	repo, _ := setupServices(t)
	ps := NewPickService(repo)

	if err := ps.SubmitPicks(context.Background(), newUUID(t), nil); err == nil {
		t.Error("empty batch should be rejected")
	}
}
