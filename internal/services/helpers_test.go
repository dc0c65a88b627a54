package services

import (
	"fmt"
	"testing"

	"fightpicks/internal/events"
	"fightpicks/internal/models"
	"fightpicks/internal/repository"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database named after the test so
// tests never share state, and migrates the game schema into it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Game{},
		&models.Fight{},
		&models.Player{},
		&models.Pick{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func setupServices(t *testing.T) (*repository.Repository, *events.Hub) {
	t.Helper()
	db := setupTestDB(t)
	return repository.NewRepository(db), events.NewHub()
}

func newUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

func corner(c models.Corner) *models.Corner { return &c }
func method(m models.Method) *models.Method { return &m }
func round(r int) *int                      { return &r }
