// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"gamelibrary-backend/internal/config"
	"gamelibrary-backend/internal/database"
	"gamelibrary-backend/internal/models"
)

func Config() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		SQLitePath:   ":memory:",
		QueryTimeout: 5 * time.Second,
	}
}

// New returns a migrated in-memory database. It is closed when the test ends.
func New(t testing.TB) *database.Database {
	t.Helper()

	db, err := database.Connect(Config())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// NewSeeded returns a database whose genres table holds the embedded default
// list, so genre 1 is "RPG".
func NewSeeded(t testing.TB) *database.Database {
	t.Helper()

	db := New(t)
	genres, err := database.LoadGenreSeed("")
	if err != nil {
		t.Fatalf("load genre seed: %v", err)
	}
	if _, err := database.SeedGenres(context.Background(), db, genres); err != nil {
		t.Fatalf("seed genres: %v", err)
	}
	return db
}

// Genres returns the seeded genres ordered by id.
func Genres(t testing.TB, db *database.Database) []models.Genre {
	t.Helper()

	var genres []models.Genre
	if err := db.Order("id").Find(&genres).Error; err != nil {
		t.Fatalf("list genres: %v", err)
	}
	return genres
}
