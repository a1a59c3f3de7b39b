package database

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gamelibrary-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed seed/genres.yaml
var defaultGenreSeed []byte

type genreSeedEntry struct {
	Name string `yaml:"name"`
}

// LoadGenreSeed reads the genre list from a YAML file. An empty path yields
// the embedded default list.
func LoadGenreSeed(path string) ([]models.Genre, error) {
	data := defaultGenreSeed
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read genre seed file: %w", err)
		}
		data = raw
	}
	return parseGenreSeed(data)
}

func parseGenreSeed(data []byte) ([]models.Genre, error) {
	var entries []genreSeedEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse genre seed: %w", err)
	}

	seen := make(map[string]bool, len(entries))
	genres := make([]models.Genre, 0, len(entries))
	for i, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("genre seed entry %d has no name", i+1)
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		genres = append(genres, models.Genre{Name: name})
	}
	return genres, nil
}

// SeedGenres populates the genres table when it is empty. Existing reference
// data is never touched.
func SeedGenres(ctx context.Context, db *Database, genres []models.Genre) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Genre{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}
	if count > 0 || len(genres) == 0 {
		return 0, nil
	}

	rows := make([]models.Genre, len(genres))
	for i, g := range genres {
		rows[i] = models.Genre{Name: g.Name}
	}
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("failed to seed genres: %w", err)
	}

	logrus.WithField("genres", len(rows)).Info("Default genres created")
	return len(rows), nil
}
