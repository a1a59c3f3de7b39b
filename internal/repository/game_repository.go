package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gamelibrary-backend/internal/database"
	"gamelibrary-backend/internal/metrics"
	"gamelibrary-backend/internal/models"

	"gorm.io/gorm"
)

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id uint) error
	// FindByID returns nil, nil when no game has the id.
	FindByID(ctx context.Context, id uint) (*models.Game, error)
	FindByIDWithGenre(ctx context.Context, id uint) (*models.Game, error)
	FindAll(ctx context.Context) ([]models.Game, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type gameRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewGameRepository(db *database.Database) GameRepository {
	return &gameRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *gameRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *gameRepository) Create(ctx context.Context, game *models.Game) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	defer metrics.RecordDBOperation("create", "games", time.Now())

	return r.db.WithContext(ctx).Omit("Genre").Create(game).Error
}

func (r *gameRepository) Update(ctx context.Context, game *models.Game) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	defer metrics.RecordDBOperation("update", "games", time.Now())

	// Select forces zero values (empty description, price 0) to be written.
	return r.db.WithContext(ctx).
		Model(&models.Game{ID: game.ID}).
		Select(models.UpdatableColumns).
		Updates(game).Error
}

func (r *gameRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	defer metrics.RecordDBOperation("delete", "games", time.Now())

	return r.db.WithContext(ctx).Delete(&models.Game{}, id).Error
}

func (r *gameRepository) FindByID(ctx context.Context, id uint) (*models.Game, error) {
	return r.find(ctx, id, false)
}

func (r *gameRepository) FindByIDWithGenre(ctx context.Context, id uint) (*models.Game, error) {
	return r.find(ctx, id, true)
}

func (r *gameRepository) find(ctx context.Context, id uint, withGenre bool) (*models.Game, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	defer metrics.RecordDBOperation("find", "games", time.Now())

	query := r.db.WithContext(ctx)
	if withGenre {
		query = query.Preload("Genre")
	}

	var game models.Game
	err := query.First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) FindAll(ctx context.Context) ([]models.Game, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	defer metrics.RecordDBOperation("find_all", "games", time.Now())

	games := make([]models.Game, 0)
	err := r.db.WithContext(ctx).Preload("Genre").Order("id").Find(&games).Error
	return games, err
}

// ExistsByName compares names with Unicode case folding in Go. SQL LOWER
// only folds ASCII on sqlite.
func (r *gameRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	defer metrics.RecordDBOperation("exists_by_name", "games", time.Now())

	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Pluck("name", &names).Error
	if err != nil {
		return false, err
	}
	for _, existing := range names {
		if strings.EqualFold(existing, name) {
			return true, nil
		}
	}
	return false, nil
}
