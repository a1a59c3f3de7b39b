package repository

import (
	"context"
	"time"

	"gamelibrary-backend/internal/database"
	"gamelibrary-backend/internal/metrics"
	"gamelibrary-backend/internal/models"
)

type GenreRepository interface {
	FindAll(ctx context.Context) ([]models.Genre, error)
}

type genreRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *genreRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	defer metrics.RecordDBOperation("find_all", "genres", time.Now())

	genres := make([]models.Genre, 0)
	err := r.db.WithContext(ctx).Order("id").Find(&genres).Error
	return genres, err
}
