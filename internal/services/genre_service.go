package services

import (
	"context"
	"fmt"

	"gamelibrary-backend/internal/models"
	"gamelibrary-backend/internal/repository"
)

type GenreService interface {
	GetGenres(ctx context.Context) ([]models.Genre, error)
}

type genreService struct {
	repo repository.GenreRepository
}

func NewGenreService(repo repository.GenreRepository) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) GetGenres(ctx context.Context) ([]models.Genre, error) {
	genres, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	if genres == nil {
		genres = []models.Genre{}
	}
	return genres, nil
}
