package services

import (
	"context"
	"fmt"
	"strings"

	"gamelibrary-backend/internal/metrics"
	"gamelibrary-backend/internal/models"
	"gamelibrary-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type GameService interface {
	AddGame(ctx context.Context, game *models.Game) (Result[*models.Game], error)
	UpdateGame(ctx context.Context, id uint, game *models.Game) (Result[*models.Game], error)
	DeleteGame(ctx context.Context, id uint) (Result[struct{}], error)
	GetGameByID(ctx context.Context, id uint) (Result[*models.Game], error)
	GetGames(ctx context.Context) (Result[[]models.Game], error)
	ImageURL(ctx context.Context, id uint) (Result[string], error)
}

type gameService struct {
	repo     repository.GameRepository
	archiver ImageArchiver
	logger   *logrus.Logger
}

// NewGameService wires the game service. A nil archiver disables image
// archiving.
func NewGameService(repo repository.GameRepository, archiver ImageArchiver, logger *logrus.Logger) GameService {
	if archiver == nil {
		archiver = noopArchiver{}
	}
	return &gameService{
		repo:     repo,
		archiver: archiver,
		logger:   logger,
	}
}

// AddGame inserts a game unless one with the same name (ignoring case)
// exists. The check and the insert are not atomic: concurrent adds of the
// same name can both succeed.
func (s *gameService) AddGame(ctx context.Context, game *models.Game) (Result[*models.Game], error) {
	if game == nil {
		return record(Fail[*models.Game](KindValidation, MsgBadRequest), "add"), nil
	}
	if strings.TrimSpace(game.Name) == "" {
		return record(Fail[*models.Game](KindValidation, MsgNameRequired), "add"), nil
	}

	exists, err := s.repo.ExistsByName(ctx, game.Name)
	if err != nil {
		metrics.RecordCatalogOperation("add", "error")
		return Result[*models.Game]{}, fmt.Errorf("failed to check existing game: %w", err)
	}
	if exists {
		s.logger.WithField("name", game.Name).Info("Rejected duplicate game name")
		return record(Fail[*models.Game](KindConflict, MsgProductExists), "add"), nil
	}

	game.ID = 0
	game.Genre = nil
	if err := s.repo.Create(ctx, game); err != nil {
		metrics.RecordCatalogOperation("add", "error")
		return Result[*models.Game]{}, fmt.Errorf("failed to create game: %w", err)
	}

	s.archiveImage(ctx, game)
	s.logger.WithFields(logrus.Fields{"id": game.ID, "name": game.Name}).Info("Game added")
	return record(Ok(game, MsgProductAdded), "add"), nil
}

// UpdateGame overwrites every mutable field of an existing game. Names are
// not re-checked for duplicates here, unlike AddGame.
func (s *gameService) UpdateGame(ctx context.Context, id uint, game *models.Game) (Result[*models.Game], error) {
	if game == nil {
		return record(Fail[*models.Game](KindValidation, MsgBadRequest), "update"), nil
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		metrics.RecordCatalogOperation("update", "error")
		return Result[*models.Game]{}, fmt.Errorf("failed to load game %d: %w", id, err)
	}
	if existing == nil {
		return record(Fail[*models.Game](KindNotFound, MsgGameNotFound), "update"), nil
	}

	existing.ApplyUpdate(game)
	if err := s.repo.Update(ctx, existing); err != nil {
		metrics.RecordCatalogOperation("update", "error")
		return Result[*models.Game]{}, fmt.Errorf("failed to update game %d: %w", id, err)
	}

	s.archiveImage(ctx, existing)
	s.logger.WithField("id", id).Info("Game updated")
	return record(Ok(existing, MsgGameUpdated), "update"), nil
}

func (s *gameService) DeleteGame(ctx context.Context, id uint) (Result[struct{}], error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		metrics.RecordCatalogOperation("delete", "error")
		return Result[struct{}]{}, fmt.Errorf("failed to load game %d: %w", id, err)
	}
	if existing == nil {
		return record(Fail[struct{}](KindNotFound, MsgGameIsNotFound), "delete"), nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		metrics.RecordCatalogOperation("delete", "error")
		return Result[struct{}]{}, fmt.Errorf("failed to delete game %d: %w", id, err)
	}

	if err := s.archiver.Remove(ctx, id); err != nil {
		metrics.ImageArchiveFailures.WithLabelValues("remove").Inc()
		s.logger.WithError(err).WithField("id", id).Warn("Failed to remove archived image")
	}

	s.logger.WithField("id", id).Info("Game removed")
	return record(Ok(struct{}{}, MsgGameRemoved), "delete"), nil
}

func (s *gameService) GetGameByID(ctx context.Context, id uint) (Result[*models.Game], error) {
	game, err := s.repo.FindByIDWithGenre(ctx, id)
	if err != nil {
		metrics.RecordCatalogOperation("get", "error")
		return Result[*models.Game]{}, fmt.Errorf("failed to load game %d: %w", id, err)
	}
	if game == nil {
		return record(Fail[*models.Game](KindNotFound, MsgGameNotFound), "get"), nil
	}
	return record(Ok(game, ""), "get"), nil
}

func (s *gameService) GetGames(ctx context.Context) (Result[[]models.Game], error) {
	games, err := s.repo.FindAll(ctx)
	if err != nil {
		metrics.RecordCatalogOperation("list", "error")
		return Result[[]models.Game]{}, fmt.Errorf("failed to list games: %w", err)
	}
	if games == nil {
		games = []models.Game{}
	}
	return record(Ok(games, ""), "list"), nil
}

// ImageURL returns a presigned link to the archived copy of a game's image.
func (s *gameService) ImageURL(ctx context.Context, id uint) (Result[string], error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Result[string]{}, fmt.Errorf("failed to load game %d: %w", id, err)
	}
	if existing == nil {
		return Fail[string](KindNotFound, MsgGameNotFound), nil
	}

	url, err := s.archiver.PresignedURL(ctx, id)
	if err != nil {
		return Result[string]{}, fmt.Errorf("failed to presign image for game %d: %w", id, err)
	}
	if url == "" {
		return Fail[string](KindNotFound, "Image not archived"), nil
	}
	return Ok(url, ""), nil
}

func (s *gameService) archiveImage(ctx context.Context, game *models.Game) {
	if err := s.archiver.Archive(ctx, game.ID, game.Image); err != nil {
		metrics.ImageArchiveFailures.WithLabelValues("archive").Inc()
		s.logger.WithError(err).WithField("id", game.ID).Warn("Failed to archive game image")
	}
}

func record[T any](r Result[T], operation string) Result[T] {
	metrics.RecordCatalogOperation(operation, r.Kind.String())
	return r
}
