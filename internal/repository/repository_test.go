package repository

import (
	"context"
	"testing"
	"time"

	"gamelibrary-backend/internal/database/dbtest"
	"gamelibrary-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(name string) *models.Game {
	return &models.Game{
		Name:         name,
		Description:  "desc " + name,
		GenreID:      1,
		Price:        19.99,
		ReleasedDate: models.NewDate(2024, time.January, 1),
		Image:        "QQ==",
	}
}

func TestGameRepositoryCreateAndFind(t *testing.T) {
	db := dbtest.NewSeeded(t)
	repo := NewGameRepository(db)
	ctx := context.Background()

	game := newGame("Chrono")
	require.NoError(t, repo.Create(ctx, game))
	require.NotZero(t, game.ID)

	plain, err := repo.FindByID(ctx, game.ID)
	require.NoError(t, err)
	require.NotNil(t, plain)
	assert.Nil(t, plain.Genre, "plain lookup does not join the genre")

	joined, err := repo.FindByIDWithGenre(ctx, game.ID)
	require.NoError(t, err)
	require.NotNil(t, joined.Genre)
	assert.Equal(t, "RPG", joined.Genre.Name)
	assert.Equal(t, "2024-01-01", joined.ReleasedDate.String())
	assert.Equal(t, "QQ==", joined.Image)
}

func TestGameRepositoryFindMissingReturnsNil(t *testing.T) {
	repo := NewGameRepository(dbtest.NewSeeded(t))

	game, err := repo.FindByIDWithGenre(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, game)
}

func TestGameRepositoryExistsByNameIgnoresCase(t *testing.T) {
	repo := NewGameRepository(dbtest.NewSeeded(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newGame("Chrono Trigger")))

	exists, err := repo.ExistsByName(ctx, "chrono TRIGGER")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Chrono")
	require.NoError(t, err)
	assert.False(t, exists, "match is exact apart from case")
}

func TestGameRepositoryExistsByNameFoldsNonASCII(t *testing.T) {
	repo := NewGameRepository(dbtest.NewSeeded(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newGame("Élan")))

	for _, name := range []string{"élan", "ÉLAN", "Élan"} {
		exists, err := repo.ExistsByName(ctx, name)
		require.NoError(t, err)
		assert.True(t, exists, name)
	}

	exists, err := repo.ExistsByName(ctx, "Elan")
	require.NoError(t, err)
	assert.False(t, exists, "accents are not stripped")
}

func TestGameRepositoryUpdateWritesZeroValues(t *testing.T) {
	repo := NewGameRepository(dbtest.NewSeeded(t))
	ctx := context.Background()
	game := newGame("Chrono")
	require.NoError(t, repo.Create(ctx, game))

	require.NoError(t, repo.Update(ctx, &models.Game{ID: game.ID, Name: "Chrono", GenreID: 2}))

	got, err := repo.FindByIDWithGenre(ctx, game.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Description)
	assert.Zero(t, got.Price)
	assert.Empty(t, got.Image)
	assert.True(t, got.ReleasedDate.IsZero())
	assert.Equal(t, "Action", got.Genre.Name)
}

func TestGameRepositoryDeleteAndFindAll(t *testing.T) {
	repo := NewGameRepository(dbtest.NewSeeded(t))
	ctx := context.Background()

	games, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, games)
	assert.Empty(t, games)

	first, second := newGame("A"), newGame("B")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Delete(ctx, first.ID))

	games, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "B", games[0].Name)
	require.NotNil(t, games[0].Genre)
}

func TestGenreRepository(t *testing.T) {
	db := dbtest.NewSeeded(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	genres, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, genres)
	assert.Equal(t, "RPG", genres[0].Name)
	for i := 1; i < len(genres); i++ {
		assert.Less(t, genres[i-1].ID, genres[i].ID, "ordered by id")
	}
}
