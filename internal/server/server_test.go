package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gamelibrary-backend/internal/client"
	"gamelibrary-backend/internal/config"
	"gamelibrary-backend/internal/database"
	"gamelibrary-backend/internal/database/dbtest"
	"gamelibrary-backend/internal/handlers"
	"gamelibrary-backend/internal/models"
	"gamelibrary-backend/internal/repository"
	"gamelibrary-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chronoBody = `{"name":"Chrono","description":"Time travel RPG","genreId":1,"price":19.99,"releasedDate":"1995-03-11","image":"QQ=="}`

type envelope struct {
	Message string          `json:"message"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type stubArchiver struct{ archived map[uint]bool }

func (s *stubArchiver) Archive(_ context.Context, id uint, image string) error {
	s.archived[id] = image != ""
	return nil
}

func (s *stubArchiver) Remove(_ context.Context, id uint) error {
	delete(s.archived, id)
	return nil
}

func (s *stubArchiver) PresignedURL(_ context.Context, id uint) (string, error) {
	if !s.archived[id] {
		return "", nil
	}
	return "https://images.local/games/1/a1b2c3d4.png", nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{CORSAllowOrigins: "*"},
		Metrics: config.MetricsConfig{Enabled: true},
	}
}

func newTestApp(t *testing.T, archiver services.ImageArchiver) (*fiber.App, *database.Database) {
	t.Helper()

	log := quietLogger()
	db := dbtest.NewSeeded(t)

	games := services.NewGameService(repository.NewGameRepository(db), archiver, log)
	genres := services.NewGenreService(repository.NewGenreRepository(db))

	var imageHandler *handlers.ImageHandler
	if archiver != nil {
		imageHandler = handlers.NewImageHandler(games, log)
	}
	app := New(testConfig(), db, handlers.NewGameHandler(games, genres, log), imageHandler, log)
	return app, db
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func doEnvelope(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()

	status, raw := do(t, app, method, path, body)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return status, env
}

func TestGameLifecycle(t *testing.T) {
	app, _ := newTestApp(t, nil)

	status, env := doEnvelope(t, app, http.MethodPost, "/api/Games", chronoBody)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, "Product added", env.Message)

	var created models.Game
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Chrono", created.Name)

	status, env = doEnvelope(t, app, http.MethodGet, "/api/Games", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	var games []models.Game
	require.NoError(t, json.Unmarshal(env.Data, &games))
	require.Len(t, games, 1)
	require.NotNil(t, games[0].Genre)
	assert.Equal(t, "RPG", games[0].Genre.Name)
	assert.Equal(t, "1995-03-11", games[0].ReleasedDate.String())
	assert.Equal(t, "QQ==", games[0].Image)

	status, env = doEnvelope(t, app, http.MethodDelete, "/api/Games/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, "Game is removed", env.Message)
	assert.Empty(t, env.Data)

	status, env = doEnvelope(t, app, http.MethodGet, "/api/Games/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Game not found", env.Message)
}

func TestGetGamesEmptyCatalog(t *testing.T) {
	app, _ := newTestApp(t, nil)

	status, raw := do(t, app, http.MethodGet, "/api/Games", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(raw))
}

func TestAddGameRejectsDuplicateName(t *testing.T) {
	app, _ := newTestApp(t, nil)

	status, _ := doEnvelope(t, app, http.MethodPost, "/api/Games", chronoBody)
	require.Equal(t, http.StatusOK, status)

	status, env := doEnvelope(t, app, http.MethodPost, "/api/Games",
		`{"name":"CHRONO","genreId":2,"price":1,"releasedDate":"2000-01-01","image":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Product already added", env.Message)

	status, _ = doEnvelope(t, app, http.MethodPost, "/api/Games", `{"name":"Élan","genreId":1}`)
	require.Equal(t, http.StatusOK, status)

	status, env = doEnvelope(t, app, http.MethodPost, "/api/Games", `{"name":"élan","genreId":1}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Product already added", env.Message)
}

func TestAddGameBadBodies(t *testing.T) {
	app, _ := newTestApp(t, nil)

	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"empty", "", "Bad Request"},
		{"null", "null", "Bad Request"},
		{"malformed", `{"name":`, "Bad Request"},
		{"blank name", `{"name":"  ","genreId":1}`, "Name is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := doEnvelope(t, app, http.MethodPost, "/api/Games", tc.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.False(t, env.Success)
			assert.Equal(t, tc.message, env.Message)
		})
	}
}

func TestUpdateGame(t *testing.T) {
	app, _ := newTestApp(t, nil)

	status, _ := doEnvelope(t, app, http.MethodPost, "/api/Games", chronoBody)
	require.Equal(t, http.StatusOK, status)

	t.Run("id mismatch leaves store unchanged", func(t *testing.T) {
		status, env := doEnvelope(t, app, http.MethodPut, "/api/Games/1",
			`{"id":2,"name":"Other","genreId":1,"price":5,"releasedDate":"2001-01-01","image":""}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "ID mismatch", env.Message)

		_, env = doEnvelope(t, app, http.MethodGet, "/api/Games/1", "")
		var game models.Game
		require.NoError(t, json.Unmarshal(env.Data, &game))
		assert.Equal(t, "Chrono", game.Name)
	})

	t.Run("missing game", func(t *testing.T) {
		status, env := doEnvelope(t, app, http.MethodPut, "/api/Games/99",
			`{"id":99,"name":"Ghost","genreId":1,"price":1,"releasedDate":"2001-01-01","image":""}`)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Game not found", env.Message)
	})

	t.Run("replaces fields", func(t *testing.T) {
		status, env := doEnvelope(t, app, http.MethodPut, "/api/Games/1",
			`{"id":1,"name":"Chrono Cross","description":"","genreId":2,"price":29.5,"releasedDate":"1999-11-18","image":""}`)
		require.Equal(t, http.StatusOK, status)
		assert.True(t, env.Success)
		assert.Equal(t, "Game updated", env.Message)

		_, env = doEnvelope(t, app, http.MethodGet, "/api/Games/1", "")
		var game models.Game
		require.NoError(t, json.Unmarshal(env.Data, &game))
		assert.Equal(t, "Chrono Cross", game.Name)
		assert.Empty(t, game.Description)
		assert.Equal(t, uint(2), game.GenreID)
		require.NotNil(t, game.Genre)
		assert.Equal(t, "Action", game.Genre.Name)
		assert.Equal(t, 29.5, game.Price)
		assert.Equal(t, "1999-11-18", game.ReleasedDate.String())
		assert.Empty(t, game.Image)
	})
}

func TestDeleteMissingGame(t *testing.T) {
	app, _ := newTestApp(t, nil)

	status, env := doEnvelope(t, app, http.MethodDelete, "/api/Games/42", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Game is not found", env.Message)
}

func TestNonNumericIDDoesNotMatchRoute(t *testing.T) {
	app, _ := newTestApp(t, nil)

	status, env := doEnvelope(t, app, http.MethodGet, "/api/Games/abc", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
}

func TestNegativeIDIsRejected(t *testing.T) {
	app, _ := newTestApp(t, nil)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		status, env := doEnvelope(t, app, method, "/api/Games/-1", "")
		assert.Equal(t, http.StatusBadRequest, status, method)
		assert.Equal(t, "Invalid game ID", env.Message, method)
	}

	status, env := doEnvelope(t, app, http.MethodPut, "/api/Games/-1", `{"id":1,"name":"Chrono"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid game ID", env.Message)
}

func TestAddGameAcceptsLargestClientImage(t *testing.T) {
	app, _ := newTestApp(t, nil)

	assert.Greater(t, config.DefaultBodyLimit, base64.StdEncoding.EncodedLen(client.MaxImageBytes))

	image := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xAB}, client.MaxImageBytes-1024))
	body := fmt.Sprintf(`{"name":"Big Cover","description":"d","genreId":1,"price":1,"releasedDate":"2020-01-01","image":%q}`, image)

	status, env := doEnvelope(t, app, http.MethodPost, "/api/Games", body)
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Equal(t, "Product added", env.Message)

	_, env = doEnvelope(t, app, http.MethodGet, "/api/Games/1", "")
	var game models.Game
	require.NoError(t, json.Unmarshal(env.Data, &game))
	assert.Equal(t, image, game.Image)
}

func TestBodyLimitIsConfigurable(t *testing.T) {
	log := quietLogger()
	db := dbtest.NewSeeded(t)
	games := services.NewGameService(repository.NewGameRepository(db), nil, log)
	genres := services.NewGenreService(repository.NewGenreRepository(db))

	cfg := testConfig()
	cfg.Server.BodyLimit = 64
	app := New(cfg, db, handlers.NewGameHandler(games, genres, log), nil, log)

	req := httptest.NewRequest(http.MethodPost, "/api/Games", strings.NewReader(chronoBody))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	_, err := app.Test(req, -1)
	assert.Error(t, err)
}

func TestGetGenresReturnsBareArray(t *testing.T) {
	app, db := newTestApp(t, nil)

	status, raw := do(t, app, http.MethodGet, "/api/Games/genre", "")
	require.Equal(t, http.StatusOK, status)

	var genres []models.Genre
	require.NoError(t, json.Unmarshal(raw, &genres), string(raw))
	assert.Equal(t, dbtest.Genres(t, db), genres)
	assert.Equal(t, "RPG", genres[0].Name)
}

func TestImageURL(t *testing.T) {
	t.Run("route absent without archive", func(t *testing.T) {
		app, _ := newTestApp(t, nil)
		status, _ := do(t, app, http.MethodGet, "/api/Games/1/image-url", "")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("presigned link for archived image", func(t *testing.T) {
		app, _ := newTestApp(t, &stubArchiver{archived: map[uint]bool{}})

		status, _ := doEnvelope(t, app, http.MethodPost, "/api/Games", chronoBody)
		require.Equal(t, http.StatusOK, status)

		status, env := doEnvelope(t, app, http.MethodGet, "/api/Games/1/image-url", "")
		require.Equal(t, http.StatusOK, status)
		var url string
		require.NoError(t, json.Unmarshal(env.Data, &url))
		assert.Contains(t, url, "games/1/")

		status, env = doEnvelope(t, app, http.MethodGet, "/api/Games/7/image-url", "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Game not found", env.Message)
	})
}

type brokenGames struct{}

var errStoreDown = errors.New("store down")

func (brokenGames) AddGame(context.Context, *models.Game) (services.Result[*models.Game], error) {
	return services.Result[*models.Game]{}, errStoreDown
}

func (brokenGames) UpdateGame(context.Context, uint, *models.Game) (services.Result[*models.Game], error) {
	return services.Result[*models.Game]{}, errStoreDown
}

func (brokenGames) DeleteGame(context.Context, uint) (services.Result[struct{}], error) {
	return services.Result[struct{}]{}, errStoreDown
}

func (brokenGames) GetGameByID(context.Context, uint) (services.Result[*models.Game], error) {
	return services.Result[*models.Game]{}, errStoreDown
}

func (brokenGames) GetGames(context.Context) (services.Result[[]models.Game], error) {
	return services.Result[[]models.Game]{}, errStoreDown
}

func (brokenGames) ImageURL(context.Context, uint) (services.Result[string], error) {
	return services.Result[string]{}, errStoreDown
}

func TestStoreFailuresMapToInternalError(t *testing.T) {
	log := quietLogger()
	db := dbtest.NewSeeded(t)
	genres := services.NewGenreService(repository.NewGenreRepository(db))
	app := New(testConfig(), db, handlers.NewGameHandler(brokenGames{}, genres, log), handlers.NewImageHandler(brokenGames{}, log), log)

	requests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/Games", ""},
		{http.MethodGet, "/api/Games/1", ""},
		{http.MethodPost, "/api/Games", chronoBody},
		{http.MethodPut, "/api/Games/1", `{"id":1,"name":"x"}`},
		{http.MethodDelete, "/api/Games/1", ""},
		{http.MethodGet, "/api/Games/1/image-url", ""},
	}

	for _, r := range requests {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			status, raw := do(t, app, r.method, r.path, r.body)
			assert.Equal(t, http.StatusInternalServerError, status)
			assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, string(raw))
			assert.NotContains(t, string(raw), errStoreDown.Error())
		})
	}
}

func TestPanicIsRecoveredAsInternalError(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})

	status, raw := do(t, app, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, string(raw))
}

func TestHealthAndMetrics(t *testing.T) {
	app, _ := newTestApp(t, nil)

	status, raw := do(t, app, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, status)
	var health map[string]string
	require.NoError(t, json.Unmarshal(raw, &health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "healthy", health["database"])
	assert.Equal(t, ServiceName, health["service"])

	status, _ = do(t, app, http.MethodGet, "/api/Games", "")
	require.Equal(t, http.StatusOK, status)

	status, raw = do(t, app, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, status)
	body := string(raw)
	assert.Contains(t, body, "gamelibrary_http_requests_total")
	assert.Contains(t, body, `path="/api/Games`)
	assert.Contains(t, body, "gamelibrary_db_operation_duration_seconds")
	assert.Contains(t, body, "gamelibrary_catalog_operations_total")
}

func TestCustomErrorHandlerKeepsFiberErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: customErrorHandler(quietLogger())})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	status, raw := do(t, app, http.MethodGet, "/teapot", "")
	assert.Equal(t, fiber.StatusTeapot, status)
	assert.JSONEq(t, `{"success":false,"message":"short and stout"}`, string(raw))
}
