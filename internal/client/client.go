// Package client talks to the game library API over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"gamelibrary-backend/internal/models"

	"github.com/sirupsen/logrus"
)

const maxResponseBytes = 32 << 20

var (
	// ErrTransport wraps failures to reach the server at all.
	ErrTransport = errors.New("transport failure")
	// ErrDecode marks a response whose body could not be understood.
	ErrDecode = errors.New("malformed response")
)

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindServer     ErrorKind = "server"
	KindUnexpected ErrorKind = "unexpected"
)

// conflictMessage is what the server answers when a name is already taken.
const conflictMessage = "Product already added"

// APIError is a response the server sent back as a failure.
type APIError struct {
	Status  int
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d (%s): %s", e.Status, e.Kind, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindConflict
}

type envelope struct {
	Message string          `json:"message"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func New(baseURL string, httpClient *http.Client, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// ListGames returns every game with its genre. A failed request is an error,
// never an empty list.
func (c *Client) ListGames(ctx context.Context) ([]models.Game, error) {
	games := []models.Game{}
	if _, err := c.call(ctx, http.MethodGet, "/api/Games", nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (c *Client) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if _, err := c.call(ctx, http.MethodGet, gamePath(id), nil, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// AddGame validates the game locally, then creates it. The returned game
// carries the id assigned by the server.
func (c *Client) AddGame(ctx context.Context, game *models.Game) (*models.Game, error) {
	if err := ValidateGame(game); err != nil {
		return nil, err
	}

	var created models.Game
	if _, err := c.call(ctx, http.MethodPost, "/api/Games", game, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateGame replaces the game stored under game.ID.
func (c *Client) UpdateGame(ctx context.Context, game *models.Game) (*models.Game, error) {
	if game == nil {
		return nil, &ValidationError{Missing: []string{"Game"}}
	}

	var updated models.Game
	if _, err := c.call(ctx, http.MethodPut, gamePath(game.ID), game, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteGame returns the server's confirmation message.
func (c *Client) DeleteGame(ctx context.Context, id uint) (string, error) {
	return c.call(ctx, http.MethodDelete, gamePath(id), nil, nil)
}

func (c *Client) ListGenres(ctx context.Context) ([]models.Genre, error) {
	status, raw, err := c.send(ctx, http.MethodGet, "/api/Games/genre", nil)
	if err != nil {
		return nil, err
	}
	if !successful(status) {
		return nil, apiError(status, raw)
	}

	genres := []models.Genre{}
	if err := json.Unmarshal(raw, &genres); err != nil {
		return nil, fmt.Errorf("%w: genres: %w", ErrDecode, err)
	}
	return genres, nil
}

// call performs a request against an endpoint that answers with the service
// envelope and decodes its data into out when out is non-nil.
func (c *Client) call(ctx context.Context, method, path string, body, out interface{}) (string, error) {
	status, raw, err := c.send(ctx, method, path, body)
	if err != nil {
		return "", err
	}
	if !successful(status) {
		return "", apiError(status, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", fmt.Errorf("%w: %s %s: %w", ErrDecode, method, path, err)
	}
	if !env.Success {
		return "", &APIError{Status: status, Kind: classify(status, env.Message), Message: env.Message}
	}

	if out != nil {
		if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
			return "", fmt.Errorf("%w: %s %s: missing data", ErrDecode, method, path)
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("%w: %s %s: %w", ErrDecode, method, path, err)
		}
	}
	return env.Message, nil
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: reading %s %s: %w", ErrTransport, method, path, err)
	}

	c.logger.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
	}).Debug("API request")

	return resp.StatusCode, raw, nil
}

func successful(status int) bool {
	return status >= 200 && status < 300
}

// apiError turns a non-2xx response into an APIError, using the envelope
// message when the body carries one.
func apiError(status int, raw []byte) *APIError {
	message := strings.TrimSpace(string(raw))
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		message = env.Message
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{Status: status, Kind: classify(status, message), Message: message}
}

func classify(status int, message string) ErrorKind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadRequest && message == conflictMessage:
		return KindConflict
	case status == http.StatusBadRequest:
		return KindValidation
	case status >= http.StatusInternalServerError:
		return KindServer
	default:
		return KindUnexpected
	}
}

func gamePath(id uint) string {
	return "/api/Games/" + strconv.FormatUint(uint64(id), 10)
}
