package handlers

import (
	"bytes"
	"strconv"

	"gamelibrary-backend/internal/services"
	"gamelibrary-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	msgInvalidID  = "Invalid game ID"
	msgIDMismatch = "ID mismatch"
)

type GameHandler struct {
	games  services.GameService
	genres services.GenreService
	logger *logrus.Logger
}

func NewGameHandler(games services.GameService, genres services.GenreService, logger *logrus.Logger) *GameHandler {
	return &GameHandler{
		games:  games,
		genres: genres,
		logger: logger,
	}
}

// GetGames godoc
// @Summary Get all games
// @Description Get every game with its genre. An empty catalog is still a success.
// @Tags games
// @Produce json
// @Success 200 {object} utils.ServiceResponse{data=[]models.Game} "List of games"
// @Failure 500 {object} utils.ServiceResponse "Internal server error"
// @Router /Games [get]
func (h *GameHandler) GetGames(c *fiber.Ctx) error {
	res, err := h.games.GetGames(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get games")
		return utils.InternalErrorResponse(c)
	}
	return respond(c, res)
}

// GetGameByID godoc
// @Summary Get game by ID
// @Description Get a single game with its genre
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} utils.ServiceResponse{data=models.Game} "Game details"
// @Failure 400 {object} utils.ServiceResponse "Invalid game ID"
// @Failure 404 {object} utils.ServiceResponse "Game not found"
// @Router /Games/{id} [get]
func (h *GameHandler) GetGameByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidID)
	}

	res, err := h.games.GetGameByID(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get game")
		return utils.InternalErrorResponse(c)
	}
	return respond(c, res)
}

// AddGame godoc
// @Summary Add a game
// @Description Add a game. Names are unique ignoring case; any id in the body is ignored.
// @Tags games
// @Accept json
// @Produce json
// @Param game body GameRequest true "Game"
// @Success 200 {object} utils.ServiceResponse{data=models.Game} "Product added"
// @Failure 400 {object} utils.ServiceResponse "Bad request or Product already added"
// @Failure 500 {object} utils.ServiceResponse "Internal server error"
// @Router /Games [post]
func (h *GameHandler) AddGame(c *fiber.Ctx) error {
	req, ok := h.parseGame(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, services.MsgBadRequest)
	}

	res, err := h.games.AddGame(c.Context(), req.toGame())
	if err != nil {
		h.logger.WithError(err).Error("Failed to add game")
		return utils.InternalErrorResponse(c)
	}
	return respond(c, res)
}

// UpdateGame godoc
// @Summary Update a game
// @Description Replace every field of a game except its id. The body id must equal the path id.
// @Tags games
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param game body GameRequest true "Game"
// @Success 200 {object} utils.ServiceResponse{data=models.Game} "Game updated"
// @Failure 400 {object} utils.ServiceResponse "ID mismatch or bad request"
// @Failure 404 {object} utils.ServiceResponse "Game not found"
// @Failure 500 {object} utils.ServiceResponse "Internal server error"
// @Router /Games/{id} [put]
func (h *GameHandler) UpdateGame(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidID)
	}

	req, ok := h.parseGame(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, services.MsgBadRequest)
	}
	if req.ID != id {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgIDMismatch)
	}

	res, err := h.games.UpdateGame(c.Context(), id, req.toGame())
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update game")
		return utils.InternalErrorResponse(c)
	}
	return respond(c, res)
}

// DeleteGame godoc
// @Summary Delete a game
// @Description Physically remove a game
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} utils.ServiceResponse "Game is removed"
// @Failure 400 {object} utils.ServiceResponse "Invalid game ID"
// @Failure 404 {object} utils.ServiceResponse "Game is not found"
// @Failure 500 {object} utils.ServiceResponse "Internal server error"
// @Router /Games/{id} [delete]
func (h *GameHandler) DeleteGame(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidID)
	}

	res, err := h.games.DeleteGame(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete game")
		return utils.InternalErrorResponse(c)
	}
	if !res.Success() {
		return utils.ErrorResponse(c, statusFor(res.Kind), res.Message)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, res.Message, nil)
}

// GetGenres godoc
// @Summary Get genres
// @Description Get the genre reference list as a bare JSON array
// @Tags genres
// @Produce json
// @Success 200 {array} models.Genre "List of genres"
// @Failure 500 {object} utils.ServiceResponse "Internal server error"
// @Router /Games/genre [get]
func (h *GameHandler) GetGenres(c *fiber.Ctx) error {
	genres, err := h.genres.GetGenres(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get genres")
		return utils.InternalErrorResponse(c)
	}
	return c.Status(fiber.StatusOK).JSON(genres)
}

// parseGame rejects empty, null, and malformed bodies.
func (h *GameHandler) parseGame(c *fiber.Ctx) (*GameRequest, bool) {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, false
	}

	var req GameRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("Invalid game body")
		return nil, false
	}
	return &req, true
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func statusFor(kind services.ResultKind) int {
	switch kind {
	case services.KindOK:
		return fiber.StatusOK
	case services.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadRequest
	}
}

func respond[T any](c *fiber.Ctx, res services.Result[T]) error {
	data, ok := res.Data()
	if !ok {
		return utils.ErrorResponse(c, statusFor(res.Kind), res.Message)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, res.Message, data)
}
