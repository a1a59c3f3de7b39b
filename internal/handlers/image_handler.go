package handlers

import (
	"gamelibrary-backend/internal/services"
	"gamelibrary-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ImageHandler struct {
	games  services.GameService
	logger *logrus.Logger
}

func NewImageHandler(games services.GameService, logger *logrus.Logger) *ImageHandler {
	return &ImageHandler{
		games:  games,
		logger: logger,
	}
}

// GetImageURL godoc
// @Summary Get archived image URL
// @Description Get a short-lived presigned URL for the archived copy of a game's image
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} utils.ServiceResponse{data=string} "Presigned URL"
// @Failure 400 {object} utils.ServiceResponse "Invalid game ID"
// @Failure 404 {object} utils.ServiceResponse "Game not found or image not archived"
// @Failure 500 {object} utils.ServiceResponse "Internal server error"
// @Router /Games/{id}/image-url [get]
func (h *ImageHandler) GetImageURL(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidID)
	}

	res, err := h.games.ImageURL(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to generate presigned URL")
		return utils.InternalErrorResponse(c)
	}
	return respond(c, res)
}
