package routes

import (
	"gamelibrary-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Setup registers the game API. imageHandler is optional and only present
// when image archiving is enabled.
func Setup(app *fiber.App, gameHandler *handlers.GameHandler, imageHandler *handlers.ImageHandler) {
	api := app.Group("/api")

	games := api.Group("/Games")
	{
		games.Get("/", gameHandler.GetGames)
		games.Get("/genre", gameHandler.GetGenres)
		games.Get("/:id<int>", gameHandler.GetGameByID)
		games.Post("/", gameHandler.AddGame)
		games.Put("/:id<int>", gameHandler.UpdateGame)
		games.Delete("/:id<int>", gameHandler.DeleteGame)

		if imageHandler != nil {
			games.Get("/:id<int>/image-url", imageHandler.GetImageURL)
		}
	}
}
