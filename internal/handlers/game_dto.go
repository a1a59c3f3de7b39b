package handlers

import "gamelibrary-backend/internal/models"

// GameRequest is the body of POST and PUT /api/Games. Any nested genre sent
// by a client is ignored; only genreId is stored.
type GameRequest struct {
	ID           uint        `json:"id" example:"1"`
	Name         string      `json:"name" example:"Chrono"`
	Description  string      `json:"description" example:"Time travel RPG"`
	GenreID      uint        `json:"genreId" example:"1"`
	Price        float64     `json:"price" example:"19.99"`
	ReleasedDate models.Date `json:"releasedDate" swaggertype:"string" example:"2024-01-01"`
	Image        string      `json:"image" example:"QQ=="`
}

func (r *GameRequest) toGame() *models.Game {
	return &models.Game{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		GenreID:      r.GenreID,
		Price:        r.Price,
		ReleasedDate: r.ReleasedDate,
		Image:        r.Image,
	}
}
