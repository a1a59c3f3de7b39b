package models

type Game struct {
	ID           uint    `gorm:"primaryKey" json:"id" example:"1"`
	Name         string  `gorm:"not null;index" json:"name" example:"Chrono"`
	Description  string  `gorm:"type:text" json:"description" example:"Time travel RPG"`
	GenreID      uint    `gorm:"not null;index" json:"genreId" example:"1"`
	Genre        *Genre  `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"genre,omitempty"`
	Price        float64 `json:"price" example:"19.99"`
	ReleasedDate Date    `gorm:"type:date" json:"releasedDate" swaggertype:"string" example:"2024-01-01"`
	Image        string  `gorm:"type:text" json:"image" example:"QQ=="`
}

func (Game) TableName() string {
	return "games"
}

// UpdatableColumns lists the columns a full update overwrites. The primary
// key is never part of it.
var UpdatableColumns = []string{"name", "description", "genre_id", "price", "released_date", "image"}

// ApplyUpdate copies every mutable field from src, leaving ID untouched.
func (g *Game) ApplyUpdate(src *Game) {
	g.Name = src.Name
	g.Description = src.Description
	g.GenreID = src.GenreID
	g.Price = src.Price
	g.ReleasedDate = src.ReleasedDate
	g.Image = src.Image
}
