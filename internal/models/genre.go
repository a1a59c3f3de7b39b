package models

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name string `gorm:"not null;uniqueIndex;size:100" json:"name" example:"RPG"`
}

func (Genre) TableName() string {
	return "genres"
}
