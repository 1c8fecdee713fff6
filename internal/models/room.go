package models

import (
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	ID              uint   `gorm:"primaryKey"`
	PropertyID      uint   `gorm:"not null;uniqueIndex:uidx_property_room"`
	RoomType        string `gorm:"not null;uniqueIndex:uidx_property_room"`
	ShortName       string `gorm:"not null;default:'';uniqueIndex:uidx_property_room"`
	Description     string
	SquareMeters    float64
	FloorType       string
	WallFinishes    datatypes.JSONSlice[string]
	StatusNotes     string
	Plan            string
	Notes           string
	ProgressPercent int `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
