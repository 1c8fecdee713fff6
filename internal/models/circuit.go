package models

import "time"

type ElectricalCircuit struct {
	ID                  uint   `gorm:"primaryKey"`
	RoomID              uint   `gorm:"not null;index"`
	CircuitName         string `gorm:"not null"`
	BreakerNumber       string `gorm:"not null;index"`
	ConnectedAppliances string `gorm:"not null"`
	Amperage            *int
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
