package models

import (
	"strings"
	"time"
)

type Property struct {
	ID              uint   `gorm:"primaryKey"`
	OwnerID         uint   `gorm:"not null;index"`
	Name            string `gorm:"not null"`
	StreetAddress   string `gorm:"not null"`
	PostalCode      string
	City            string `gorm:"not null"`
	Country         string `gorm:"not null;default:Poland"`
	Description     string
	IsActive        bool `gorm:"not null;default:true"`
	RenovationStart *time.Time
	RenovationEnd   *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (property *Property) FullAddress() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{property.StreetAddress, property.PostalCode, property.City, property.Country} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}
