package models

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type RenovationTask struct {
	ID          uint   `gorm:"primaryKey"`
	PropertyID  uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	RoomID      *uint
	Priority    string `gorm:"not null;default:medium"`
	IsDone      bool   `gorm:"not null;default:false"`
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ShoppingItem struct {
	ID                  uint   `gorm:"primaryKey"`
	PropertyID          uint   `gorm:"not null;index"`
	Name                string `gorm:"not null"`
	Quantity            int    `gorm:"not null;default:1"`
	EstimatedPriceCents *int64
	IsBought            bool `gorm:"not null;default:false"`
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
