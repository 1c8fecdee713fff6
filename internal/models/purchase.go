package models

import "time"

type Purchase struct {
	ID          uint      `gorm:"primaryKey"`
	PropertyID  uint      `gorm:"not null;index"`
	Category    string    `gorm:"not null;index"`
	Date        time.Time `gorm:"type:date;not null;index"`
	AmountCents int64     `gorm:"not null"`
	Vendor      string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	ReceiptPath string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
