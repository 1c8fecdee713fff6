package models

import "time"

type RoomProgress struct {
	ID          uint      `gorm:"primaryKey"`
	RoomID      uint      `gorm:"not null;index"`
	Date        time.Time `gorm:"type:date;not null"`
	Description string    `gorm:"not null"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Photos []RoomProgressPhoto `gorm:"foreignKey:ProgressID;constraint:OnDelete:CASCADE"`
}

type RoomProgressPhoto struct {
	ID         uint   `gorm:"primaryKey"`
	ProgressID uint   `gorm:"not null;index"`
	PhotoPath  string `gorm:"not null"`
	Caption    string
	UploadedAt time.Time `gorm:"not null"`
}
