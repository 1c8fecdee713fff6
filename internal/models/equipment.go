package models

import "time"

const (
	ConditionOK           = "ok"
	ConditionBroken       = "broken"
	ConditionMissingParts = "missing_parts"
)

const MaxEquipmentPhotos = 5

type Equipment struct {
	ID                 uint   `gorm:"primaryKey"`
	OwnerID            uint   `gorm:"not null;index"`
	Name               string `gorm:"not null"`
	Purpose            string
	Condition          string `gorm:"not null;default:ok"`
	IsOld              bool   `gorm:"not null;default:false"`
	PurchaseDate       *time.Time
	PurchasePriceCents *int64
	PurchaseVendor     string
	ReceiptPath        string
	SoldDate           *time.Time
	SoldPriceCents     *int64
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Photos      []EquipmentPhoto      `gorm:"foreignKey:EquipmentID;constraint:OnDelete:CASCADE"`
	Assignments []EquipmentAssignment `gorm:"foreignKey:EquipmentID;constraint:OnDelete:CASCADE"`
}

func (equipment *Equipment) IsSold() bool {
	return equipment.SoldDate != nil
}

func ValidCondition(condition string) bool {
	switch condition {
	case ConditionOK, ConditionBroken, ConditionMissingParts:
		return true
	}
	return false
}

type EquipmentPhoto struct {
	ID          uint   `gorm:"primaryKey"`
	EquipmentID uint   `gorm:"not null;index"`
	PhotoPath   string `gorm:"not null"`
	Caption     string
	UploadedAt  time.Time `gorm:"not null"`
}

type EquipmentAssignment struct {
	ID          uint      `gorm:"primaryKey"`
	EquipmentID uint      `gorm:"not null;index"`
	PropertyID  uint      `gorm:"not null;index"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     *time.Time
	Notes       string
	CreatedAt   time.Time
}
