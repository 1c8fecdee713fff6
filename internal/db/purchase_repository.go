package db

import (
	"time"

	"renotrack/internal/models"

	"gorm.io/gorm"
)

type PurchaseRepository struct {
	database *gorm.DB
}

func NewPurchaseRepository(database *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{database: database}
}

func (repo *PurchaseRepository) ListByProperty(propertyID uint) ([]models.Purchase, error) {
	purchases := make([]models.Purchase, 0)
	if err := repo.database.
		Where("property_id = ?", propertyID).
		Order("date DESC, created_at DESC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (repo *PurchaseRepository) ListByPropertySince(propertyID uint, from time.Time) ([]models.Purchase, error) {
	purchases := make([]models.Purchase, 0)
	if err := repo.database.
		Where("property_id = ? AND date >= ?", propertyID, from).
		Order("date ASC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (repo *PurchaseRepository) ListRecentByProperty(propertyID uint, limit int) ([]models.Purchase, error) {
	purchases := make([]models.Purchase, 0)
	if err := repo.database.
		Where("property_id = ?", propertyID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (repo *PurchaseRepository) FindByIDForProperty(purchaseID uint, propertyID uint) (models.Purchase, error) {
	purchase := models.Purchase{}
	err := repo.database.
		Where("id = ? AND property_id = ?", purchaseID, propertyID).
		First(&purchase).Error
	return purchase, err
}

func (repo *PurchaseRepository) Create(purchase *models.Purchase) error {
	return repo.database.Create(purchase).Error
}

func (repo *PurchaseRepository) Save(purchase *models.Purchase) error {
	return repo.database.Save(purchase).Error
}
