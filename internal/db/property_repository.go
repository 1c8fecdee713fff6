package db

import (
	"renotrack/internal/models"

	"gorm.io/gorm"
)

type PropertyRepository struct {
	database *gorm.DB
}

func NewPropertyRepository(database *gorm.DB) *PropertyRepository {
	return &PropertyRepository{database: database}
}

func (repo *PropertyRepository) ListByOwner(ownerID uint) ([]models.Property, error) {
	properties := make([]models.Property, 0)
	if err := repo.database.
		Where("owner_id = ?", ownerID).
		Order("is_active DESC, name ASC").
		Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (repo *PropertyRepository) FindByIDForOwner(propertyID uint, ownerID uint) (models.Property, error) {
	property := models.Property{}
	err := repo.database.
		Where("id = ? AND owner_id = ?", propertyID, ownerID).
		First(&property).Error
	return property, err
}

func (repo *PropertyRepository) FirstByOwner(ownerID uint) (models.Property, bool, error) {
	property := models.Property{}
	result := repo.database.
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("id ASC").
		Limit(1).
		Find(&property)
	if result.Error != nil {
		return models.Property{}, false, result.Error
	}
	return property, result.RowsAffected > 0, nil
}

func (repo *PropertyRepository) Create(property *models.Property) error {
	return repo.database.Create(property).Error
}

func (repo *PropertyRepository) Save(property *models.Property) error {
	return repo.database.Save(property).Error
}
