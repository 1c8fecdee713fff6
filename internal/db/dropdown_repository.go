package db

import (
	"renotrack/internal/models"

	"gorm.io/gorm"
)

type DropdownRepository struct {
	database *gorm.DB
}

func NewDropdownRepository(database *gorm.DB) *DropdownRepository {
	return &DropdownRepository{database: database}
}

func (repo *DropdownRepository) ListActiveByType(choiceType string) ([]models.DropdownChoice, error) {
	choices := make([]models.DropdownChoice, 0)
	if err := repo.database.
		Where("choice_type = ? AND is_active = ?", choiceType, true).
		Order("display_order ASC").
		Find(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

func (repo *DropdownRepository) ListAll() ([]models.DropdownChoice, error) {
	choices := make([]models.DropdownChoice, 0)
	if err := repo.database.
		Order("choice_type ASC, display_order ASC, value ASC").
		Find(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

func (repo *DropdownRepository) FindByID(choiceID uint) (models.DropdownChoice, error) {
	choice := models.DropdownChoice{}
	err := repo.database.First(&choice, choiceID).Error
	return choice, err
}

func (repo *DropdownRepository) ExistsByTypeValue(choiceType string, value string, excludeID uint) (bool, error) {
	var count int64
	err := repo.database.Model(&models.DropdownChoice{}).
		Where("choice_type = ? AND value = ? AND id <> ?", choiceType, value, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (repo *DropdownRepository) Create(choice *models.DropdownChoice) error {
	return repo.database.Create(choice).Error
}

func (repo *DropdownRepository) Save(choice *models.DropdownChoice) error {
	return repo.database.Save(choice).Error
}

func (repo *DropdownRepository) Delete(choice *models.DropdownChoice) error {
	return repo.database.Delete(choice).Error
}
