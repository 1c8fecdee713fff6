package db

import (
	"time"

	"renotrack/internal/models"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	database *gorm.DB
}

func NewEquipmentRepository(database *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{database: database}
}

func (repo *EquipmentRepository) ListByOwner(ownerID uint) ([]models.Equipment, error) {
	items := make([]models.Equipment, 0)
	if err := repo.database.
		Preload("Photos").
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *EquipmentRepository) FindByIDForOwner(equipmentID uint, ownerID uint) (models.Equipment, error) {
	equipment := models.Equipment{}
	err := repo.database.
		Preload("Photos", func(query *gorm.DB) *gorm.DB {
			return query.Order("uploaded_at ASC")
		}).
		Preload("Assignments", func(query *gorm.DB) *gorm.DB {
			return query.Order("start_date DESC, id DESC")
		}).
		Where("id = ? AND owner_id = ?", equipmentID, ownerID).
		First(&equipment).Error
	return equipment, err
}

func (repo *EquipmentRepository) Create(equipment *models.Equipment) error {
	return repo.database.Create(equipment).Error
}

func (repo *EquipmentRepository) Save(equipment *models.Equipment) error {
	return repo.database.Save(equipment).Error
}

func (repo *EquipmentRepository) Delete(equipment *models.Equipment) error {
	return repo.database.Select("Photos", "Assignments").Delete(equipment).Error
}

func (repo *EquipmentRepository) CountPhotos(equipmentID uint) (int64, error) {
	var count int64
	err := repo.database.Model(&models.EquipmentPhoto{}).
		Where("equipment_id = ?", equipmentID).
		Count(&count).Error
	return count, err
}

func (repo *EquipmentRepository) CreatePhoto(photo *models.EquipmentPhoto) error {
	if photo.UploadedAt.IsZero() {
		photo.UploadedAt = time.Now()
	}
	return repo.database.Create(photo).Error
}

func (repo *EquipmentRepository) FindPhotoForOwner(photoID uint, ownerID uint) (models.EquipmentPhoto, error) {
	photo := models.EquipmentPhoto{}
	err := repo.database.
		Joins("JOIN equipment ON equipment.id = equipment_photos.equipment_id").
		Where("equipment_photos.id = ? AND equipment.owner_id = ?", photoID, ownerID).
		First(&photo).Error
	return photo, err
}

func (repo *EquipmentRepository) DeletePhoto(photo *models.EquipmentPhoto) error {
	return repo.database.Delete(photo).Error
}

func (repo *EquipmentRepository) ActiveAssignment(equipmentID uint) (models.EquipmentAssignment, bool, error) {
	assignment := models.EquipmentAssignment{}
	result := repo.database.
		Where("equipment_id = ? AND end_date IS NULL", equipmentID).
		Limit(1).
		Find(&assignment)
	if result.Error != nil {
		return models.EquipmentAssignment{}, false, result.Error
	}
	return assignment, result.RowsAffected > 0, nil
}

func (repo *EquipmentRepository) CreateAssignment(assignment *models.EquipmentAssignment) error {
	return repo.database.Create(assignment).Error
}

func (repo *EquipmentRepository) SaveAssignment(assignment *models.EquipmentAssignment) error {
	return repo.database.Save(assignment).Error
}
