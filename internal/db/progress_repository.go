package db

import (
	"time"

	"renotrack/internal/models"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	database *gorm.DB
}

func NewProgressRepository(database *gorm.DB) *ProgressRepository {
	return &ProgressRepository{database: database}
}

func (repo *ProgressRepository) ListByRoom(roomID uint) ([]models.RoomProgress, error) {
	entries := make([]models.RoomProgress, 0)
	if err := repo.database.
		Preload("Photos").
		Where("room_id = ?", roomID).
		Order("date DESC, created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *ProgressRepository) ListByProperty(propertyID uint) ([]models.RoomProgress, error) {
	entries := make([]models.RoomProgress, 0)
	if err := repo.database.
		Preload("Photos").
		Joins("JOIN rooms ON rooms.id = room_progresses.room_id").
		Where("rooms.property_id = ?", propertyID).
		Order("room_progresses.date DESC, room_progresses.created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *ProgressRepository) CountByRoom(roomID uint) (int64, error) {
	var count int64
	err := repo.database.Model(&models.RoomProgress{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}

func (repo *ProgressRepository) LatestByRoom(roomID uint) (models.RoomProgress, bool, error) {
	entry := models.RoomProgress{}
	result := repo.database.
		Preload("Photos", func(query *gorm.DB) *gorm.DB {
			return query.Order("uploaded_at ASC")
		}).
		Where("room_id = ?", roomID).
		Order("date DESC, created_at DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.RoomProgress{}, false, result.Error
	}
	return entry, result.RowsAffected > 0, nil
}

func (repo *ProgressRepository) FindByIDForProperty(progressID uint, propertyID uint) (models.RoomProgress, error) {
	entry := models.RoomProgress{}
	err := repo.database.
		Preload("Photos").
		Joins("JOIN rooms ON rooms.id = room_progresses.room_id").
		Where("room_progresses.id = ? AND rooms.property_id = ?", progressID, propertyID).
		First(&entry).Error
	return entry, err
}

func (repo *ProgressRepository) Create(entry *models.RoomProgress) error {
	return repo.database.Create(entry).Error
}

func (repo *ProgressRepository) CreatePhoto(photo *models.RoomProgressPhoto) error {
	if photo.UploadedAt.IsZero() {
		photo.UploadedAt = time.Now()
	}
	return repo.database.Create(photo).Error
}

func (repo *ProgressRepository) CountPhotosByProperty(propertyID uint) (int64, error) {
	var count int64
	err := repo.database.Model(&models.RoomProgressPhoto{}).
		Joins("JOIN room_progresses ON room_progresses.id = room_progress_photos.progress_id").
		Joins("JOIN rooms ON rooms.id = room_progresses.room_id").
		Where("rooms.property_id = ?", propertyID).
		Count(&count).Error
	return count, err
}
