package db

import (
	"time"

	"renotrack/internal/models"

	"gorm.io/gorm"
)

type WorkSessionRepository struct {
	database *gorm.DB
}

func NewWorkSessionRepository(database *gorm.DB) *WorkSessionRepository {
	return &WorkSessionRepository{database: database}
}

func (repo *WorkSessionRepository) ListByProperty(propertyID uint) ([]models.WorkSession, error) {
	sessions := make([]models.WorkSession, 0)
	if err := repo.database.
		Preload("Rooms").
		Where("property_id = ?", propertyID).
		Order("date DESC, start_minute DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *WorkSessionRepository) ListByPropertySince(propertyID uint, from time.Time) ([]models.WorkSession, error) {
	sessions := make([]models.WorkSession, 0)
	if err := repo.database.
		Where("property_id = ? AND date >= ?", propertyID, from).
		Order("date ASC, start_minute ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *WorkSessionRepository) FindByIDForProperty(sessionID uint, propertyID uint) (models.WorkSession, error) {
	session := models.WorkSession{}
	err := repo.database.
		Preload("Rooms").
		Where("id = ? AND property_id = ?", sessionID, propertyID).
		First(&session).Error
	return session, err
}

func (repo *WorkSessionRepository) Create(session *models.WorkSession) error {
	return repo.database.Create(session).Error
}

func (repo *WorkSessionRepository) Save(session *models.WorkSession) error {
	return repo.database.Save(session).Error
}

func (repo *WorkSessionRepository) ReplaceRooms(session *models.WorkSession, rooms []models.Room) error {
	return repo.database.Model(session).Association("Rooms").Replace(rooms)
}
