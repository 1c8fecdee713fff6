package db

import (
	"renotrack/internal/models"

	"gorm.io/gorm"
)

type RoomRepository struct {
	database *gorm.DB
}

func NewRoomRepository(database *gorm.DB) *RoomRepository {
	return &RoomRepository{database: database}
}

func (repo *RoomRepository) ListByProperty(propertyID uint) ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	if err := repo.database.
		Where("property_id = ?", propertyID).
		Order("room_type ASC, short_name ASC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (repo *RoomRepository) FindByIDForProperty(roomID uint, propertyID uint) (models.Room, error) {
	room := models.Room{}
	err := repo.database.
		Where("id = ? AND property_id = ?", roomID, propertyID).
		First(&room).Error
	return room, err
}

func (repo *RoomRepository) ExistsDuplicate(propertyID uint, roomType string, shortName string, excludeID uint) (bool, error) {
	var count int64
	err := repo.database.Model(&models.Room{}).
		Where("property_id = ? AND room_type = ? AND short_name = ? AND id <> ?", propertyID, roomType, shortName, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (repo *RoomRepository) Create(room *models.Room) error {
	return repo.database.Create(room).Error
}

func (repo *RoomRepository) Save(room *models.Room) error {
	return repo.database.Save(room).Error
}
