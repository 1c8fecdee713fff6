package services

import (
	"errors"
	"fmt"
	"strings"

	"renotrack/internal/models"
)

var (
	ErrDuplicateRoom   = errors.New("room with this type and short name already exists")
	ErrInvalidRoomType = errors.New("invalid room type")
)

type RoomRepository interface {
	ListByProperty(propertyID uint) ([]models.Room, error)
	FindByIDForProperty(roomID uint, propertyID uint) (models.Room, error)
	ExistsDuplicate(propertyID uint, roomType string, shortName string, excludeID uint) (bool, error)
	Create(room *models.Room) error
	Save(room *models.Room) error
}

type RoomService struct {
	rooms RoomRepository
}

func NewRoomService(rooms RoomRepository) *RoomService {
	return &RoomService{rooms: rooms}
}

func (service *RoomService) ListByProperty(propertyID uint) ([]models.Room, error) {
	return service.rooms.ListByProperty(propertyID)
}

func (service *RoomService) FindByIDForProperty(roomID uint, propertyID uint) (models.Room, error) {
	return service.rooms.FindByIDForProperty(roomID, propertyID)
}

// CreateRoom rejects a second room with the same type and short name within
// one property. Rooms of the same type must be told apart by short name.
func (service *RoomService) CreateRoom(room *models.Room) error {
	if err := service.validateRoom(room, 0); err != nil {
		return err
	}
	return service.rooms.Create(room)
}

func (service *RoomService) UpdateRoom(room *models.Room) error {
	if err := service.validateRoom(room, room.ID); err != nil {
		return err
	}
	return service.rooms.Save(room)
}

func (service *RoomService) validateRoom(room *models.Room, excludeID uint) error {
	room.RoomType = strings.TrimSpace(room.RoomType)
	room.ShortName = strings.TrimSpace(room.ShortName)
	if room.RoomType == "" {
		return ErrInvalidRoomType
	}

	duplicate, err := service.rooms.ExistsDuplicate(room.PropertyID, room.RoomType, room.ShortName, excludeID)
	if err != nil {
		return fmt.Errorf("check duplicate room: %w", err)
	}
	if duplicate {
		return ErrDuplicateRoom
	}
	return nil
}
