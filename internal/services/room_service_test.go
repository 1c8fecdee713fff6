package services

import (
	"errors"
	"testing"

	"renotrack/internal/models"
)

type stubRoomRepository struct {
	duplicates map[string]bool
	created    []models.Room
}

func (repo *stubRoomRepository) ListByProperty(propertyID uint) ([]models.Room, error) {
	return nil, nil
}

func (repo *stubRoomRepository) FindByIDForProperty(roomID uint, propertyID uint) (models.Room, error) {
	return models.Room{}, errors.New("not found")
}

func (repo *stubRoomRepository) ExistsDuplicate(propertyID uint, roomType string, shortName string, excludeID uint) (bool, error) {
	return repo.duplicates[roomType+"/"+shortName], nil
}

func (repo *stubRoomRepository) Create(room *models.Room) error {
	repo.created = append(repo.created, *room)
	return nil
}

func (repo *stubRoomRepository) Save(room *models.Room) error { return nil }

func TestCreateRoomRejectsDuplicateTypeAndShortName(t *testing.T) {
	repo := &stubRoomRepository{duplicates: map[string]bool{"bedroom/master": true}}
	service := NewRoomService(repo)

	room := models.Room{PropertyID: 1, RoomType: "bedroom", ShortName: "master"}
	if err := service.CreateRoom(&room); !errors.Is(err, ErrDuplicateRoom) {
		t.Fatalf("err = %v, want ErrDuplicateRoom", err)
	}

	// Same type with a different short name is fine.
	second := models.Room{PropertyID: 1, RoomType: "bedroom", ShortName: "guest"}
	if err := service.CreateRoom(&second); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if len(repo.created) != 1 {
		t.Error("second bedroom was not stored")
	}
}

func TestCreateRoomRequiresType(t *testing.T) {
	service := NewRoomService(&stubRoomRepository{})

	room := models.Room{PropertyID: 1, RoomType: "  "}
	if err := service.CreateRoom(&room); !errors.Is(err, ErrInvalidRoomType) {
		t.Fatalf("err = %v, want ErrInvalidRoomType", err)
	}
}
