package services

import (
	"errors"
	"fmt"
	"time"

	"renotrack/internal/models"
)

var (
	ErrEquipmentSold      = errors.New("sold equipment cannot be assigned")
	ErrAlreadyAssigned    = errors.New("equipment already has an active assignment")
	ErrNotAssigned        = errors.New("equipment has no active assignment")
	ErrPhotoLimitReached  = errors.New("equipment photo limit reached")
	ErrAssignFailed       = errors.New("assign equipment failed")
	ErrUnassignFailed     = errors.New("unassign equipment failed")
	ErrAddPhotoFailed     = errors.New("add equipment photo failed")
	ErrInvalidAssignStart = errors.New("invalid assignment start date")
)

type EquipmentStore interface {
	CountPhotos(equipmentID uint) (int64, error)
	CreatePhoto(photo *models.EquipmentPhoto) error
	ActiveAssignment(equipmentID uint) (models.EquipmentAssignment, bool, error)
	CreateAssignment(assignment *models.EquipmentAssignment) error
	SaveAssignment(assignment *models.EquipmentAssignment) error
}

type EquipmentService struct {
	store EquipmentStore
}

func NewEquipmentService(store EquipmentStore) *EquipmentService {
	return &EquipmentService{store: store}
}

// Assign creates a new open-ended assignment. Sold equipment and equipment
// that already has an active assignment are rejected without mutation.
func (service *EquipmentService) Assign(equipment *models.Equipment, propertyID uint, startDate time.Time, notes string) (models.EquipmentAssignment, error) {
	if equipment.IsSold() {
		return models.EquipmentAssignment{}, ErrEquipmentSold
	}
	if startDate.IsZero() {
		return models.EquipmentAssignment{}, ErrInvalidAssignStart
	}

	_, active, err := service.store.ActiveAssignment(equipment.ID)
	if err != nil {
		return models.EquipmentAssignment{}, fmt.Errorf("%w: %v", ErrAssignFailed, err)
	}
	if active {
		return models.EquipmentAssignment{}, ErrAlreadyAssigned
	}

	assignment := models.EquipmentAssignment{
		EquipmentID: equipment.ID,
		PropertyID:  propertyID,
		StartDate:   DateOnly(startDate),
		Notes:       notes,
	}
	if err := service.store.CreateAssignment(&assignment); err != nil {
		return models.EquipmentAssignment{}, fmt.Errorf("%w: %v", ErrAssignFailed, err)
	}
	return assignment, nil
}

// Unassign closes the active assignment permanently; it is never reopened.
func (service *EquipmentService) Unassign(equipment *models.Equipment, endDate time.Time) (models.EquipmentAssignment, error) {
	assignment, active, err := service.store.ActiveAssignment(equipment.ID)
	if err != nil {
		return models.EquipmentAssignment{}, fmt.Errorf("%w: %v", ErrUnassignFailed, err)
	}
	if !active {
		return models.EquipmentAssignment{}, ErrNotAssigned
	}

	closed := DateOnly(endDate)
	assignment.EndDate = &closed
	if err := service.store.SaveAssignment(&assignment); err != nil {
		return models.EquipmentAssignment{}, fmt.Errorf("%w: %v", ErrUnassignFailed, err)
	}
	return assignment, nil
}

// IsAssigned reports whether an active assignment exists.
func (service *EquipmentService) IsAssigned(equipmentID uint) (bool, error) {
	_, active, err := service.store.ActiveAssignment(equipmentID)
	return active, err
}

// AddPhoto appends a photo unless the cap of MaxEquipmentPhotos is reached.
func (service *EquipmentService) AddPhoto(equipment *models.Equipment, photoPath string, caption string) (models.EquipmentPhoto, error) {
	count, err := service.store.CountPhotos(equipment.ID)
	if err != nil {
		return models.EquipmentPhoto{}, fmt.Errorf("%w: %v", ErrAddPhotoFailed, err)
	}
	if count >= models.MaxEquipmentPhotos {
		return models.EquipmentPhoto{}, ErrPhotoLimitReached
	}

	photo := models.EquipmentPhoto{
		EquipmentID: equipment.ID,
		PhotoPath:   photoPath,
		Caption:     caption,
		UploadedAt:  time.Now(),
	}
	if err := service.store.CreatePhoto(&photo); err != nil {
		return models.EquipmentPhoto{}, fmt.Errorf("%w: %v", ErrAddPhotoFailed, err)
	}
	return photo, nil
}
