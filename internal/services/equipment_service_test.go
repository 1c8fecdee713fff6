package services

import (
	"errors"
	"testing"
	"time"

	"renotrack/internal/models"
)

type stubEquipmentStore struct {
	photoCount  int64
	active      *models.EquipmentAssignment
	created     []models.EquipmentAssignment
	savedEnd    *time.Time
	photosAdded []models.EquipmentPhoto
}

func (store *stubEquipmentStore) CountPhotos(equipmentID uint) (int64, error) {
	return store.photoCount, nil
}

func (store *stubEquipmentStore) CreatePhoto(photo *models.EquipmentPhoto) error {
	store.photosAdded = append(store.photosAdded, *photo)
	return nil
}

func (store *stubEquipmentStore) ActiveAssignment(equipmentID uint) (models.EquipmentAssignment, bool, error) {
	if store.active == nil {
		return models.EquipmentAssignment{}, false, nil
	}
	return *store.active, true, nil
}

func (store *stubEquipmentStore) CreateAssignment(assignment *models.EquipmentAssignment) error {
	assignment.ID = uint(len(store.created) + 1)
	store.created = append(store.created, *assignment)
	return nil
}

func (store *stubEquipmentStore) SaveAssignment(assignment *models.EquipmentAssignment) error {
	store.savedEnd = assignment.EndDate
	return nil
}

func TestAssignRejectsSoldEquipment(t *testing.T) {
	store := &stubEquipmentStore{}
	service := NewEquipmentService(store)
	soldAt := time.Now()
	equipment := &models.Equipment{ID: 1, Name: "Mixer", SoldDate: &soldAt}

	_, err := service.Assign(equipment, 3, time.Now(), "")
	if !errors.Is(err, ErrEquipmentSold) {
		t.Fatalf("err = %v, want ErrEquipmentSold", err)
	}
	if len(store.created) != 0 {
		t.Error("no assignment should be created for sold equipment")
	}
}

func TestAssignRejectsSecondActiveAssignment(t *testing.T) {
	store := &stubEquipmentStore{active: &models.EquipmentAssignment{ID: 9, EquipmentID: 1}}
	service := NewEquipmentService(store)
	equipment := &models.Equipment{ID: 1, Name: "Drill"}

	_, err := service.Assign(equipment, 3, time.Now(), "")
	if !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("err = %v, want ErrAlreadyAssigned", err)
	}
}

func TestAssignThenUnassignClosesTheAssignment(t *testing.T) {
	store := &stubEquipmentStore{}
	service := NewEquipmentService(store)
	equipment := &models.Equipment{ID: 1, Name: "Drill"}

	created, err := service.Assign(equipment, 3, time.Date(2026, 5, 10, 14, 30, 0, 0, time.UTC), "loaned to site")
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if created.PropertyID != 3 || created.EndDate != nil {
		t.Fatalf("created = %+v, want open assignment on property 3", created)
	}
	if !created.StartDate.Equal(time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v, want the date only", created.StartDate)
	}

	store.active = &created
	closed, err := service.Unassign(equipment, time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Unassign: %v", err)
	}
	if closed.EndDate == nil || !closed.EndDate.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("EndDate = %v, want 2026-06-01", closed.EndDate)
	}
	if store.savedEnd == nil {
		t.Error("closed assignment was not persisted")
	}
}

func TestUnassignWithoutActiveAssignment(t *testing.T) {
	service := NewEquipmentService(&stubEquipmentStore{})
	equipment := &models.Equipment{ID: 1}

	_, err := service.Unassign(equipment, time.Now())
	if !errors.Is(err, ErrNotAssigned) {
		t.Fatalf("err = %v, want ErrNotAssigned", err)
	}
}

func TestAddPhotoRejectsSixthPhoto(t *testing.T) {
	store := &stubEquipmentStore{photoCount: models.MaxEquipmentPhotos}
	service := NewEquipmentService(store)
	equipment := &models.Equipment{ID: 1}

	_, err := service.AddPhoto(equipment, "equipment/extra.jpg", "")
	if !errors.Is(err, ErrPhotoLimitReached) {
		t.Fatalf("err = %v, want ErrPhotoLimitReached", err)
	}
	if len(store.photosAdded) != 0 {
		t.Error("photo should not be stored past the cap")
	}
}

func TestAddPhotoBelowCap(t *testing.T) {
	store := &stubEquipmentStore{photoCount: models.MaxEquipmentPhotos - 1}
	service := NewEquipmentService(store)
	equipment := &models.Equipment{ID: 1}

	photo, err := service.AddPhoto(equipment, "equipment/fifth.jpg", "front")
	if err != nil {
		t.Fatalf("AddPhoto: %v", err)
	}
	if photo.PhotoPath != "equipment/fifth.jpg" || photo.Caption != "front" {
		t.Errorf("photo = %+v", photo)
	}
	if len(store.photosAdded) != 1 {
		t.Error("photo was not stored")
	}
}
