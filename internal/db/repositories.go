package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Properties *PropertyRepository
	Rooms      *RoomRepository
	Progress   *ProgressRepository
	Sessions   *WorkSessionRepository
	Circuits   *CircuitRepository
	Purchases  *PurchaseRepository
	Choices    *DropdownRepository
	Equipment  *EquipmentRepository
	Todo       *TodoRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Properties: NewPropertyRepository(database),
		Rooms:      NewRoomRepository(database),
		Progress:   NewProgressRepository(database),
		Sessions:   NewWorkSessionRepository(database),
		Circuits:   NewCircuitRepository(database),
		Purchases:  NewPurchaseRepository(database),
		Choices:    NewDropdownRepository(database),
		Equipment:  NewEquipmentRepository(database),
		Todo:       NewTodoRepository(database),
	}
}
