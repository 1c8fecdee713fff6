package db

import (
	"renotrack/internal/models"

	"gorm.io/gorm"
)

type CircuitRepository struct {
	database *gorm.DB
}

func NewCircuitRepository(database *gorm.DB) *CircuitRepository {
	return &CircuitRepository{database: database}
}

func (repo *CircuitRepository) ListByProperty(propertyID uint) ([]models.ElectricalCircuit, error) {
	circuits := make([]models.ElectricalCircuit, 0)
	if err := repo.database.
		Joins("JOIN rooms ON rooms.id = electrical_circuits.room_id").
		Where("rooms.property_id = ?", propertyID).
		Order("electrical_circuits.breaker_number ASC, electrical_circuits.circuit_name ASC").
		Find(&circuits).Error; err != nil {
		return nil, err
	}
	return circuits, nil
}

func (repo *CircuitRepository) ListByRoom(roomID uint) ([]models.ElectricalCircuit, error) {
	circuits := make([]models.ElectricalCircuit, 0)
	if err := repo.database.
		Where("room_id = ?", roomID).
		Order("breaker_number ASC, circuit_name ASC").
		Find(&circuits).Error; err != nil {
		return nil, err
	}
	return circuits, nil
}

func (repo *CircuitRepository) FindByIDForProperty(circuitID uint, propertyID uint) (models.ElectricalCircuit, error) {
	circuit := models.ElectricalCircuit{}
	err := repo.database.
		Joins("JOIN rooms ON rooms.id = electrical_circuits.room_id").
		Where("electrical_circuits.id = ? AND rooms.property_id = ?", circuitID, propertyID).
		First(&circuit).Error
	return circuit, err
}

func (repo *CircuitRepository) Create(circuit *models.ElectricalCircuit) error {
	return repo.database.Create(circuit).Error
}

func (repo *CircuitRepository) Save(circuit *models.ElectricalCircuit) error {
	return repo.database.Save(circuit).Error
}
