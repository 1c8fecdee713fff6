package db

import (
	"renotrack/internal/models"

	"gorm.io/gorm"
)

type TodoRepository struct {
	database *gorm.DB
}

func NewTodoRepository(database *gorm.DB) *TodoRepository {
	return &TodoRepository{database: database}
}

func (repo *TodoRepository) ListTasksByProperty(propertyID uint) ([]models.RenovationTask, error) {
	tasks := make([]models.RenovationTask, 0)
	if err := repo.database.
		Where("property_id = ?", propertyID).
		Order("is_done ASC, due_date IS NULL, due_date ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TodoRepository) FindTaskForProperty(taskID uint, propertyID uint) (models.RenovationTask, error) {
	task := models.RenovationTask{}
	err := repo.database.
		Where("id = ? AND property_id = ?", taskID, propertyID).
		First(&task).Error
	return task, err
}

func (repo *TodoRepository) CreateTask(task *models.RenovationTask) error {
	return repo.database.Create(task).Error
}

func (repo *TodoRepository) SaveTask(task *models.RenovationTask) error {
	return repo.database.Save(task).Error
}

func (repo *TodoRepository) DeleteTask(task *models.RenovationTask) error {
	return repo.database.Delete(task).Error
}

func (repo *TodoRepository) ListItemsByProperty(propertyID uint) ([]models.ShoppingItem, error) {
	items := make([]models.ShoppingItem, 0)
	if err := repo.database.
		Where("property_id = ?", propertyID).
		Order("is_bought ASC, name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *TodoRepository) FindItemForProperty(itemID uint, propertyID uint) (models.ShoppingItem, error) {
	item := models.ShoppingItem{}
	err := repo.database.
		Where("id = ? AND property_id = ?", itemID, propertyID).
		First(&item).Error
	return item, err
}

func (repo *TodoRepository) CreateItem(item *models.ShoppingItem) error {
	return repo.database.Create(item).Error
}

func (repo *TodoRepository) SaveItem(item *models.ShoppingItem) error {
	return repo.database.Save(item).Error
}

func (repo *TodoRepository) DeleteItem(item *models.ShoppingItem) error {
	return repo.database.Delete(item).Error
}
