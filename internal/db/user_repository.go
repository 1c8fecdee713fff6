package db

import (
	"strings"

	"renotrack/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (repo *UserRepository) FindByEmail(email string) (models.User, error) {
	user := models.User{}
	err := repo.database.Where("email = ?", normalizeEmail(email)).First(&user).Error
	return user, err
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	user := models.User{}
	err := repo.database.First(&user, userID).Error
	return user, err
}

func (repo *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := repo.database.Model(&models.User{}).Where("email = ?", normalizeEmail(email)).Count(&count).Error
	return count > 0, err
}

func (repo *UserRepository) Create(user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	return repo.database.Create(user).Error
}
