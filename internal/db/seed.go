package db

import (
	"fmt"

	"renotrack/internal/models"

	"gorm.io/gorm"
)

// SeedDropdownChoices inserts the compiled-in reference table into an empty
// dropdown_choices table. Existing (choice_type, value) pairs are left
// untouched so admin edits survive restarts.
func SeedDropdownChoices(database *gorm.DB) error {
	for _, choice := range models.DefaultDropdownChoices() {
		var count int64
		if err := database.Model(&models.DropdownChoice{}).
			Where("choice_type = ? AND value = ?", choice.ChoiceType, choice.Value).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check dropdown choice %s/%s: %w", choice.ChoiceType, choice.Value, err)
		}
		if count > 0 {
			continue
		}
		record := choice
		if err := database.Create(&record).Error; err != nil {
			return fmt.Errorf("seed dropdown choice %s/%s: %w", choice.ChoiceType, choice.Value, err)
		}
	}
	return nil
}
