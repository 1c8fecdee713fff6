package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"renotrack/internal/models"
)

var (
	ErrUnknownChoiceType    = errors.New("unknown choice type")
	ErrInvalidChoiceValue   = errors.New("invalid choice value")
	ErrDuplicateChoiceValue = errors.New("duplicate choice value")
	ErrChoiceNotFound       = errors.New("choice not found")
)

type ChoiceRepository interface {
	ListActiveByType(choiceType string) ([]models.DropdownChoice, error)
	ListAll() ([]models.DropdownChoice, error)
	FindByID(choiceID uint) (models.DropdownChoice, error)
	ExistsByTypeValue(choiceType string, value string, excludeID uint) (bool, error)
	Create(choice *models.DropdownChoice) error
	Save(choice *models.DropdownChoice) error
	Delete(choice *models.DropdownChoice) error
}

type ChoiceService struct {
	choices ChoiceRepository
}

func NewChoiceService(choices ChoiceRepository) *ChoiceService {
	return &ChoiceService{choices: choices}
}

// ChoicesFor returns active entries for a type sorted by display order and
// localized label. When the reference table has no active rows for the type,
// or the store errors, the compiled-in defaults are returned instead.
func (service *ChoiceService) ChoicesFor(choiceType string, language string) []models.DropdownChoice {
	choices, err := service.choices.ListActiveByType(choiceType)
	if err != nil || len(choices) == 0 {
		choices = models.DefaultDropdownChoicesFor(choiceType)
	}
	SortChoices(choices, language)
	return choices
}

// LabelMap maps choice values to localized labels, defaults included so
// historical rows keep a label even after an admin deactivates their entry.
func (service *ChoiceService) LabelMap(choiceType string, language string) map[string]string {
	labels := make(map[string]string)
	for _, choice := range models.DefaultDropdownChoicesFor(choiceType) {
		labels[choice.Value] = choice.Label(language)
	}
	for _, choice := range service.ChoicesFor(choiceType, language) {
		labels[choice.Value] = choice.Label(language)
	}
	return labels
}

func (service *ChoiceService) ListAll() ([]models.DropdownChoice, error) {
	return service.choices.ListAll()
}

func (service *ChoiceService) FindByID(choiceID uint) (models.DropdownChoice, error) {
	choice, err := service.choices.FindByID(choiceID)
	if err != nil {
		return models.DropdownChoice{}, fmt.Errorf("%w: %v", ErrChoiceNotFound, err)
	}
	return choice, nil
}

func (service *ChoiceService) CreateChoice(choice *models.DropdownChoice) error {
	if err := service.validateChoice(choice, 0); err != nil {
		return err
	}
	return service.choices.Create(choice)
}

func (service *ChoiceService) UpdateChoice(choice *models.DropdownChoice) error {
	if err := service.validateChoice(choice, choice.ID); err != nil {
		return err
	}
	return service.choices.Save(choice)
}

func (service *ChoiceService) DeleteChoice(choice *models.DropdownChoice) error {
	return service.choices.Delete(choice)
}

func (service *ChoiceService) validateChoice(choice *models.DropdownChoice, excludeID uint) error {
	choice.Value = strings.TrimSpace(choice.Value)
	choice.LabelPL = strings.TrimSpace(choice.LabelPL)
	choice.LabelEN = strings.TrimSpace(choice.LabelEN)

	if !validChoiceType(choice.ChoiceType) {
		return ErrUnknownChoiceType
	}
	if choice.Value == "" || choice.LabelPL == "" {
		return ErrInvalidChoiceValue
	}

	exists, err := service.choices.ExistsByTypeValue(choice.ChoiceType, choice.Value, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateChoiceValue
	}
	return nil
}

func validChoiceType(choiceType string) bool {
	for _, known := range models.ChoiceTypes() {
		if choiceType == known {
			return true
		}
	}
	return false
}

// SortChoices orders entries by display order, then localized label.
func SortChoices(choices []models.DropdownChoice, language string) {
	sort.SliceStable(choices, func(i, j int) bool {
		if choices[i].DisplayOrder != choices[j].DisplayOrder {
			return choices[i].DisplayOrder < choices[j].DisplayOrder
		}
		return choices[i].Label(language) < choices[j].Label(language)
	})
}
