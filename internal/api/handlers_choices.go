package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"renotrack/internal/models"
	"renotrack/internal/services"
)

type choiceInput struct {
	ChoiceType   string `form:"choice_type"`
	Value        string `form:"value"`
	LabelPL      string `form:"label_pl"`
	LabelEN      string `form:"label_en"`
	DisplayOrder int    `form:"display_order"`
	IsActive     bool   `form:"is_active"`
}

func (handler *Handler) ShowChoices(c *fiber.Ctx) error {
	choices, err := handler.choices.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load choices")
	}

	grouped := make(map[string][]models.DropdownChoice)
	for _, choice := range choices {
		grouped[choice.ChoiceType] = append(grouped[choice.ChoiceType], choice)
	}

	return handler.render(c, "choices", fiber.Map{
		"Title":       handler.i18n.Translate(currentLanguage(c), "meta.title.choices"),
		"Grouped":     grouped,
		"ChoiceTypes": models.ChoiceTypes(),
	})
}

func (handler *Handler) ShowChoiceForm(c *fiber.Ctx) error {
	return handler.renderChoiceForm(c, nil)
}

func (handler *Handler) ShowChoiceEditForm(c *fiber.Ctx) error {
	choice, err := handler.findChoice(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "choice not found")
	}
	return handler.renderChoiceForm(c, &choice)
}

func (handler *Handler) renderChoiceForm(c *fiber.Ctx, choice *models.DropdownChoice) error {
	data := fiber.Map{
		"Title":       handler.i18n.Translate(currentLanguage(c), "meta.title.choice_form"),
		"ChoiceTypes": models.ChoiceTypes(),
	}
	if choice != nil {
		data["Editing"] = true
		data["Choice"] = choice
	}
	return handler.render(c, "choice_form", data)
}

func (handler *Handler) CreateChoice(c *fiber.Ctx) error {
	choice := models.DropdownChoice{}
	applyChoiceInput(c, &choice)

	if err := handler.choices.CreateChoice(&choice); err != nil {
		return handler.flashError(c, "/choices/new", choiceErrorKey(err))
	}
	return handler.flashSuccess(c, "/choices", "flash.choice_created")
}

func (handler *Handler) UpdateChoice(c *fiber.Ctx) error {
	choice, err := handler.findChoice(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "choice not found")
	}

	applyChoiceInput(c, &choice)
	if err := handler.choices.UpdateChoice(&choice); err != nil {
		return handler.flashError(c, "/choices", choiceErrorKey(err))
	}
	return handler.flashSuccess(c, "/choices", "flash.choice_updated")
}

func (handler *Handler) DeleteChoice(c *fiber.Ctx) error {
	choice, err := handler.findChoice(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "choice not found")
	}
	if err := handler.choices.DeleteChoice(&choice); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete choice")
	}
	return handler.flashSuccess(c, "/choices", "flash.choice_deleted")
}

func (handler *Handler) findChoice(c *fiber.Ctx) (models.DropdownChoice, error) {
	choiceID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return models.DropdownChoice{}, err
	}
	return handler.choices.FindByID(uint(choiceID))
}

func applyChoiceInput(c *fiber.Ctx, choice *models.DropdownChoice) {
	input := choiceInput{}
	if err := c.BodyParser(&input); err != nil {
		return
	}
	choice.ChoiceType = input.ChoiceType
	choice.Value = input.Value
	choice.LabelPL = input.LabelPL
	choice.LabelEN = input.LabelEN
	choice.DisplayOrder = input.DisplayOrder
	choice.IsActive = input.IsActive
}

func choiceErrorKey(err error) string {
	switch {
	case errors.Is(err, services.ErrDuplicateChoiceValue):
		return "flash.duplicate_choice"
	case errors.Is(err, services.ErrUnknownChoiceType), errors.Is(err, services.ErrInvalidChoiceValue):
		return "flash.invalid_input"
	default:
		return "flash.invalid_input"
	}
}
