package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"renotrack/internal/models"
)

type propertyInput struct {
	Name            string `form:"name"`
	StreetAddress   string `form:"street_address"`
	PostalCode      string `form:"postal_code"`
	City            string `form:"city"`
	Country         string `form:"country"`
	Description     string `form:"description"`
	RenovationStart string `form:"renovation_start"`
	RenovationEnd   string `form:"renovation_end"`
}

func (handler *Handler) ShowProperties(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	properties, err := handler.repos.Properties.ListByOwner(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load properties")
	}

	var activeID uint
	if property, ok := currentProperty(c); ok {
		activeID = property.ID
	}
	return handler.render(c, "properties", fiber.Map{
		"Title":      handler.i18n.Translate(currentLanguage(c), "meta.title.properties"),
		"Properties": properties,
		"ActiveID":   activeID,
	})
}

func (handler *Handler) ShowPropertyForm(c *fiber.Ctx) error {
	return handler.render(c, "property_form", fiber.Map{
		"Title": handler.i18n.Translate(currentLanguage(c), "meta.title.property_form"),
	})
}

func (handler *Handler) ShowPropertyEditForm(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	property, err := handler.findOwnedProperty(c, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "property not found")
	}
	return handler.render(c, "property_form", fiber.Map{
		"Title":    handler.i18n.Translate(currentLanguage(c), "meta.title.property_form"),
		"Editing":  true,
		"Property": &property,
	})
}

func (handler *Handler) CreateProperty(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	property := models.Property{OwnerID: user.ID, Country: "Poland", IsActive: true}
	if err := handler.applyPropertyInput(c, &property); err != nil {
		return handler.flashError(c, "/properties/new", "flash.invalid_input")
	}
	if err := handler.repos.Properties.Create(&property); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create property")
	}

	handler.setPropertyCookie(c, property.ID)
	return handler.flashSuccess(c, "/", "flash.property_created")
}

func (handler *Handler) UpdateProperty(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	property, err := handler.findOwnedProperty(c, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "property not found")
	}

	if err := handler.applyPropertyInput(c, &property); err != nil {
		return handler.flashError(c, "/properties", "flash.invalid_input")
	}
	if err := handler.repos.Properties.Save(&property); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save property")
	}
	return handler.flashSuccess(c, "/properties", "flash.property_updated")
}

// SwitchProperty changes the working property for subsequent requests.
func (handler *Handler) SwitchProperty(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	property, err := handler.findOwnedProperty(c, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "property not found")
	}

	handler.setPropertyCookie(c, property.ID)
	return handler.flashSuccess(c, "/", "flash.property_switched")
}

func (handler *Handler) findOwnedProperty(c *fiber.Ctx, ownerID uint) (models.Property, error) {
	propertyID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return models.Property{}, err
	}
	return handler.repos.Properties.FindByIDForOwner(uint(propertyID), ownerID)
}

func (handler *Handler) applyPropertyInput(c *fiber.Ctx, property *models.Property) error {
	input := propertyInput{}
	if err := c.BodyParser(&input); err != nil {
		return err
	}

	input.Name = strings.TrimSpace(input.Name)
	input.StreetAddress = strings.TrimSpace(input.StreetAddress)
	input.City = strings.TrimSpace(input.City)
	if input.Name == "" || input.StreetAddress == "" || input.City == "" {
		return fiber.ErrBadRequest
	}

	property.Name = input.Name
	property.StreetAddress = input.StreetAddress
	property.PostalCode = strings.TrimSpace(input.PostalCode)
	property.City = input.City
	if country := strings.TrimSpace(input.Country); country != "" {
		property.Country = country
	}
	property.Description = strings.TrimSpace(input.Description)
	property.RenovationStart = parseOptionalDate(input.RenovationStart)
	property.RenovationEnd = parseOptionalDate(input.RenovationEnd)
	return nil
}

func parseOptionalDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &parsed
}
