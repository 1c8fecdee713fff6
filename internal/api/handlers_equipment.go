package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"renotrack/internal/models"
	"renotrack/internal/services"
)

type equipmentInput struct {
	Name           string `form:"name"`
	Purpose        string `form:"purpose"`
	Condition      string `form:"condition"`
	IsOld          bool   `form:"is_old"`
	PurchaseDate   string `form:"purchase_date"`
	PurchasePrice  string `form:"purchase_price"`
	PurchaseVendor string `form:"purchase_vendor"`
	Notes          string `form:"notes"`
}

func (handler *Handler) ShowEquipment(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	items, err := handler.repos.Equipment.ListByOwner(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load equipment")
	}

	assigned := make(map[uint]bool, len(items))
	for _, item := range items {
		active, err := handler.equipment.IsAssigned(item.ID)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load assignments")
		}
		assigned[item.ID] = active
	}

	return handler.render(c, "equipment", fiber.Map{
		"Title":    handler.i18n.Translate(currentLanguage(c), "meta.title.equipment"),
		"Items":    items,
		"Assigned": assigned,
	})
}

func (handler *Handler) ShowEquipmentDetail(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	item, err := handler.findOwnedEquipment(c, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "equipment not found")
	}

	properties, err := handler.repos.Properties.ListByOwner(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load properties")
	}
	propertyNames := make(map[uint]string, len(properties))
	for _, property := range properties {
		propertyNames[property.ID] = property.Name
	}

	assigned, err := handler.equipment.IsAssigned(item.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load assignments")
	}

	return handler.render(c, "equipment_detail", fiber.Map{
		"Title":         handler.i18n.Translate(currentLanguage(c), "meta.title.equipment_detail"),
		"Item":          &item,
		"Assigned":      assigned,
		"Properties":    properties,
		"PropertyNames": propertyNames,
		"PhotoCount":    len(item.Photos),
		"PhotoLimit":    models.MaxEquipmentPhotos,
	})
}

func (handler *Handler) ShowEquipmentForm(c *fiber.Ctx) error {
	return handler.renderEquipmentForm(c, nil)
}

func (handler *Handler) ShowEquipmentEditForm(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	item, err := handler.findOwnedEquipment(c, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "equipment not found")
	}
	return handler.renderEquipmentForm(c, &item)
}

func (handler *Handler) renderEquipmentForm(c *fiber.Ctx, item *models.Equipment) error {
	language := currentLanguage(c)
	data := fiber.Map{
		"Title":   handler.i18n.Translate(language, "meta.title.equipment_form"),
		"Vendors": handler.choices.ChoicesFor(models.ChoiceTypeVendor, language),
	}
	if item != nil {
		data["Editing"] = true
		data["Item"] = item
		if item.PurchasePriceCents != nil {
			data["PurchasePrice"] = models.FormatCents(*item.PurchasePriceCents)
		}
	}
	return handler.render(c, "equipment_form", data)
}

func (handler *Handler) CreateEquipment(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	item := models.Equipment{OwnerID: user.ID, Condition: models.ConditionOK}
	if err := applyEquipmentInput(c, &item); err != nil {
		return handler.flashError(c, "/equipment/new", "flash.invalid_input")
	}
	if err := handler.repos.Equipment.Create(&item); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create equipment")
	}
	return handler.flashSuccess(c, "/equipment", "flash.equipment_created")
}

func (handler *Handler) UpdateEquipment(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	item, err := handler.findOwnedEquipment(c, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "equipment not found")
	}

	if err := applyEquipmentInput(c, &item); err != nil {
		return handler.flashError(c, "/equipment", "flash.invalid_input")
	}
	if err := handler.repos.Equipment.Save(&item); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save equipment")
	}
	return handler.flashSuccess(c, "/equipment/"+c.Params("id"), "flash.equipment_updated")
}

// SellEquipment marks the item as sold. A sold item can no longer be
// assigned, existing history stays untouched.
func (handler *Handler) SellEquipment(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	item, err := handler.findOwnedEquipment(c, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "equipment not found")
	}
	itemPath := "/equipment/" + c.Params("id")

	soldDate, err := time.Parse("2006-01-02", strings.TrimSpace(c.FormValue("sold_date")))
	if err != nil {
		return handler.flashError(c, itemPath, "flash.invalid_date")
	}

	item.SoldDate = &soldDate
	item.SoldPriceCents = nil
	if raw := strings.TrimSpace(c.FormValue("sold_price")); raw != "" {
		cents, err := models.ParseAmountCents(raw)
		if err != nil {
			return handler.flashError(c, itemPath, "flash.invalid_amount")
		}
		item.SoldPriceCents = &cents
	}

	if err := handler.repos.Equipment.Save(&item); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save equipment")
	}
	return handler.flashSuccess(c, itemPath, "flash.equipment_sold")
}

func (handler *Handler) AssignEquipment(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	item, err := handler.findOwnedEquipment(c, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "equipment not found")
	}
	itemPath := "/equipment/" + c.Params("id")

	propertyID, err := strconv.ParseUint(c.FormValue("property_id"), 10, 64)
	if err != nil {
		return handler.flashError(c, itemPath, "flash.invalid_input")
	}
	if _, err := handler.repos.Properties.FindByIDForOwner(uint(propertyID), user.ID); err != nil {
		return handler.flashError(c, itemPath, "flash.invalid_input")
	}

	startDate := time.Now()
	if raw := strings.TrimSpace(c.FormValue("start_date")); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return handler.flashError(c, itemPath, "flash.invalid_date")
		}
		startDate = parsed
	}

	_, err = handler.equipment.Assign(&item, uint(propertyID), startDate, c.FormValue("notes"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEquipmentSold):
			return handler.flashError(c, itemPath, "flash.equipment_sold_assign")
		case errors.Is(err, services.ErrAlreadyAssigned):
			return handler.flashError(c, itemPath, "flash.equipment_already_assigned")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to assign equipment")
		}
	}
	return handler.flashSuccess(c, itemPath, "flash.equipment_assigned")
}

func (handler *Handler) UnassignEquipment(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	item, err := handler.findOwnedEquipment(c, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "equipment not found")
	}
	itemPath := "/equipment/" + c.Params("id")

	endDate := time.Now()
	if raw := strings.TrimSpace(c.FormValue("end_date")); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return handler.flashError(c, itemPath, "flash.invalid_date")
		}
		endDate = parsed
	}

	if _, err := handler.equipment.Unassign(&item, endDate); err != nil {
		if errors.Is(err, services.ErrNotAssigned) {
			return handler.flashError(c, itemPath, "flash.equipment_not_assigned")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to unassign equipment")
	}
	return handler.flashSuccess(c, itemPath, "flash.equipment_unassigned")
}

func (handler *Handler) DeleteEquipment(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	item, err := handler.findOwnedEquipment(c, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "equipment not found")
	}

	if err := handler.repos.Equipment.Delete(&item); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete equipment")
	}
	for _, photo := range item.Photos {
		handler.uploads.Remove(photo.PhotoPath)
	}
	handler.uploads.Remove(item.ReceiptPath)
	return handler.flashSuccess(c, "/equipment", "flash.equipment_deleted")
}

func (handler *Handler) AddEquipmentPhoto(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	item, err := handler.findOwnedEquipment(c, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "equipment not found")
	}
	itemPath := "/equipment/" + c.Params("id")

	header, err := c.FormFile("photo")
	if err != nil || header == nil {
		return handler.flashError(c, itemPath, "flash.invalid_input")
	}
	path, err := handler.uploads.Save(header, "equipment")
	if err != nil {
		return handler.flashError(c, itemPath, "flash.invalid_input")
	}

	if _, err := handler.equipment.AddPhoto(&item, path, c.FormValue("caption")); err != nil {
		handler.uploads.Remove(path)
		if errors.Is(err, services.ErrPhotoLimitReached) {
			return handler.flashError(c, itemPath, "flash.photo_limit_reached")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save photo")
	}
	return handler.flashSuccess(c, itemPath, "flash.photo_added")
}

func (handler *Handler) DeleteEquipmentPhoto(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	itemPath := "/equipment/" + c.Params("id")

	photoID, err := strconv.ParseUint(c.Params("photoID"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid photo id")
	}
	photo, err := handler.repos.Equipment.FindPhotoForOwner(uint(photoID), user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "photo not found")
	}

	if err := handler.repos.Equipment.DeletePhoto(&photo); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete photo")
	}
	handler.uploads.Remove(photo.PhotoPath)
	return handler.flashSuccess(c, itemPath, "flash.photo_deleted")
}

func (handler *Handler) findOwnedEquipment(c *fiber.Ctx, ownerID uint) (models.Equipment, error) {
	equipmentID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return models.Equipment{}, err
	}
	return handler.repos.Equipment.FindByIDForOwner(uint(equipmentID), ownerID)
}

func applyEquipmentInput(c *fiber.Ctx, item *models.Equipment) error {
	input := equipmentInput{}
	if err := c.BodyParser(&input); err != nil {
		return err
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return fiber.ErrBadRequest
	}
	if input.Condition != "" && !models.ValidCondition(input.Condition) {
		return fiber.ErrBadRequest
	}

	item.Name = input.Name
	item.Purpose = strings.TrimSpace(input.Purpose)
	if input.Condition != "" {
		item.Condition = input.Condition
	}
	item.IsOld = input.IsOld
	item.PurchaseDate = parseOptionalDate(input.PurchaseDate)
	item.PurchaseVendor = strings.TrimSpace(input.PurchaseVendor)
	item.Notes = strings.TrimSpace(input.Notes)

	item.PurchasePriceCents = nil
	if raw := strings.TrimSpace(input.PurchasePrice); raw != "" {
		cents, err := models.ParseAmountCents(raw)
		if err != nil {
			return err
		}
		item.PurchasePriceCents = &cents
	}
	return nil
}
