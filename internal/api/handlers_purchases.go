package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"renotrack/internal/models"
	"renotrack/internal/services"
)

func (handler *Handler) ShowPurchases(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	language := currentLanguage(c)

	purchases, err := handler.purchases.ListByProperty(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load purchases")
	}
	summary, err := handler.stats.SpendSummary(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load spend summary")
	}

	return handler.render(c, "purchases", fiber.Map{
		"Title":          handler.i18n.Translate(language, "meta.title.purchases"),
		"Purchases":      purchases,
		"Summary":        summary,
		"CategoryLabels": handler.choices.LabelMap(models.ChoiceTypePurchaseCategory, language),
	})
}

func (handler *Handler) ShowPurchaseForm(c *fiber.Ctx) error {
	return handler.renderPurchaseForm(c, nil)
}

func (handler *Handler) ShowPurchaseEditForm(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	purchase, err := handler.findPropertyPurchase(c, property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "purchase not found")
	}
	return handler.renderPurchaseForm(c, &purchase)
}

func (handler *Handler) renderPurchaseForm(c *fiber.Ctx, purchase *models.Purchase) error {
	language := currentLanguage(c)
	data := fiber.Map{
		"Title":      handler.i18n.Translate(language, "meta.title.purchase_form"),
		"Categories": handler.choices.ChoicesFor(models.ChoiceTypePurchaseCategory, language),
		"Vendors":    handler.choices.ChoicesFor(models.ChoiceTypeVendor, language),
	}
	if purchase != nil {
		data["Editing"] = true
		data["Purchase"] = purchase
		data["Amount"] = models.FormatCents(purchase.AmountCents)
	}
	return handler.render(c, "purchase_form", data)
}

func (handler *Handler) CreatePurchase(c *fiber.Ctx) error {
	property, _ := currentProperty(c)

	purchase, err := handler.purchases.CreateFromForm(property.ID, purchaseFormInput(c))
	if err != nil {
		return handler.flashError(c, "/purchases/new", purchaseErrorKey(err))
	}

	if path, ok := handler.saveReceipt(c); ok {
		purchase.ReceiptPath = path
		if err := handler.repos.Purchases.Save(&purchase); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to save receipt")
		}
	}
	return handler.flashSuccess(c, "/purchases", "flash.purchase_created")
}

func (handler *Handler) UpdatePurchase(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	purchase, err := handler.findPropertyPurchase(c, property.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "purchase not found")
	}

	// The old receipt file is only removed once the updated row is saved,
	// so a failed validation never orphans the stored reference.
	previousReceipt := purchase.ReceiptPath
	newReceipt, hasNewReceipt := handler.saveReceipt(c)
	if hasNewReceipt {
		purchase.ReceiptPath = newReceipt
	}
	if err := handler.purchases.UpdateFromForm(&purchase, purchaseFormInput(c)); err != nil {
		if hasNewReceipt {
			handler.uploads.Remove(newReceipt)
		}
		return handler.flashError(c, "/purchases", purchaseErrorKey(err))
	}
	if hasNewReceipt && previousReceipt != "" {
		handler.uploads.Remove(previousReceipt)
	}
	return handler.flashSuccess(c, "/purchases", "flash.purchase_updated")
}

func (handler *Handler) findPropertyPurchase(c *fiber.Ctx, propertyID uint) (models.Purchase, error) {
	purchaseID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return models.Purchase{}, err
	}
	return handler.purchases.FindByIDForProperty(uint(purchaseID), propertyID)
}

func (handler *Handler) saveReceipt(c *fiber.Ctx) (string, bool) {
	header, err := c.FormFile("receipt")
	if err != nil || header == nil {
		return "", false
	}
	path, err := handler.uploads.Save(header, "receipts")
	if err != nil {
		return "", false
	}
	return path, true
}

func purchaseFormInput(c *fiber.Ctx) services.PurchaseForm {
	return services.PurchaseForm{
		Category:    c.FormValue("category"),
		Date:        c.FormValue("date"),
		Amount:      c.FormValue("amount"),
		Vendor:      c.FormValue("vendor"),
		Description: c.FormValue("description"),
		Notes:       c.FormValue("notes"),
	}
}

func purchaseErrorKey(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		return "flash.invalid_amount"
	case errors.Is(err, services.ErrInvalidPurchaseDate):
		return "flash.invalid_date"
	case errors.Is(err, services.ErrMissingVendor), errors.Is(err, services.ErrMissingCategory):
		return "flash.invalid_input"
	default:
		return "flash.invalid_input"
	}
}
