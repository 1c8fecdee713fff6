package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"renotrack/internal/models"
)

func (handler *Handler) ExportPurchasesCSV(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	labels := handler.choices.LabelMap(models.ChoiceTypePurchaseCategory, currentLanguage(c))

	data, err := handler.export.PurchasesCSV(property.ID, labels)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export purchases")
	}
	setDownloadHeaders(c, "text/csv", exportFilename("purchases", "csv"))
	return c.Send(data)
}

func (handler *Handler) ExportPurchasesJSON(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	labels := handler.choices.LabelMap(models.ChoiceTypePurchaseCategory, currentLanguage(c))

	data, err := handler.export.PurchasesJSON(property.ID, labels)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export purchases")
	}
	setDownloadHeaders(c, fiber.MIMEApplicationJSON, exportFilename("purchases", "json"))
	return c.Send(data)
}

func (handler *Handler) ExportPurchasesXLSX(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	labels := handler.choices.LabelMap(models.ChoiceTypePurchaseCategory, currentLanguage(c))

	data, err := handler.export.PurchasesXLSX(property.ID, labels)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export purchases")
	}
	setDownloadHeaders(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", exportFilename("purchases", "xlsx"))
	return c.Send(data)
}

func (handler *Handler) ExportSessionsCSV(c *fiber.Ctx) error {
	property, _ := currentProperty(c)

	data, err := handler.export.SessionsCSV(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export work sessions")
	}
	setDownloadHeaders(c, "text/csv", exportFilename("sessions", "csv"))
	return c.Send(data)
}

func (handler *Handler) ExportSessionsJSON(c *fiber.Ctx) error {
	property, _ := currentProperty(c)

	data, err := handler.export.SessionsJSON(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export work sessions")
	}
	setDownloadHeaders(c, fiber.MIMEApplicationJSON, exportFilename("sessions", "json"))
	return c.Send(data)
}

func (handler *Handler) ExportSessionsXLSX(c *fiber.Ctx) error {
	property, _ := currentProperty(c)

	data, err := handler.export.SessionsXLSX(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export work sessions")
	}
	setDownloadHeaders(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", exportFilename("sessions", "xlsx"))
	return c.Send(data)
}

func setDownloadHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}

func exportFilename(prefix string, extension string) string {
	return fmt.Sprintf("renotrack_%s_%s.%s", prefix, time.Now().Format("20060102_150405"), extension)
}
