package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"renotrack/internal/models"
)

const recentPurchasesLimit = 5

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	language := currentLanguage(c)
	today := time.Now()

	labels := handler.choices.LabelMap(models.ChoiceTypePurchaseCategory, language)

	summary, err := handler.stats.SpendSummary(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load spend summary")
	}
	categories, err := handler.stats.CategoryBreakdown(property.ID, labels)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load category breakdown")
	}
	trend, err := handler.stats.MonthlyTrend(property.ID, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load monthly trend")
	}
	workHours, err := handler.stats.WorkHours(property.ID, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load work hours")
	}
	roomStatuses, err := handler.stats.RoomStatuses(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load room statuses")
	}
	vendors, err := handler.stats.TopVendors(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load vendors")
	}
	recent, err := handler.purchases.ListRecentByProperty(property.ID, recentPurchasesLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load recent purchases")
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Title":           handler.i18n.Translate(language, "meta.title.dashboard"),
		"Summary":         summary,
		"Categories":      categories,
		"Trend":           trend,
		"WorkHours":       workHours,
		"RoomStatuses":    roomStatuses,
		"TopVendors":      vendors,
		"RecentPurchases": recent,
		"CategoryLabels":  labels,
	})
}

// DashboardOverview serves the same aggregates as JSON for the chart widgets.
func (handler *Handler) DashboardOverview(c *fiber.Ctx) error {
	property, _ := currentProperty(c)
	language := currentLanguage(c)
	today := time.Now()

	labels := handler.choices.LabelMap(models.ChoiceTypePurchaseCategory, language)

	summary, err := handler.stats.SpendSummary(property.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load spend summary")
	}
	categories, err := handler.stats.CategoryBreakdown(property.ID, labels)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load category breakdown")
	}
	trend, err := handler.stats.MonthlyTrend(property.ID, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load monthly trend")
	}
	workHours, err := handler.stats.WorkHours(property.ID, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load work hours")
	}

	return c.JSON(fiber.Map{
		"total_cents":    summary.TotalCents,
		"purchase_count": summary.PurchaseCount,
		"categories":     categories,
		"trend":          trend,
		"work_hours":     workHours,
	})
}
