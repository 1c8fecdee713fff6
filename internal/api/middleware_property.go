package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"renotrack/internal/models"
)

// PropertyRequired resolves the working property from a cookie, falling back
// to the user's first property. Users without a property are sent to the
// property form. Runs after AuthRequired.
func (handler *Handler) PropertyRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	property, found := handler.resolveProperty(c, user)
	if !found {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusPreconditionFailed).JSON(fiber.Map{"error": "no property configured"})
		}
		setFlashCookie(c, FlashPayload{Error: handler.i18n.Translate(currentLanguage(c), "flash.property_required")})
		return c.Redirect("/properties/new", fiber.StatusSeeOther)
	}

	c.Locals(contextPropertyKey, property)
	return c.Next()
}

func (handler *Handler) resolveProperty(c *fiber.Ctx, user *models.User) (*models.Property, bool) {
	raw := strings.TrimSpace(c.Cookies(propertyCookieName))
	if raw != "" {
		propertyID, err := strconv.ParseUint(raw, 10, 64)
		if err == nil {
			property, err := handler.repos.Properties.FindByIDForOwner(uint(propertyID), user.ID)
			if err == nil {
				return &property, true
			}
		}
	}

	property, found, err := handler.repos.Properties.FirstByOwner(user.ID)
	if err != nil || !found {
		return nil, false
	}
	handler.setPropertyCookie(c, property.ID)
	return &property, true
}

func (handler *Handler) setPropertyCookie(c *fiber.Ctx, propertyID uint) {
	c.Cookie(&fiber.Cookie{
		Name:     propertyCookieName,
		Value:    strconv.FormatUint(uint64(propertyID), 10),
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().AddDate(1, 0, 0),
	})
}
