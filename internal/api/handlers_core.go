package api

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}

	if _, ok := data["Messages"]; !ok {
		data["Messages"] = currentMessages(c)
	}
	if _, ok := data["Lang"]; !ok {
		language := currentLanguage(c)
		if language == "" {
			language = handler.i18n.DefaultLanguage()
		}
		data["Lang"] = language
	}
	if _, ok := data["CurrentPath"]; !ok {
		data["CurrentPath"] = currentPathWithQuery(c)
	}
	if _, ok := data["CSRFToken"]; !ok {
		data["CSRFToken"] = csrfToken(c)
	}
	if _, ok := data["User"]; !ok {
		if user, ok := currentUser(c); ok {
			data["User"] = user
		}
	}
	if _, ok := data["Property"]; !ok {
		if property, ok := currentProperty(c); ok {
			data["Property"] = property
		}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = popFlashCookie(c)
	}
	return data
}

func currentPathWithQuery(c *fiber.Ctx) string {
	path := string(c.Request().URI().RequestURI())
	if path == "" {
		return c.Path()
	}
	return path
}

func csrfToken(c *fiber.Ctx) string {
	token, ok := c.Locals("csrf_token").(string)
	if !ok {
		return ""
	}
	return token
}

func acceptsJSON(c *fiber.Ctx) bool {
	accept := strings.ToLower(c.Get(fiber.HeaderAccept))
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))
	return strings.Contains(accept, fiber.MIMEApplicationJSON) ||
		strings.Contains(contentType, fiber.MIMEApplicationJSON)
}

func redirectOrJSON(c *fiber.Ctx, path string) error {
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true, "redirect": path})
	}
	return c.Redirect(path, fiber.StatusSeeOther)
}

func apiError(c *fiber.Ctx, status int, message string) error {
	if acceptsJSON(c) {
		return c.Status(status).JSON(fiber.Map{"error": message})
	}
	return c.Status(status).SendString(message)
}

func translateMessage(messages map[string]string, key string) string {
	if key == "" {
		return ""
	}
	if messages != nil {
		if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return key
}

// flashError redirects back with a localized error message.
func (handler *Handler) flashError(c *fiber.Ctx, path string, messageKey string) error {
	if acceptsJSON(c) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": handler.i18n.Translate(currentLanguage(c), messageKey),
		})
	}
	setFlashCookie(c, FlashPayload{Error: handler.i18n.Translate(currentLanguage(c), messageKey)})
	return c.Redirect(path, fiber.StatusSeeOther)
}

func (handler *Handler) flashSuccess(c *fiber.Ctx, path string, messageKey string) error {
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true, "redirect": path})
	}
	setFlashCookie(c, FlashPayload{Success: handler.i18n.Translate(currentLanguage(c), messageKey)})
	return c.Redirect(path, fiber.StatusSeeOther)
}
