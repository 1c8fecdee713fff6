package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"renotrack/internal/services"
)

type credentialsInput struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	RememberMe      bool   `json:"remember_me" form:"remember_me"`
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return handler.render(c, "login", fiber.Map{
		"Title": handler.i18n.Translate(currentLanguage(c), "meta.title.login"),
	})
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return handler.render(c, "register", fiber.Map{
		"Title": handler.i18n.Translate(currentLanguage(c), "meta.title.register"),
	})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondAuthError(c, "/register", "auth.error.invalid_input", input.Email)
	}
	if input.Password != input.ConfirmPassword {
		return handler.respondAuthError(c, "/register", "auth.error.password_mismatch", input.Email)
	}

	user, err := handler.authService.Register(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return handler.respondAuthError(c, "/register", "auth.error.email_exists", input.Email)
		case errors.Is(err, services.ErrWeakPassword):
			return handler.respondAuthError(c, "/register", "auth.error.weak_password", input.Email)
		default:
			return handler.respondAuthError(c, "/register", "auth.error.invalid_input", input.Email)
		}
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return redirectOrJSON(c, "/properties/new")
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondAuthError(c, "/login", "auth.error.invalid_input", input.Email)
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		return handler.respondAuthError(c, "/login", "auth.error.invalid_credentials", input.Email)
	}

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return redirectOrJSON(c, "/")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	language := handler.i18n.NormalizeLanguage(c.Params("lang"))
	handler.setLanguageCookie(c, language)

	nextPath := sanitizeRedirectPath(c.Query("next"), "/")
	return c.Redirect(nextPath, fiber.StatusSeeOther)
}

func (handler *Handler) respondAuthError(c *fiber.Ctx, path string, messageKey string, email string) error {
	message := handler.i18n.Translate(currentLanguage(c), messageKey)
	if acceptsJSON(c) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
	}
	setFlashCookie(c, FlashPayload{Error: message, FormEmail: email})
	return c.Redirect(path, fiber.StatusSeeOther)
}

func sanitizeRedirectPath(raw string, fallback string) string {
	if raw == "" || raw[0] != '/' || len(raw) > 1 && raw[1] == '/' {
		return fallback
	}
	return raw
}
