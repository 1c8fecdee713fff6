package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"renotrack/internal/db"
	"renotrack/internal/i18n"
	"renotrack/internal/models"
	"renotrack/internal/storage"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	app, database, _ := newTestAppWithUploads(t)
	return app, database
}

func newTestAppWithUploads(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	internalDir := filepath.Dir(apiDir)
	rootDir := filepath.Dir(internalDir)
	templatesDir := filepath.Join(rootDir, "web", "templates")
	localesDir := filepath.Join(internalDir, "i18n", "locales")
	databasePath := filepath.Join(t.TempDir(), "renotrack-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := db.SeedDropdownChoices(database); err != nil {
		t.Fatalf("seed dropdown choices: %v", err)
	}

	i18nManager, err := i18n.NewManager("pl", localesDir)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	uploadsDir := t.TempDir()
	uploads, err := storage.NewLocalStore(uploadsDir)
	if err != nil {
		t.Fatalf("init upload store: %v", err)
	}

	handler, err := NewHandler(database, "test-secret-key", templatesDir, uploads, i18nManager, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	return app, database, uploadsDir
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(passwordHash),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestProperty(t *testing.T, database *gorm.DB, ownerID uint, name string) models.Property {
	t.Helper()

	property := models.Property{
		OwnerID:       ownerID,
		Name:          name,
		StreetAddress: "Testowa 1",
		City:          "Warszawa",
		Country:       "Poland",
		IsActive:      true,
	}
	if err := database.Create(&property).Error; err != nil {
		t.Fatalf("create property: %v", err)
	}
	return property
}

func loginTestUser(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	form := url.Values{
		"email":    {email},
		"password": {password},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login status 303, got %d", response.StatusCode)
	}

	token := responseCookieValue(response.Cookies(), authCookieName)
	if token == "" {
		t.Fatal("expected auth cookie after login")
	}
	return token
}

func itoa(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	if cookie := responseCookie(cookies, name); cookie != nil {
		return cookie.Value
	}
	return ""
}
