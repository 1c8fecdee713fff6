package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"renotrack/internal/models"
)

func TestRegisterCreatesUserAndRedirectsToPropertyForm(t *testing.T) {
	app, database := newTestApp(t)

	form := url.Values{
		"email":            {"nowy@example.com"},
		"password":         {"StrongPass1"},
		"confirm_password": {"StrongPass1"},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/properties/new" {
		t.Fatalf("expected redirect to /properties/new, got %q", location)
	}
	if responseCookieValue(response.Cookies(), authCookieName) == "" {
		t.Fatal("expected auth cookie after registration")
	}

	var user models.User
	if err := database.Where("email = ?", "nowy@example.com").First(&user).Error; err != nil {
		t.Fatalf("expected user row: %v", err)
	}
	if user.PasswordHash == "StrongPass1" {
		t.Fatal("password must not be stored in plain text")
	}
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	app, database := newTestApp(t)

	form := url.Values{
		"email":            {"mismatch@example.com"},
		"password":         {"StrongPass1"},
		"confirm_password": {"OtherPass1"},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/register" {
		t.Fatalf("expected redirect back to /register, got %q", location)
	}
	if responseCookieValue(response.Cookies(), flashCookieName) == "" {
		t.Fatal("expected flash cookie with validation error")
	}

	var count int64
	if err := database.Model(&models.User{}).Where("email = ?", "mismatch@example.com").Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Fatal("did not expect user row after rejected registration")
	}
}

func TestLoginRejectsInvalidCredentials(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "wlasciciel@example.com", "StrongPass1")

	form := url.Values{
		"email":    {user.Email},
		"password": {"WrongPass1"},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/login" {
		t.Fatalf("expected redirect back to /login, got %q", location)
	}
	if responseCookieValue(response.Cookies(), authCookieName) != "" {
		t.Fatal("did not expect auth cookie for invalid credentials")
	}
}

func TestDashboardRequiresLogin(t *testing.T) {
	app, _ := newTestApp(t)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("dashboard request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/login" {
		t.Fatalf("expected redirect to /login, got %q", location)
	}
}

func TestAPIRejectsAnonymousRequestsWithJSON(t *testing.T) {
	app, _ := newTestApp(t)

	request := httptest.NewRequest(http.MethodGet, "/api/dashboard/overview", nil)
	request.Header.Set("Accept", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("overview request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
	if contentType := response.Header.Get("Content-Type"); !strings.Contains(contentType, "application/json") {
		t.Fatalf("expected JSON error response, got %q", contentType)
	}
}
