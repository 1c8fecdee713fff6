package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"renotrack/internal/models"
)

func TestDashboardWithoutPropertyRedirectsToPropertyForm(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "bezdomu@example.com", "StrongPass1")
	token := loginTestUser(t, app, user.Email, "StrongPass1")

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Cookie", authCookieName+"="+token)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("dashboard request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/properties/new" {
		t.Fatalf("expected redirect to /properties/new, got %q", location)
	}
}

func TestSwitchPropertySetsCookie(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "dwadomy@example.com", "StrongPass1")
	first := createTestProperty(t, database, user.ID, "Mieszkanie")
	second := createTestProperty(t, database, user.ID, "Dom")
	token := loginTestUser(t, app, user.Email, "StrongPass1")

	form := url.Values{}
	request := httptest.NewRequest(http.MethodPost, "/properties/"+itoa(second.ID)+"/switch", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Cookie", authCookieName+"="+token)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("switch request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if value := responseCookieValue(response.Cookies(), propertyCookieName); value != itoa(second.ID) {
		t.Fatalf("expected property cookie %q, got %q", itoa(second.ID), value)
	}
	_ = first
}

func TestSwitchPropertyRejectsForeignProperty(t *testing.T) {
	app, database := newTestApp(t)
	owner := createTestUser(t, database, "swoj@example.com", "StrongPass1")
	stranger := createTestUser(t, database, "obcy@example.com", "StrongPass1")
	foreign := createTestProperty(t, database, owner.ID, "Cudzy dom")
	token := loginTestUser(t, app, stranger.Email, "StrongPass1")

	request := httptest.NewRequest(http.MethodPost, "/properties/"+itoa(foreign.ID)+"/switch", nil)
	request.Header.Set("Cookie", authCookieName+"="+token)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("switch request failed: %v", err)
	}
	defer response.Body.Close()

	if responseCookieValue(response.Cookies(), propertyCookieName) == itoa(foreign.ID) {
		t.Fatal("must not select a property owned by another user")
	}
}

func TestRoomsAreScopedToSelectedProperty(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "pokoje@example.com", "StrongPass1")
	first := createTestProperty(t, database, user.ID, "Mieszkanie")
	second := createTestProperty(t, database, user.ID, "Dom")
	token := loginTestUser(t, app, user.Email, "StrongPass1")

	firstRoom := models.Room{PropertyID: first.ID, RoomType: "kitchen", ShortName: "Kuchnia A"}
	if err := database.Create(&firstRoom).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}
	secondRoom := models.Room{PropertyID: second.ID, RoomType: "bedroom", ShortName: "Sypialnia B"}
	if err := database.Create(&secondRoom).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	request.Header.Set("Cookie", authCookieName+"="+token+"; "+propertyCookieName+"="+itoa(second.ID))

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("rooms request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	rendered := string(body)
	if !strings.Contains(rendered, "Sypialnia B") {
		t.Fatal("expected room from the selected property")
	}
	if strings.Contains(rendered, "Kuchnia A") {
		t.Fatal("did not expect a room from another property")
	}
}

func TestExportPurchasesCSVReturnsAttachment(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "eksport@example.com", "StrongPass1")
	property := createTestProperty(t, database, user.ID, "Dom")
	token := loginTestUser(t, app, user.Email, "StrongPass1")

	purchase := models.Purchase{
		PropertyID:  property.ID,
		Category:    "paint",
		Date:        mustParseDate(t, "2026-08-12"),
		AmountCents: 12550,
		Vendor:      "Castorama",
		Description: "Farba do salonu",
	}
	if err := database.Create(&purchase).Error; err != nil {
		t.Fatalf("create purchase: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/api/export/purchases.csv", nil)
	request.Header.Set("Cookie", authCookieName+"="+token)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("export request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if disposition := response.Header.Get("Content-Disposition"); !strings.Contains(disposition, "attachment") {
		t.Fatalf("expected attachment disposition, got %q", disposition)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "Castorama") {
		t.Fatal("expected purchase row in CSV export")
	}
}
