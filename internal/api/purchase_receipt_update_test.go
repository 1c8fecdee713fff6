package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"renotrack/internal/models"
)

func multipartFormRequest(t *testing.T, target string, fields map[string]string, fileField string, fileName string, fileContents []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write form field %q: %v", key, err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(fileContents); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, target, &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	return request
}

func TestUpdatePurchaseKeepsOldReceiptWhenValidationFails(t *testing.T) {
	app, database, uploadsDir := newTestAppWithUploads(t)
	user := createTestUser(t, database, "paragony@example.com", "StrongPass1")
	createTestProperty(t, database, user.ID, "Dom")
	token := loginTestUser(t, app, user.Email, "StrongPass1")

	createRequest := multipartFormRequest(t, "/purchases", map[string]string{
		"category":    "paint",
		"date":        "2026-08-12",
		"amount":      "125,50",
		"vendor":      "Castorama",
		"description": "Farba do salonu",
	}, "receipt", "paragon.jpg", []byte("first receipt"))
	createRequest.Header.Set("Cookie", authCookieName+"="+token)

	createResponse, err := app.Test(createRequest, -1)
	if err != nil {
		t.Fatalf("create purchase request failed: %v", err)
	}
	defer createResponse.Body.Close()
	if createResponse.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", createResponse.StatusCode)
	}

	var purchase models.Purchase
	if err := database.First(&purchase).Error; err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	if purchase.ReceiptPath == "" {
		t.Fatal("expected stored receipt path")
	}
	originalFile := filepath.Join(uploadsDir, filepath.FromSlash(purchase.ReceiptPath))
	if _, err := os.Stat(originalFile); err != nil {
		t.Fatalf("expected receipt file on disk: %v", err)
	}

	updateRequest := multipartFormRequest(t, "/purchases/"+itoa(purchase.ID), map[string]string{
		"category":    "paint",
		"date":        "2026-08-13",
		"amount":      "not-a-number",
		"vendor":      "Castorama",
		"description": "Farba do salonu",
	}, "receipt", "nowy.jpg", []byte("replacement receipt"))
	updateRequest.Header.Set("Cookie", authCookieName+"="+token)

	updateResponse, err := app.Test(updateRequest, -1)
	if err != nil {
		t.Fatalf("update purchase request failed: %v", err)
	}
	defer updateResponse.Body.Close()
	if updateResponse.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", updateResponse.StatusCode)
	}
	if responseCookieValue(updateResponse.Cookies(), flashCookieName) == "" {
		t.Fatal("expected flash cookie with validation error")
	}

	var reloaded models.Purchase
	if err := database.First(&reloaded, purchase.ID).Error; err != nil {
		t.Fatalf("reload purchase: %v", err)
	}
	if reloaded.ReceiptPath != purchase.ReceiptPath {
		t.Fatalf("receipt path changed to %q after failed update", reloaded.ReceiptPath)
	}
	if _, err := os.Stat(originalFile); err != nil {
		t.Fatalf("old receipt file must survive a failed update: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(uploadsDir, "receipts"))
	if err != nil {
		t.Fatalf("read receipts dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d receipt files, want only the original", len(entries))
	}
}

func TestUpdatePurchaseReplacesReceiptOnSuccess(t *testing.T) {
	app, database, uploadsDir := newTestAppWithUploads(t)
	user := createTestUser(t, database, "wymiana@example.com", "StrongPass1")
	createTestProperty(t, database, user.ID, "Dom")
	token := loginTestUser(t, app, user.Email, "StrongPass1")

	createRequest := multipartFormRequest(t, "/purchases", map[string]string{
		"category":    "paint",
		"date":        "2026-08-12",
		"amount":      "125,50",
		"vendor":      "Castorama",
		"description": "Farba",
	}, "receipt", "paragon.jpg", []byte("first receipt"))
	createRequest.Header.Set("Cookie", authCookieName+"="+token)

	createResponse, err := app.Test(createRequest, -1)
	if err != nil {
		t.Fatalf("create purchase request failed: %v", err)
	}
	defer createResponse.Body.Close()

	var purchase models.Purchase
	if err := database.First(&purchase).Error; err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	originalPath := purchase.ReceiptPath

	updateRequest := multipartFormRequest(t, "/purchases/"+itoa(purchase.ID), map[string]string{
		"category":    "paint",
		"date":        "2026-08-13",
		"amount":      "99,99",
		"vendor":      "OBI",
		"description": "Farba",
	}, "receipt", "nowy.jpg", []byte("replacement receipt"))
	updateRequest.Header.Set("Cookie", authCookieName+"="+token)

	updateResponse, err := app.Test(updateRequest, -1)
	if err != nil {
		t.Fatalf("update purchase request failed: %v", err)
	}
	defer updateResponse.Body.Close()
	if updateResponse.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", updateResponse.StatusCode)
	}

	var reloaded models.Purchase
	if err := database.First(&reloaded, purchase.ID).Error; err != nil {
		t.Fatalf("reload purchase: %v", err)
	}
	if reloaded.ReceiptPath == originalPath {
		t.Fatal("expected the receipt path to change after a successful update")
	}
	if _, err := os.Stat(filepath.Join(uploadsDir, filepath.FromSlash(originalPath))); !os.IsNotExist(err) {
		t.Fatalf("old receipt file should be removed after a successful update, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(uploadsDir, filepath.FromSlash(reloaded.ReceiptPath))); err != nil {
		t.Fatalf("expected new receipt file on disk: %v", err)
	}
}
