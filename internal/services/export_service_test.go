package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"renotrack/internal/models"
)

type stubPurchaseReader struct {
	purchases []models.Purchase
}

func (reader *stubPurchaseReader) ListByProperty(propertyID uint) ([]models.Purchase, error) {
	return reader.purchases, nil
}

func (reader *stubPurchaseReader) ListByPropertySince(propertyID uint, from time.Time) ([]models.Purchase, error) {
	return reader.purchases, nil
}

func exportFixture() *stubPurchaseReader {
	return &stubPurchaseReader{purchases: []models.Purchase{
		{
			Category:    "paint",
			Date:        time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
			AmountCents: 12550,
			Vendor:      "Castorama",
			Description: "wall paint",
		},
		{
			Category:    "electrical",
			Date:        time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC),
			AmountCents: 4399,
			Vendor:      "OBI",
			Description: "sockets",
			Notes:       "for kitchen circuit",
		},
	}}
}

type stubSessionExportReader struct {
	sessions []models.WorkSession
}

func (reader *stubSessionExportReader) ListByProperty(propertyID uint) ([]models.WorkSession, error) {
	return reader.sessions, nil
}

func sessionExportFixture() *stubSessionExportReader {
	end := 14 * 60
	return &stubSessionExportReader{sessions: []models.WorkSession{
		{
			Date:        time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
			StartMinute: 9 * 60,
			EndMinute:   &end,
			Rooms:       []models.Room{{RoomType: "kitchen", ShortName: "Kuchnia"}},
		},
		{
			Date:        time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
			StartMinute: 18 * 60,
		},
	}}
}

func TestPurchasesCSV(t *testing.T) {
	service := NewExportService(exportFixture(), sessionExportFixture())

	data, err := service.PurchasesCSV(1, map[string]string{"paint": "Farby"})
	if err != nil {
		t.Fatalf("PurchasesCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header plus 2 rows", len(records))
	}
	if records[1][1] != "Farby" {
		t.Errorf("category = %q, want localized label", records[1][1])
	}
	if records[1][4] != "125.50" {
		t.Errorf("amount = %q, want 125.50", records[1][4])
	}
	if records[2][1] != "electrical" {
		t.Errorf("unlabeled category = %q, want raw value", records[2][1])
	}
}

func TestPurchasesJSON(t *testing.T) {
	service := NewExportService(exportFixture(), sessionExportFixture())

	data, err := service.PurchasesJSON(1, nil)
	if err != nil {
		t.Fatalf("PurchasesJSON: %v", err)
	}

	var rows []map[string]string
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["vendor"] != "Castorama" || rows[0]["date"] != "2026-04-02" {
		t.Errorf("rows[0] = %v", rows[0])
	}
}

func TestSessionsCSV(t *testing.T) {
	service := NewExportService(exportFixture(), sessionExportFixture())

	data, err := service.SessionsCSV(1)
	if err != nil {
		t.Fatalf("SessionsCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header plus 2 rows", len(records))
	}
	if records[1][1] != "09:00" || records[1][2] != "14:00" {
		t.Errorf("times = %q / %q", records[1][1], records[1][2])
	}
	if records[1][3] != "5.00" {
		t.Errorf("hours = %q, want 5.00", records[1][3])
	}
	if records[1][4] != "Kuchnia" {
		t.Errorf("rooms = %q, want short name", records[1][4])
	}
	if records[2][2] != "" || records[2][3] != "0.00" {
		t.Errorf("open session row = %v, want empty end and zero hours", records[2])
	}
}

func TestPurchasesXLSXProducesWorkbook(t *testing.T) {
	service := NewExportService(exportFixture(), sessionExportFixture())

	data, err := service.PurchasesXLSX(1, nil)
	if err != nil {
		t.Fatalf("PurchasesXLSX: %v", err)
	}
	// XLSX files are zip archives.
	if len(data) < 4 || data[0] != 'P' || data[1] != 'K' {
		t.Error("output does not look like an xlsx workbook")
	}
}
