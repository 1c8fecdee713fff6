package services

import (
	"errors"
	"testing"
	"time"

	"renotrack/internal/models"
)

type stubPurchaseRepository struct {
	created []models.Purchase
	saved   []models.Purchase
}

func (repo *stubPurchaseRepository) ListByProperty(propertyID uint) ([]models.Purchase, error) {
	return nil, nil
}

func (repo *stubPurchaseRepository) ListRecentByProperty(propertyID uint, limit int) ([]models.Purchase, error) {
	return nil, nil
}

func (repo *stubPurchaseRepository) FindByIDForProperty(purchaseID uint, propertyID uint) (models.Purchase, error) {
	return models.Purchase{}, errors.New("not found")
}

func (repo *stubPurchaseRepository) Create(purchase *models.Purchase) error {
	repo.created = append(repo.created, *purchase)
	return nil
}

func (repo *stubPurchaseRepository) Save(purchase *models.Purchase) error {
	repo.saved = append(repo.saved, *purchase)
	return nil
}

func TestCreateFromFormParsesAmountAndDate(t *testing.T) {
	repo := &stubPurchaseRepository{}
	service := NewPurchaseService(repo)

	purchase, err := service.CreateFromForm(4, PurchaseForm{
		Category:    "paint",
		Date:        "2026-05-02",
		Amount:      "125,50",
		Vendor:      " Castorama ",
		Description: "wall paint",
	})
	if err != nil {
		t.Fatalf("CreateFromForm: %v", err)
	}
	if purchase.AmountCents != 12550 {
		t.Errorf("AmountCents = %d, want 12550", purchase.AmountCents)
	}
	if purchase.Vendor != "Castorama" {
		t.Errorf("Vendor = %q, want trimmed value", purchase.Vendor)
	}
	if !purchase.Date.Equal(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v", purchase.Date)
	}
	if len(repo.created) != 1 {
		t.Error("purchase was not stored")
	}
}

func TestCreateFromFormValidation(t *testing.T) {
	service := NewPurchaseService(&stubPurchaseRepository{})

	cases := []struct {
		name string
		form PurchaseForm
		want error
	}{
		{"missing category", PurchaseForm{Date: "2026-05-02", Amount: "10", Vendor: "OBI"}, ErrMissingCategory},
		{"missing vendor", PurchaseForm{Category: "paint", Date: "2026-05-02", Amount: "10"}, ErrMissingVendor},
		{"bad date", PurchaseForm{Category: "paint", Date: "02.05.2026", Amount: "10", Vendor: "OBI"}, ErrInvalidPurchaseDate},
		{"zero amount", PurchaseForm{Category: "paint", Date: "2026-05-02", Amount: "0", Vendor: "OBI"}, models.ErrInvalidAmount},
		{"garbage amount", PurchaseForm{Category: "paint", Date: "2026-05-02", Amount: "dużo", Vendor: "OBI"}, models.ErrInvalidAmount},
	}
	for _, testCase := range cases {
		if _, err := service.CreateFromForm(4, testCase.form); !errors.Is(err, testCase.want) {
			t.Errorf("%s: err = %v, want %v", testCase.name, err, testCase.want)
		}
	}
}
