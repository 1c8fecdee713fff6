package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"renotrack/internal/models"
)

var (
	ErrInvalidPurchaseDate = errors.New("invalid purchase date")
	ErrMissingVendor       = errors.New("vendor is required")
	ErrMissingCategory     = errors.New("category is required")
)

type PurchaseRepository interface {
	ListByProperty(propertyID uint) ([]models.Purchase, error)
	ListRecentByProperty(propertyID uint, limit int) ([]models.Purchase, error)
	FindByIDForProperty(purchaseID uint, propertyID uint) (models.Purchase, error)
	Create(purchase *models.Purchase) error
	Save(purchase *models.Purchase) error
}

type PurchaseService struct {
	purchases PurchaseRepository
}

func NewPurchaseService(purchases PurchaseRepository) *PurchaseService {
	return &PurchaseService{purchases: purchases}
}

// PurchaseForm carries raw form input. Amount stays a string until
// ParseAmountCents validates it.
type PurchaseForm struct {
	Category    string
	Date        string
	Amount      string
	Vendor      string
	Description string
	Notes       string
}

func (service *PurchaseService) ListByProperty(propertyID uint) ([]models.Purchase, error) {
	return service.purchases.ListByProperty(propertyID)
}

func (service *PurchaseService) ListRecentByProperty(propertyID uint, limit int) ([]models.Purchase, error) {
	return service.purchases.ListRecentByProperty(propertyID, limit)
}

func (service *PurchaseService) FindByIDForProperty(purchaseID uint, propertyID uint) (models.Purchase, error) {
	return service.purchases.FindByIDForProperty(purchaseID, propertyID)
}

func (service *PurchaseService) CreateFromForm(propertyID uint, form PurchaseForm) (models.Purchase, error) {
	purchase := models.Purchase{PropertyID: propertyID}
	if err := applyPurchaseForm(&purchase, form); err != nil {
		return models.Purchase{}, err
	}
	if err := service.purchases.Create(&purchase); err != nil {
		return models.Purchase{}, fmt.Errorf("create purchase: %w", err)
	}
	return purchase, nil
}

func (service *PurchaseService) UpdateFromForm(purchase *models.Purchase, form PurchaseForm) error {
	if err := applyPurchaseForm(purchase, form); err != nil {
		return err
	}
	if err := service.purchases.Save(purchase); err != nil {
		return fmt.Errorf("save purchase: %w", err)
	}
	return nil
}

func applyPurchaseForm(purchase *models.Purchase, form PurchaseForm) error {
	form.Category = strings.TrimSpace(form.Category)
	form.Vendor = strings.TrimSpace(form.Vendor)
	if form.Category == "" {
		return ErrMissingCategory
	}
	if form.Vendor == "" {
		return ErrMissingVendor
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(form.Date))
	if err != nil {
		return ErrInvalidPurchaseDate
	}

	cents, err := models.ParseAmountCents(form.Amount)
	if err != nil {
		return err
	}

	purchase.Category = form.Category
	purchase.Date = date
	purchase.AmountCents = cents
	purchase.Vendor = form.Vendor
	purchase.Description = strings.TrimSpace(form.Description)
	purchase.Notes = strings.TrimSpace(form.Notes)
	return nil
}
