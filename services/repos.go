package services

import (
	"context"

	"invoicedesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gorm-backed implementations of the persistence collaborators. Each call is
// a single-table statement; the store layer above owns the cross-table
// ordering.

type gormCatalogRepo struct {
	db *gorm.DB
}

type gormHeaderRepo struct {
	db *gorm.DB
}

type gormItemRepo struct {
	db *gorm.DB
}

func NewGormCatalogRepo(db *gorm.DB) CatalogRepo {
	return &gormCatalogRepo{db: db}
}

func NewGormHeaderRepo(db *gorm.DB) HeaderRepo {
	return &gormHeaderRepo{db: db}
}

// Catalog returns the active products in display order. Draft rows and
// persisted line items both follow this order.
func (r *gormCatalogRepo) Catalog(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("position ASC").
		Find(&products).Error
	return products, err
}

func NewGormItemRepo(db *gorm.DB) ItemRepo {
	return &gormItemRepo{db: db}
}

func (r *gormHeaderRepo) Insert(ctx context.Context, inv *models.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *gormHeaderRepo) Update(ctx context.Context, inv *models.Invoice) error {
	// Map form so a zero total still overwrites. OwnerUserID is immutable
	// and never part of the update set.
	return r.db.WithContext(ctx).Model(&models.Invoice{}).
		Where("id = ?", inv.ID).
		Updates(map[string]interface{}{
			"invoice_number": inv.InvoiceNumber,
			"customer_name":  inv.CustomerName,
			"issued_date":    inv.IssuedDate,
			"total_amount":   inv.TotalAmount,
		}).Error
}

func (r *gormHeaderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Invoice{}).Error
}

func (r *gormHeaderRepo) ListByOwner(ctx context.Context, owner uuid.UUID) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Where("owner_user_id = ?", owner).
		Order("issued_date DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *gormHeaderRepo) GetByID(ctx context.Context, owner, id uuid.UUID) (models.Invoice, error) {
	var inv models.Invoice
	err := r.db.WithContext(ctx).
		Where("owner_user_id = ? AND id = ?", owner, id).
		First(&inv).Error
	return inv, err
}

func (r *gormItemRepo) InsertAll(ctx context.Context, items []models.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *gormItemRepo) DeleteByInvoiceNumber(ctx context.Context, invoiceNumber string) error {
	return r.db.WithContext(ctx).
		Where("invoice_number = ?", invoiceNumber).
		Delete(&models.LineItem{}).Error
}

func (r *gormItemRepo) ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]models.LineItem, error) {
	var items []models.LineItem
	err := r.db.WithContext(ctx).
		Where("invoice_number = ?", invoiceNumber).
		Find(&items).Error
	return items, err
}
