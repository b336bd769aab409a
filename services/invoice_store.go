package services

import (
	"context"

	"invoicedesk-backend/models"

	"github.com/google/uuid"
)

// CatalogRepo supplies the product list a draft is opened against.
type CatalogRepo interface {
	Catalog(ctx context.Context) ([]models.Product, error)
}

// HeaderRepo is the row-level persistence collaborator for invoice headers.
type HeaderRepo interface {
	Insert(ctx context.Context, inv *models.Invoice) error
	Update(ctx context.Context, inv *models.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]models.Invoice, error)
	GetByID(ctx context.Context, owner, id uuid.UUID) (models.Invoice, error)
}

// ItemRepo is the row-level persistence collaborator for line items, keyed
// by the invoice's business key rather than the generated header id.
type ItemRepo interface {
	InsertAll(ctx context.Context, items []models.LineItem) error
	DeleteByInvoiceNumber(ctx context.Context, invoiceNumber string) error
	ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]models.LineItem, error)
}

// InvoiceStore runs the two-phase write protocol over the header and item
// repos. The backing store offers no cross-table transaction, so each
// operation fixes an explicit phase order and a defined failure posture
// instead of pretending to be atomic:
//
//   - create: header insert, then item insert. A phase-2 failure leaves the
//     header standing with zero items until reconciled.
//   - update: header overwrite, then delete-all + insert-all of the items.
//     A reader between the delete and the insert sees zero items; that
//     window is the documented cost of the replace-as-a-unit design.
//   - delete: items first, header second, never the reverse.
type InvoiceStore struct {
	headers HeaderRepo
	items   ItemRepo
}

func NewInvoiceStore(headers HeaderRepo, items ItemRepo) *InvoiceStore {
	return &InvoiceStore{headers: headers, items: items}
}

// Create inserts the header, then the full item set tagged with the
// invoice's business key. A header failure aborts before any item is
// written. An item failure is surfaced as ItemWriteError with the header
// left in place; a blind retry of the whole create will insert a second
// header row under the same invoice number.
func (s *InvoiceStore) Create(ctx context.Context, inv models.Invoice, items []models.LineItem) (uuid.UUID, error) {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	if err := s.headers.Insert(ctx, &inv); err != nil {
		return uuid.Nil, &HeaderWriteError{Op: "create", Err: err}
	}
	for i := range items {
		items[i].InvoiceNumber = inv.InvoiceNumber
	}
	if err := s.items.InsertAll(ctx, items); err != nil {
		return inv.ID, &ItemWriteError{Op: "create", Err: err}
	}
	return inv.ID, nil
}

// Update overwrites the header fields and total by id, then replaces the
// item set as a unit under the business key. Phase 2 never starts before
// phase 1 has succeeded.
func (s *InvoiceStore) Update(ctx context.Context, inv models.Invoice, items []models.LineItem) error {
	if err := s.headers.Update(ctx, &inv); err != nil {
		return &HeaderWriteError{Op: "update", Err: err}
	}
	if err := s.items.DeleteByInvoiceNumber(ctx, inv.InvoiceNumber); err != nil {
		return &ItemWriteError{Op: "update", Err: err}
	}
	for i := range items {
		items[i].InvoiceNumber = inv.InvoiceNumber
	}
	if err := s.items.InsertAll(ctx, items); err != nil {
		return &ItemWriteError{Op: "update", Err: err}
	}
	return nil
}

// Delete removes the line items first and only then the header. If the item
// delete fails the header stays untouched for a manual retry; an invoice is
// never left pointing at a vanished item set.
func (s *InvoiceStore) Delete(ctx context.Context, id uuid.UUID, invoiceNumber string) error {
	if err := s.items.DeleteByInvoiceNumber(ctx, invoiceNumber); err != nil {
		return &ItemWriteError{Op: "delete", Err: err}
	}
	if err := s.headers.Delete(ctx, id); err != nil {
		return &HeaderWriteError{Op: "delete", Err: err}
	}
	return nil
}

// List returns the owner's headers sorted by issued date descending. The
// ordering is stable so page windows over the result stay correct.
func (s *InvoiceStore) List(ctx context.Context, owner uuid.UUID) ([]models.Invoice, error) {
	return s.headers.ListByOwner(ctx, owner)
}

// Get loads one header with its full item set for edit mode.
func (s *InvoiceStore) Get(ctx context.Context, owner, id uuid.UUID) (models.Invoice, []models.LineItem, error) {
	inv, err := s.headers.GetByID(ctx, owner, id)
	if err != nil {
		return models.Invoice{}, nil, err
	}
	items, err := s.items.ListByInvoiceNumber(ctx, inv.InvoiceNumber)
	if err != nil {
		return models.Invoice{}, nil, err
	}
	return inv, items, nil
}
