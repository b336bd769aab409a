package services

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DraftInput carries one round of form edits: header fields as typed plus
// the raw quantity column. Quantities arrive as strings straight from the
// form; parsing, including the non-numeric-counts-as-zero rule, happens in
// the draft.
type DraftInput struct {
	InvoiceNumber string   `json:"invoiceNumber"`
	CustomerName  string   `json:"customerName"`
	IssuedDate    string   `json:"issuedDate"`
	Quantities    []string `json:"quantities"`
}

// Workspace wires one ModeController per authenticated user to the catalog
// and the invoice store. All operations run under one lock: one logical
// actor per session, store phases strictly sequential.
type Workspace struct {
	catalog CatalogRepo
	store   *InvoiceStore

	mu       sync.Mutex
	sessions map[uuid.UUID]*ModeController
}

func NewWorkspace(db *gorm.DB) *Workspace {
	return NewWorkspaceWith(
		NewGormCatalogRepo(db),
		NewInvoiceStore(NewGormHeaderRepo(db), NewGormItemRepo(db)),
	)
}

func NewWorkspaceWith(catalog CatalogRepo, store *InvoiceStore) *Workspace {
	return &Workspace{
		catalog:  catalog,
		store:    store,
		sessions: make(map[uuid.UUID]*ModeController),
	}
}

// Store exposes the underlying invoice store for read paths (list, get).
func (w *Workspace) Store() *InvoiceStore { return w.store }

func (w *Workspace) controller(user uuid.UUID) *ModeController {
	if c, ok := w.sessions[user]; ok {
		return c
	}
	c := NewModeController()
	w.sessions[user] = c
	return c
}

// StartCreate enters create mode and returns the fresh draft.
func (w *Workspace) StartCreate(ctx context.Context, user uuid.UUID) (*Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	catalog, err := w.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	c := w.controller(user)
	if err := c.BeginCreate(catalog); err != nil {
		return nil, err
	}
	return c.Draft(), nil
}

// StartEdit loads the invoice with its items and enters edit mode.
func (w *Workspace) StartEdit(ctx context.Context, user, invoiceID uuid.UUID) (*Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	catalog, err := w.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	inv, items, err := w.store.Get(ctx, user, invoiceID)
	if err != nil {
		return nil, err
	}
	c := w.controller(user)
	if err := c.BeginEdit(inv, items, catalog); err != nil {
		return nil, err
	}
	return c.Draft(), nil
}

// StartDelete enters delete mode and immediately fires the store delete;
// selecting an invoice for deletion is the delete, with no confirmation
// step in between. On success the controller returns to Idle. On failure it
// stays in Deleting so the same call can be retried.
func (w *Workspace) StartDelete(ctx context.Context, user, invoiceID uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	inv, err := w.store.headers.GetByID(ctx, user, invoiceID)
	if err != nil {
		return err
	}
	c := w.controller(user)
	if err := c.BeginDelete(invoiceID); err != nil {
		return err
	}
	if err := w.store.Delete(ctx, inv.ID, inv.InvoiceNumber); err != nil {
		log.Printf("delete of invoice %s failed: %v", inv.InvoiceNumber, err)
		return err
	}
	c.Reset()
	return nil
}

// UpdateDraft applies one round of form edits to the open draft and returns
// it with all subtotals recomputed.
func (w *Workspace) UpdateDraft(user uuid.UUID, input DraftInput) (*Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c := w.controller(user)
	d := c.Draft()
	if d == nil {
		return nil, ErrNoDraft
	}
	d.InvoiceNumber = input.InvoiceNumber
	d.CustomerName = input.CustomerName
	d.IssuedDate = input.IssuedDate
	for i, raw := range input.Quantities {
		d.SetQuantity(i, raw)
	}
	return d, nil
}

// Panel reports the current mode and draft for rendering.
func (w *Workspace) Panel(user uuid.UUID) (Mode, *Draft) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c := w.controller(user)
	return c.Mode(), c.Draft()
}

// Submit validates the open draft, snapshots it, and runs the matching
// store operation. On success the controller resets to Idle and the draft
// is discarded. On a store failure the mode and draft are preserved so the
// user can retry; for a create whose header already landed, a blind retry
// can duplicate the header row.
func (w *Workspace) Submit(ctx context.Context, user uuid.UUID) (uuid.UUID, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c := w.controller(user)
	d := c.Draft()
	if d == nil {
		return uuid.Nil, ErrNoDraft
	}
	inv, items, err := d.Snapshot(user)
	if err != nil {
		return uuid.Nil, err
	}

	switch c.Mode() {
	case ModeCreating:
		id, err := w.store.Create(ctx, inv, items)
		if err != nil {
			log.Printf("create of invoice %s failed: %v", inv.InvoiceNumber, err)
			return uuid.Nil, err
		}
		c.Reset()
		return id, nil
	case ModeEditing:
		if err := w.store.Update(ctx, inv, items); err != nil {
			log.Printf("update of invoice %s failed: %v", inv.InvoiceNumber, err)
			return uuid.Nil, err
		}
		c.Reset()
		return inv.ID, nil
	default:
		return uuid.Nil, ErrNoDraft
	}
}

// Cancel returns the user's panel to Idle and discards any draft.
func (w *Workspace) Cancel(user uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.controller(user).Reset()
}
