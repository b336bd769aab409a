package services

import (
	"strings"
	"time"

	"invoicedesk-backend/models"

	"github.com/google/uuid"
)

const (
	maxFieldLen = 20
	dateLayout  = "2006-01-02"
)

// Draft is the in-memory invoice being created or edited. Header fields hold
// whatever the user has typed so far; quantities are aligned to the catalog
// slice frozen when the draft was opened. Nothing here is persisted until
// Snapshot freezes a payload for the store.
type Draft struct {
	InvoiceID     uuid.UUID // zero while creating
	InvoiceNumber string
	CustomerName  string
	IssuedDate    string // as typed, yyyy-mm-dd

	Catalog    []models.Product
	Quantities []int
}

// DraftRow is one rendered line of the draft: the catalog product with its
// current quantity and recomputed subtotal.
type DraftRow struct {
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// NewDraft opens a create draft: empty header, every catalog quantity at 0.
func NewDraft(catalog []models.Product) *Draft {
	return &Draft{
		Catalog:    catalog,
		Quantities: make([]int, len(catalog)),
	}
}

// DraftFromInvoice opens an edit draft. Header fields load verbatim;
// quantities are reconstructed from the stored items matched by product
// name, and any catalog product without a stored item defaults to 0.
func DraftFromInvoice(inv models.Invoice, items []models.LineItem, catalog []models.Product) *Draft {
	d := &Draft{
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerName:  inv.CustomerName,
		IssuedDate:    inv.IssuedDate.Format(dateLayout),
		Catalog:       catalog,
		Quantities:    make([]int, len(catalog)),
	}
	byName := make(map[string]int, len(items))
	for _, item := range items {
		byName[item.ProductName] = item.Quantity
	}
	for i, p := range catalog {
		d.Quantities[i] = byName[p.Name]
	}
	return d
}

// SetQuantity updates one quantity slot from raw form input. Out-of-range
// rows are ignored.
func (d *Draft) SetQuantity(index int, raw string) {
	if index < 0 || index >= len(d.Quantities) {
		return
	}
	d.Quantities[index] = ParseQuantity(raw)
}

// Rows recomputes every subtotal from the current quantities. Called on
// every change so the rendered numbers can never drift from the inputs.
func (d *Draft) Rows() []DraftRow {
	rows := make([]DraftRow, len(d.Catalog))
	for i, p := range d.Catalog {
		rows[i] = DraftRow{
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    d.Quantities[i],
			Subtotal:    Subtotal(d.Quantities[i], p.Price),
		}
	}
	return rows
}

// Total is the running grand total of the draft.
func (d *Draft) Total() float64 {
	var total float64
	for i, p := range d.Catalog {
		total += Subtotal(d.Quantities[i], p.Price)
	}
	return total
}

// Validate gates submission. Required header fields must be present and
// within the 20-char cap, the date must parse, and no quantity may be
// negative. An all-zero invoice is valid; zero total is not an error.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.InvoiceNumber) == "" {
		return &ValidationError{Field: "invoiceNumber", Reason: ReasonMissingField}
	}
	if len(d.InvoiceNumber) > maxFieldLen {
		return &ValidationError{Field: "invoiceNumber", Reason: ReasonFieldTooLong}
	}
	if strings.TrimSpace(d.CustomerName) == "" {
		return &ValidationError{Field: "customerName", Reason: ReasonMissingField}
	}
	if len(d.CustomerName) > maxFieldLen {
		return &ValidationError{Field: "customerName", Reason: ReasonFieldTooLong}
	}
	if strings.TrimSpace(d.IssuedDate) == "" {
		return &ValidationError{Field: "issuedDate", Reason: ReasonMissingField}
	}
	if _, err := time.Parse(dateLayout, d.IssuedDate); err != nil {
		return &ValidationError{Field: "issuedDate", Reason: ReasonMissingField}
	}
	for _, q := range d.Quantities {
		if q < 0 {
			return &ValidationError{Field: "quantity", Reason: ReasonNegativeQuantity}
		}
	}
	return nil
}

// Snapshot freezes the draft into the payload the store will persist: one
// line item per catalog product with name and price copied at this instant
// (zero-quantity rows included), and the header total recomputed from those
// exact rows. Later edits to the draft or the catalog cannot reach the
// returned payload.
func (d *Draft) Snapshot(ownerUserID uuid.UUID) (models.Invoice, []models.LineItem, error) {
	if err := d.Validate(); err != nil {
		return models.Invoice{}, nil, err
	}
	issued, err := time.Parse(dateLayout, d.IssuedDate)
	if err != nil {
		return models.Invoice{}, nil, &ValidationError{Field: "issuedDate", Reason: ReasonMissingField}
	}

	items := make([]models.LineItem, len(d.Catalog))
	for i, p := range d.Catalog {
		items[i] = models.LineItem{
			InvoiceNumber: d.InvoiceNumber,
			ProductName:   p.Name,
			Quantity:      d.Quantities[i],
			UnitPrice:     p.Price,
			Subtotal:      Subtotal(d.Quantities[i], p.Price),
		}
	}

	inv := models.Invoice{
		ID:            d.InvoiceID,
		InvoiceNumber: d.InvoiceNumber,
		CustomerName:  d.CustomerName,
		IssuedDate:    issued,
		OwnerUserID:   ownerUserID,
		TotalAmount:   Total(items),
	}
	return inv, items, nil
}
