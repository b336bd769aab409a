package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice is the header row. TotalAmount is derived from the line item
// subtotals at snapshot time and must never be written from a stale render.
// InvoiceNumber is the user-supplied business key; line items hang off it,
// not off the generated ID, and this layer does not enforce its uniqueness.
type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	InvoiceNumber string    `gorm:"size:20;index;not null" json:"invoiceNumber"`
	CustomerName  string    `gorm:"size:20;not null" json:"customerName"`
	IssuedDate    time.Time `gorm:"not null" json:"issuedDate"`
	OwnerUserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"ownerUserId"`
	TotalAmount   float64   `gorm:"type:decimal(10,2);not null" json:"totalAmount"`

	// Managed by the store's two-phase protocol, not by gorm association
	// writes; the business key is deliberately not unique, so no FK exists.
	Items []LineItem `gorm:"-" json:"items,omitempty"`
}

// LineItem freezes one catalog product against an invoice: name and price are
// copied at snapshot time, Subtotal is Quantity×UnitPrice. The full item set
// of an invoice is replaced as a unit; rows have no identity beyond
// (invoice number, product name).
type LineItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	InvoiceNumber string    `gorm:"size:20;index;not null" json:"invoiceNumber"`
	ProductName   string    `gorm:"not null" json:"productName"`
	Quantity      int       `gorm:"not null;default:0" json:"quantity"`
	UnitPrice     float64   `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Subtotal      float64   `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}
