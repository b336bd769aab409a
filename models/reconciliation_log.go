package models

import (
	"time"

	"github.com/google/uuid"
)

// ReconciliationLog records a header the sweeper found with no line items,
// typically left behind by a create whose item write failed after the header
// insert. Findings are surfaced only; repair is a manual decision.
type ReconciliationLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	InvoiceID     uuid.UUID `gorm:"type:uuid;index;not null" json:"invoiceId"`
	InvoiceNumber string    `gorm:"size:20;not null" json:"invoiceNumber"`
	OwnerUserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"ownerUserId"`
	Issue         string    `gorm:"not null" json:"issue"`
	AgeDays       int       `gorm:"not null;default:0" json:"ageDays"`
	DetectedAt    time.Time `gorm:"not null" json:"detectedAt"`
}
