package services

import (
	"log"
	"time"

	"invoicedesk-backend/models"
	"invoicedesk-backend/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReconcilerService sweeps for invoice headers with no line items. The
// two-phase write protocol can leave such a header behind when the item
// phase of a create fails, or when an update is abandoned between its item
// delete and re-insert. The sweeper only records what it finds; cleanup is
// a manual decision.
type ReconcilerService struct {
	db *gorm.DB
}

func NewReconcilerService(db *gorm.DB) *ReconcilerService {
	return &ReconcilerService{db: db}
}

func (s *ReconcilerService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SweepDanglingHeaders()
	})

	c.Start()
	log.Println("Reconciliation scheduler started")
}

// SweepDanglingHeaders finds headers whose business key has zero line items
// and logs each one once. Every successful write persists the full catalog
// item set, zero-quantity rows included, so an empty item set always means
// an interrupted write.
func (s *ReconcilerService) SweepDanglingHeaders() {
	log.Println("Starting dangling header sweep...")

	var headers []models.Invoice
	err := s.db.Raw(`
		SELECT i.* FROM invoices i
		LEFT JOIN line_items li ON li.invoice_number = i.invoice_number
		WHERE li.id IS NULL
	`).Scan(&headers).Error
	if err != nil {
		log.Printf("Failed to scan for dangling headers: %v", err)
		return
	}

	for _, inv := range headers {
		var existing int64
		s.db.Model(&models.ReconciliationLog{}).
			Where("invoice_id = ?", inv.ID).
			Count(&existing)
		if existing > 0 {
			continue
		}

		entry := models.ReconciliationLog{
			InvoiceID:     inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			OwnerUserID:   inv.OwnerUserID,
			Issue:         "header has no line items",
			AgeDays:       utils.DaysBetween(inv.IssuedDate, time.Now()),
			DetectedAt:    time.Now(),
		}
		if err := s.db.Create(&entry).Error; err != nil {
			log.Printf("Failed to log dangling header %s: %v", inv.InvoiceNumber, err)
			continue
		}
		log.Printf("Dangling header detected: invoice %s (%s)", inv.InvoiceNumber, inv.ID)
	}

	log.Println("Dangling header sweep completed")
}
