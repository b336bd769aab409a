package services

import (
	"context"
	"os"
	"testing"
	"time"

	"invoicedesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func integrationDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		tb.Skip("set TEST_POSTGRES_DSN to run store integration tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to init test db: %v", err)
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		tb.Fatalf("create extension: %v", err)
	}
	if err := db.AutoMigrate(&models.Invoice{}, &models.LineItem{}, &models.ReconciliationLog{}); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

func integrationTx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func TestStoreRoundTrip(t *testing.T) {
	db := integrationDB(t)
	tx := integrationTx(t, db)
	ctx := context.Background()

	store := NewInvoiceStore(NewGormHeaderRepo(tx), NewGormItemRepo(tx))
	owner := uuid.New()
	inv, items := sampleInvoice(owner)

	id, err := store.Create(ctx, inv, items)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, gotItems, err := store.Get(ctx, owner, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TotalAmount != 2800 || got.CustomerName != "Jane Doe" {
		t.Fatalf("header round trip: %+v", got)
	}
	if len(gotItems) != 3 {
		t.Fatalf("items len = %d, want 3", len(gotItems))
	}

	listed, err := store.List(ctx, owner)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != id {
		t.Fatalf("List = %+v", listed)
	}

	// Replace the item set and verify the unit swap
	got.TotalAmount = 1200
	newItems := []models.LineItem{
		{ProductName: "Speaker", Quantity: 1, UnitPrice: 1200, Subtotal: 1200},
		{ProductName: "Mouse", Quantity: 0, UnitPrice: 800, Subtotal: 0},
		{ProductName: "Keyboard", Quantity: 0, UnitPrice: 1450, Subtotal: 0},
	}
	if err := store.Update(ctx, got, newItems); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got2, gotItems2, err := store.Get(ctx, owner, id)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got2.TotalAmount != 1200 || len(gotItems2) != 3 {
		t.Fatalf("update round trip: total=%v items=%d", got2.TotalAmount, len(gotItems2))
	}

	if err := store.Delete(ctx, id, inv.InvoiceNumber); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, _, err := store.Get(ctx, owner, id); err == nil {
		t.Fatal("Get succeeded after delete")
	}
}

func TestSweepFindsDanglingHeader(t *testing.T) {
	db := integrationDB(t)
	tx := integrationTx(t, db)
	ctx := context.Background()

	headers := NewGormHeaderRepo(tx)
	dangling := models.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-DANGLING",
		CustomerName:  "Jane Doe",
		IssuedDate:    time.Now().AddDate(0, 0, -3),
		OwnerUserID:   uuid.New(),
		TotalAmount:   2800,
	}
	// Header only, no items: the state a failed phase-2 create leaves behind
	if err := headers.Insert(ctx, &dangling); err != nil {
		t.Fatalf("insert header: %v", err)
	}

	NewReconcilerService(tx).SweepDanglingHeaders()

	var entry models.ReconciliationLog
	if err := tx.Where("invoice_id = ?", dangling.ID).First(&entry).Error; err != nil {
		t.Fatalf("no reconciliation log for dangling header: %v", err)
	}
	if entry.AgeDays != 3 {
		t.Fatalf("age = %d, want 3", entry.AgeDays)
	}

	// A second sweep must not duplicate the finding
	NewReconcilerService(tx).SweepDanglingHeaders()
	var count int64
	tx.Model(&models.ReconciliationLog{}).Where("invoice_id = ?", dangling.ID).Count(&count)
	if count != 1 {
		t.Fatalf("log count = %d, want 1", count)
	}
}
