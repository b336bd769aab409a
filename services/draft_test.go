package services

import (
	"errors"
	"testing"
	"time"

	"invoicedesk-backend/models"

	"github.com/google/uuid"
)

func testCatalog() []models.Product {
	return []models.Product{
		{ID: uuid.New(), Name: "Speaker", Price: 1200, Position: 0, IsActive: true},
		{ID: uuid.New(), Name: "Mouse", Price: 800, Position: 1, IsActive: true},
		{ID: uuid.New(), Name: "Keyboard", Price: 1450, Position: 2, IsActive: true},
	}
}

func validDraft() *Draft {
	d := NewDraft(testCatalog())
	d.InvoiceNumber = "INV-001"
	d.CustomerName = "Jane Doe"
	d.IssuedDate = "2024-01-01"
	return d
}

func TestNewDraftStartsAtZero(t *testing.T) {
	d := NewDraft(testCatalog())
	if len(d.Quantities) != 3 {
		t.Fatalf("quantities len = %d, want 3", len(d.Quantities))
	}
	for i, q := range d.Quantities {
		if q != 0 {
			t.Fatalf("quantity[%d] = %d, want 0", i, q)
		}
	}
	if d.Total() != 0 {
		t.Fatalf("fresh draft total = %v, want 0", d.Total())
	}
}

func TestValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*Draft)
		wantField string
	}{
		{"missing invoice number", func(d *Draft) { d.InvoiceNumber = "" }, "invoiceNumber"},
		{"blank invoice number", func(d *Draft) { d.InvoiceNumber = "   " }, "invoiceNumber"},
		{"missing customer name", func(d *Draft) { d.CustomerName = "" }, "customerName"},
		{"missing date", func(d *Draft) { d.IssuedDate = "" }, "issuedDate"},
		{"garbage date", func(d *Draft) { d.IssuedDate = "not-a-date" }, "issuedDate"},
		{"long invoice number", func(d *Draft) { d.InvoiceNumber = "INV-00000000000000000001" }, "invoiceNumber"},
		{"long customer name", func(d *Draft) { d.CustomerName = "An Extremely Long Customer Name" }, "customerName"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := validDraft()
			c.mutate(d)
			err := d.Validate()
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate = %v, want ValidationError", err)
			}
			if vErr.Field != c.wantField {
				t.Fatalf("field = %s, want %s", vErr.Field, c.wantField)
			}
		})
	}
}

func TestValidateQuantities(t *testing.T) {
	d := validDraft()
	d.Quantities[1] = -3
	err := d.Validate()
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Reason != ReasonNegativeQuantity {
		t.Fatalf("Validate = %v, want negative quantity error", err)
	}

	// All-zero quantities are valid; a zero-total invoice is not an error
	d = validDraft()
	if err := d.Validate(); err != nil {
		t.Fatalf("all-zero draft rejected: %v", err)
	}
}

func TestSnapshotComputesTotals(t *testing.T) {
	owner := uuid.New()
	d := validDraft()
	d.SetQuantity(0, "1")
	d.SetQuantity(1, "2")
	d.SetQuantity(2, "0")

	inv, items, err := d.Snapshot(owner)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if inv.TotalAmount != 2800 {
		t.Fatalf("total = %v, want 2800", inv.TotalAmount)
	}
	if inv.OwnerUserID != owner {
		t.Fatalf("owner = %v, want %v", inv.OwnerUserID, owner)
	}
	if !inv.IssuedDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("issued date = %v", inv.IssuedDate)
	}

	// The full catalog set is written, zero-quantity rows included
	if len(items) != 3 {
		t.Fatalf("items len = %d, want 3", len(items))
	}
	wantSubtotals := []float64{1200, 1600, 0}
	for i, item := range items {
		if item.Subtotal != wantSubtotals[i] {
			t.Fatalf("item %d subtotal = %v, want %v", i, item.Subtotal, wantSubtotals[i])
		}
		if item.InvoiceNumber != "INV-001" {
			t.Fatalf("item %d invoice number = %s", i, item.InvoiceNumber)
		}
	}
	if items[2].ProductName != "Keyboard" || items[2].Quantity != 0 {
		t.Fatalf("zero row missing: %+v", items[2])
	}
}

func TestSnapshotIsDecoupledFromLaterEdits(t *testing.T) {
	d := validDraft()
	d.SetQuantity(0, "1")

	_, items, err := d.Snapshot(uuid.New())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	d.SetQuantity(0, "9")
	if items[0].Quantity != 1 || items[0].Subtotal != 1200 {
		t.Fatalf("snapshot mutated by later edit: %+v", items[0])
	}
}

func TestEditRoundTrip(t *testing.T) {
	catalog := testCatalog()
	inv := models.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-042",
		CustomerName:  "Jane Doe",
		IssuedDate:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		TotalAmount:   4100,
	}
	stored := []models.LineItem{
		{InvoiceNumber: "INV-042", ProductName: "Speaker", Quantity: 1, UnitPrice: 1200, Subtotal: 1200},
		{InvoiceNumber: "INV-042", ProductName: "Keyboard", Quantity: 2, UnitPrice: 1450, Subtotal: 2900},
		// Mouse intentionally absent: must reload as quantity 0
	}

	d := DraftFromInvoice(inv, stored, catalog)
	if d.Quantities[0] != 1 || d.Quantities[1] != 0 || d.Quantities[2] != 2 {
		t.Fatalf("reconstructed quantities = %v", d.Quantities)
	}

	// Snapshot with no edits must reproduce the loaded subtotals exactly
	inv2, items, err := d.Snapshot(uuid.New())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	want := map[string]float64{"Speaker": 1200, "Mouse": 0, "Keyboard": 2900}
	for _, item := range items {
		if item.Subtotal != want[item.ProductName] {
			t.Fatalf("%s subtotal = %v, want %v", item.ProductName, item.Subtotal, want[item.ProductName])
		}
	}
	if inv2.TotalAmount != 4100 {
		t.Fatalf("round-trip total = %v, want 4100", inv2.TotalAmount)
	}
	if inv2.ID != inv.ID {
		t.Fatalf("round-trip lost invoice id")
	}
}

func TestRowsRecomputeOnEveryChange(t *testing.T) {
	d := validDraft()
	d.SetQuantity(1, "abc") // non-numeric input counts as 0
	rows := d.Rows()
	if rows[1].Quantity != 0 || rows[1].Subtotal != 0 {
		t.Fatalf("non-numeric quantity leaked: %+v", rows[1])
	}

	d.SetQuantity(1, "2")
	rows = d.Rows()
	if rows[1].Subtotal != 1600 {
		t.Fatalf("subtotal = %v, want 1600", rows[1].Subtotal)
	}
	if d.Total() != 1600 {
		t.Fatalf("total = %v, want 1600", d.Total())
	}
}
