package services

import (
	"testing"

	"invoicedesk-backend/models"
)

func TestSubtotal(t *testing.T) {
	cases := []struct {
		quantity  int
		unitPrice float64
		want      float64
	}{
		{0, 1200, 0},
		{1, 1200, 1200},
		{2, 800, 1600},
		{3, 1450, 4350},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := Subtotal(c.quantity, c.unitPrice); got != c.want {
			t.Errorf("Subtotal(%d, %v) = %v, want %v", c.quantity, c.unitPrice, got, c.want)
		}
	}
}

func TestTotal(t *testing.T) {
	items := []models.LineItem{
		{ProductName: "Speaker", Quantity: 1, UnitPrice: 1200, Subtotal: 1200},
		{ProductName: "Mouse", Quantity: 2, UnitPrice: 800, Subtotal: 1600},
		{ProductName: "Keyboard", Quantity: 0, UnitPrice: 1450, Subtotal: 0},
	}
	if got := Total(items); got != 2800 {
		t.Fatalf("Total = %v, want 2800", got)
	}

	if got := Total(nil); got != 0 {
		t.Fatalf("Total(nil) = %v, want 0", got)
	}

	zero := []models.LineItem{
		{ProductName: "Speaker", Subtotal: 0},
		{ProductName: "Mouse", Subtotal: 0},
	}
	if got := Total(zero); got != 0 {
		t.Fatalf("Total(zero vector) = %v, want 0", got)
	}
}

func TestTotalMatchesRecomputedSubtotals(t *testing.T) {
	quantities := []int{4, 0, 7, 1}
	prices := []float64{1200, 800, 1450, 99.5}

	var items []models.LineItem
	var want float64
	for i := range quantities {
		items = append(items, models.LineItem{
			Quantity:  quantities[i],
			UnitPrice: prices[i],
			Subtotal:  Subtotal(quantities[i], prices[i]),
		})
		want += float64(quantities[i]) * prices[i]
	}
	if got := Total(items); got != want {
		t.Fatalf("Total = %v, want %v", got, want)
	}

	// Determinism: a second pass over unchanged inputs yields the same result
	if got := Total(items); got != want {
		t.Fatalf("second Total = %v, want %v", got, want)
	}
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"  ", 0},
		{"abc", 0},
		{"1.5", 0},
		{"3", 3},
		{" 12 ", 12},
		{"-2", -2},
		{"0", 0},
	}
	for _, c := range cases {
		if got := ParseQuantity(c.raw); got != c.want {
			t.Errorf("ParseQuantity(%q) = %d, want %d", c.raw, got, c.want)
		}
	}
}
