package services

import (
	"strconv"
	"strings"

	"invoicedesk-backend/models"
)

// Subtotal returns quantity × unitPrice for one line.
func Subtotal(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}

// Total sums the stored subtotals of an item set. The zero-length and
// all-zero cases both yield 0.
func Total(items []models.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}

// ParseQuantity converts raw form input into a quantity. Empty or
// non-numeric input counts as 0 so a half-typed field can never push NaN
// or garbage into a persisted total. Negative numbers parse as-is and are
// rejected later by draft validation.
func ParseQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
