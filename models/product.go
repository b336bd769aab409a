package models

import (
	"github.com/google/uuid"
)

// Product is a catalog entry. Every invoice draft carries one quantity slot
// per product, in Position order. Changing a product's price only affects
// future snapshots; persisted line items keep the price frozen at write time.
type Product struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name     string    `gorm:"uniqueIndex;not null" json:"name"`
	Price    float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Position int       `gorm:"not null;default:0" json:"position"`
	IsActive bool      `gorm:"default:true" json:"isActive"`
}

// DefaultCatalog is seeded on first boot when the products table is empty.
func DefaultCatalog() []Product {
	return []Product{
		{ID: uuid.New(), Name: "Speaker", Price: 1200, Position: 0, IsActive: true},
		{ID: uuid.New(), Name: "Mouse", Price: 800, Position: 1, IsActive: true},
		{ID: uuid.New(), Name: "Keyboard", Price: 1450, Position: 2, IsActive: true},
	}
}
