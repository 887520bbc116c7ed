// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog item available for sale. Stock is a decimal quantity
// because the catalog supports fractional units (e.g. goods sold by weight).
type Product struct {
	ID            int64           // Primary key of the product row.
	Name          string          // Display name, searched case-insensitively by the shop listing.
	BuyingPrice   decimal.Decimal // Acquisition cost, used for margin reporting only.
	SellingPrice  decimal.Decimal // Unit price charged at checkout.
	StockQuantity decimal.Decimal // Remaining stock; never negative after a committed checkout.
	Image         string          // Image reference for the storefront UI.
	Category      string          // Category used for exact-match filtering.
	Rating        float64         // Optional average rating.
	Description   string          // Optional long description.
}

// HasStockFor reports whether the product can cover the requested quantity.
func (p *Product) HasStockFor(quantity decimal.Decimal) bool {
	return p.StockQuantity.GreaterThanOrEqual(quantity)
}
