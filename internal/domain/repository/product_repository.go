// Package repository defines the persistence contracts the use case layer
// depends on, keeping the domain free of database driver details.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductSort enumerates the supported shop listing sort keys.
type ProductSort string

const (
	SortUnsorted  ProductSort = ""           // insertion order
	SortNameAsc   ProductSort = "name-asc"   // product name ascending
	SortPriceAsc  ProductSort = "price-asc"  // selling price ascending
	SortPriceDesc ProductSort = "price-desc" // selling price descending
)

// ProductQuery carries the shop listing filters. Nil price bounds mean
// unbounded; Page is 1-based and PageSize is fixed by the caller.
type ProductQuery struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
	Sort     ProductSort
	Page     int
	PageSize int
}

// ProductRepository defines read and stock-mutation access to the catalog.
type ProductRepository interface {
	// List returns one page of products matching the query. An
	// out-of-range page yields an empty slice, not an error.
	List(ctx context.Context, query *ProductQuery) ([]*entity.Product, error)

	// FindByID retrieves a single product.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindByIDForUpdate retrieves a product with a row-level lock so
	// concurrent checkouts of the same product serialize. Only meaningful
	// inside a transaction.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)

	// DecrementStock subtracts quantity from the product's stock.
	DecrementStock(ctx context.Context, id int64, quantity decimal.Decimal) error

	// FindFeatured returns the first products in insertion order.
	FindFeatured(ctx context.Context, limit int) ([]*entity.Product, error)

	// FindRecent returns the newest products by descending id.
	FindRecent(ctx context.Context, limit int) ([]*entity.Product, error)

	// Create inserts a new product (used by seeding).
	Create(ctx context.Context, product *entity.Product) error
}
