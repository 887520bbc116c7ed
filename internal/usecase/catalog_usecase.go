// Package usecase defines the application's use case interfaces and their
// input/output DTOs.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ListProductsInput carries the shop listing filters as parsed from the
// request. Nil price bounds mean unbounded.
type ListProductsInput struct {
	Category string   `json:"category"`
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
	Search   string   `json:"search"`
	Sort     string   `json:"sort"` // "name-asc", "price-asc", "price-desc" or empty
	Page     int      `json:"page"` // 1-based; values < 1 are treated as 1
}

// ListProductsOutput is one page of the shop listing.
type ListProductsOutput struct {
	Products []*entity.Product `json:"products"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// FeaturedProductsOutput carries the landing page product strips.
type FeaturedProductsOutput struct {
	Featured []*entity.Product `json:"featured"`
	Recent   []*entity.Product `json:"recent"`
}

// CatalogUsecase defines read-only catalog browsing.
type CatalogUsecase interface {
	// ListProducts returns one page of products with filter/sort applied.
	// An invalid price range (min < 0 or max < min) is a validation error;
	// an out-of-range page returns an empty page.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)

	// FeaturedProducts returns the featured and most recent products.
	FeaturedProducts(ctx context.Context) (*FeaturedProductsOutput, error)
}
