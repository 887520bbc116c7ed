// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogServiceParams holds the dependencies of the catalog service.
type CatalogServiceParams struct {
	fx.In

	Config      *config.Config
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

type catalogService struct {
	productRepo   repository.ProductRepository
	pageSize      int
	featuredCount int
	logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	pageSize := 12
	featuredCount := 8
	if params.Config != nil && params.Config.Catalog != nil {
		if params.Config.Catalog.PageSize > 0 {
			pageSize = params.Config.Catalog.PageSize
		}
		if params.Config.Catalog.FeaturedCount > 0 {
			featuredCount = params.Config.Catalog.FeaturedCount
		}
	}

	return &catalogService{
		productRepo:   params.ProductRepo,
		pageSize:      pageSize,
		featuredCount: featuredCount,
		logger:        params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns one page of products with the requested filters applied.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	query, err := srv.buildQuery(input)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.List(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ListProductsOutput{
		Products: products,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

// FeaturedProducts returns the landing page product strips.
func (srv *catalogService) FeaturedProducts(ctx context.Context) (*usecase.FeaturedProductsOutput, error) {
	featured, err := srv.productRepo.FindFeatured(ctx, srv.featuredCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find featured products")
	}

	recent, err := srv.productRepo.FindRecent(ctx, srv.featuredCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent products")
	}

	return &usecase.FeaturedProductsOutput{
		Featured: featured,
		Recent:   recent,
	}, nil
}

// buildQuery validates the filters and converts them to a repository query.
func (srv *catalogService) buildQuery(input *usecase.ListProductsInput) (*repository.ProductQuery, error) {
	query := &repository.ProductQuery{
		Category: input.Category,
		Search:   input.Search,
		PageSize: srv.pageSize,
	}

	query.Page = input.Page
	if query.Page < 1 {
		query.Page = 1
	}

	if input.MinPrice != nil {
		minPrice := decimal.NewFromFloat(*input.MinPrice)
		if minPrice.IsNegative() {
			return nil, domainerrors.ErrInvalidPriceRange.WithDetails("minimum price must not be negative")
		}
		query.MinPrice = &minPrice
	}
	if input.MaxPrice != nil {
		maxPrice := decimal.NewFromFloat(*input.MaxPrice)
		if query.MinPrice != nil && maxPrice.LessThan(*query.MinPrice) {
			return nil, domainerrors.ErrInvalidPriceRange.WithDetails("maximum price must not be below minimum price")
		}
		query.MaxPrice = &maxPrice
	}

	switch repository.ProductSort(input.Sort) {
	case repository.SortUnsorted, repository.SortNameAsc, repository.SortPriceAsc, repository.SortPriceDesc:
		query.Sort = repository.ProductSort(input.Sort)
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown sort key: " + input.Sort)
	}

	return query, nil
}
