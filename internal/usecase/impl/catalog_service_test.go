package impl

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{
		Config:      &config.Config{},
		ProductRepo: productRepo,
		Logger:      slog.Default(),
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestCatalogService_ListProducts_DefaultsPageToOne(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, &repository.ProductQuery{Page: 1, PageSize: 12}).
		Return([]*entity.Product{}, nil)

	output, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Page: -3})
	require.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 12, output.PageSize)
	assert.Empty(t, output.Products)
}

func TestCatalogService_ListProducts_PassesFilters(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	minPrice := 10.0
	maxPrice := 50.0
	products := []*entity.Product{{ID: 1, Name: "Sneaker"}}

	fx.productRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(query *repository.ProductQuery) bool {
			return query.Category == "shoes" &&
				query.Search == "sneak" &&
				query.Sort == repository.SortPriceAsc &&
				query.Page == 2 &&
				query.MinPrice != nil && query.MinPrice.String() == "10" &&
				query.MaxPrice != nil && query.MaxPrice.String() == "50"
		})).
		Return(products, nil)

	output, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{
		Category: "shoes",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Search:   "sneak",
		Sort:     "price-asc",
		Page:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, products, output.Products)
}

func TestCatalogService_ListProducts_NegativeMinPrice(t *testing.T) {
	fx := createTestCatalogService(t)

	minPrice := -1.0
	_, err := fx.service.ListProducts(context.Background(), &usecase.ListProductsInput{
		MinPrice: &minPrice,
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrInvalidPriceRange.Error())
}

func TestCatalogService_ListProducts_MaxBelowMin(t *testing.T) {
	fx := createTestCatalogService(t)

	minPrice := 50.0
	maxPrice := 10.0
	_, err := fx.service.ListProducts(context.Background(), &usecase.ListProductsInput{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrInvalidPriceRange.Error())
}

func TestCatalogService_ListProducts_UnknownSort(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.ListProducts(context.Background(), &usecase.ListProductsInput{
		Sort: "rating-desc",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrValidationFailed.Error())
}

func TestCatalogService_FeaturedProducts(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	featured := []*entity.Product{{ID: 1}, {ID: 2}}
	recent := []*entity.Product{{ID: 9}, {ID: 8}}

	fx.productRepo.EXPECT().FindFeatured(ctx, 8).Return(featured, nil)
	fx.productRepo.EXPECT().FindRecent(ctx, 8).Return(recent, nil)

	output, err := fx.service.FeaturedProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, featured, output.Featured)
	assert.Equal(t, recent, output.Recent)
}
