package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func seedTestParams(t *testing.T, productFile string, productRepo repository.ProductRepository) seedParams {
	t.Helper()

	return seedParams{
		Ctx:         context.Background(),
		Config:      &config.Config{Seed: &config.SeedConfig{ProductFile: productFile}},
		Logger:      slog.Default(),
		ProductRepo: productRepo,
	}
}

func TestSeedProducts_SkipsExistingIDs(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	ctx := context.Background()

	file := writeCatalogFile(t, `[
		{"id": 1, "name": "Denim Jacket", "price": 45, "category": "jackets"},
		{"id": 2, "name": "Wool Scarf", "price": 15, "category": "accessories"}
	]`)

	// Product 1 is already in the catalog, product 2 is missing.
	productRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Product{ID: 1}, nil)
	productRepo.EXPECT().FindByID(ctx, int64(2)).Return(nil, repository.ErrProductNotFound)
	productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			assert.Equal(t, int64(2), product.ID)
			assert.Equal(t, "Wool Scarf", product.Name)
			assert.Equal(t, "15", product.SellingPrice.String())
			assert.Equal(t, "12", product.BuyingPrice.String())
			assert.Equal(t, "100", product.StockQuantity.String())
			return nil
		})

	require.NoError(t, seedProducts(seedTestParams(t, file, productRepo)))
}

func TestSeedProducts_InsertsAllIntoEmptyCatalog(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	ctx := context.Background()

	file := writeCatalogFile(t, `[
		{"id": 1, "name": "Denim Jacket", "price": 45, "stock": 7},
		{"id": 2, "name": "Wool Scarf", "price": 15}
	]`)

	productRepo.EXPECT().FindByID(ctx, mock.AnythingOfType("int64")).Return(nil, repository.ErrProductNotFound).Times(2)
	productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			if product.ID == 1 {
				assert.Equal(t, "7", product.StockQuantity.String())
			}
			return nil
		}).
		Times(2)

	require.NoError(t, seedProducts(seedTestParams(t, file, productRepo)))
}

func TestSeedProducts_MissingFileFails(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)

	err := seedProducts(seedTestParams(t, filepath.Join(t.TempDir(), "absent.json"), productRepo))
	require.Error(t, err)
}

func TestEnsureCoupons_CreatesMissingOnly(t *testing.T) {
	couponRepo := mockRepo.NewMockCouponRepository(t)
	ctx := context.Background()

	couponRepo.EXPECT().
		FindByCode(ctx, "SAVE10").
		Return(&entity.Coupon{ID: 1, Code: "SAVE10", Discount: decimal.NewFromInt(10)}, nil)
	couponRepo.EXPECT().FindByCode(ctx, "SAVE20").Return(nil, repository.ErrCouponNotFound)
	couponRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Coupon")).
		RunAndReturn(func(_ context.Context, coupon *entity.Coupon) error {
			assert.Equal(t, "SAVE20", coupon.Code)
			assert.Equal(t, "20", coupon.Discount.String())
			return nil
		})

	params := seedParams{
		Ctx:        ctx,
		Logger:     slog.Default(),
		CouponRepo: couponRepo,
	}
	require.NoError(t, ensureCoupons(params))
}
