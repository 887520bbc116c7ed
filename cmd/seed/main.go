// Command seed migrates the shop schema and loads the initial catalog and
// coupon data. Safe to run repeatedly: rows that already exist are skipped
// one by one, so a partially seeded catalog is completed rather than ignored.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const defaultProductFile = "products.json"

// buyingPriceRatio approximates the wholesale cost from the selling price
// for seeded rows.
var buyingPriceRatio = decimal.NewFromFloat(0.8)

var seedCoupons = []entity.Coupon{
	{Code: "SAVE10", Discount: decimal.NewFromInt(10)},
	{Code: "SAVE20", Discount: decimal.NewFromInt(20)},
}

type seedParams struct {
	fx.In
	fx.Shutdowner

	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	DB          *gorm.DB
	ProductRepo repository.ProductRepository
	CouponRepo  repository.CouponRepository
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewProductRepository,
			postgres.NewCouponRepository,
		),
		fx.Invoke(runSeed),
	).Run()
}

func runSeed(params seedParams) error {
	logger := params.Logger

	if err := postgres.Migrate(params.DB); err != nil {
		return err
	}
	logger.Info("Schema migrated")

	if err := seedProducts(params); err != nil {
		return err
	}
	if err := ensureCoupons(params); err != nil {
		return err
	}

	return params.Shutdown()
}

// seedProduct is one entry of the catalog file.
type seedProduct struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Stock       float64 `json:"stock"`
}

func seedProducts(params seedParams) error {
	logger := params.Logger

	productFile := defaultProductFile
	if params.Config.Seed != nil && params.Config.Seed.ProductFile != "" {
		productFile = params.Config.Seed.ProductFile
	}

	raw, err := os.ReadFile(productFile)
	if err != nil {
		return errors.Wrapf(err, "failed to read product file %s", productFile)
	}

	var products []seedProduct
	if err := json.Unmarshal(raw, &products); err != nil {
		return errors.Wrap(err, "failed to decode product file")
	}

	seeded := 0
	for _, p := range products {
		if p.ID > 0 {
			_, err := params.ProductRepo.FindByID(params.Ctx, p.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrProductNotFound) {
				return err
			}
		}

		sellingPrice := decimal.NewFromFloat(p.Price)
		stock := decimal.NewFromInt(100)
		if p.Stock > 0 {
			stock = decimal.NewFromFloat(p.Stock)
		}

		product := &entity.Product{
			ID:            p.ID,
			Name:          p.Name,
			BuyingPrice:   sellingPrice.Mul(buyingPriceRatio),
			SellingPrice:  sellingPrice,
			StockQuantity: stock,
			Image:         p.Image,
			Category:      p.Category,
			Rating:        p.Rating,
			Description:   p.Description,
		}
		if err := params.ProductRepo.Create(params.Ctx, product); err != nil {
			return err
		}
		seeded++
	}

	logger.Info("Catalog seeded",
		slog.Int("products", seeded),
		slog.Int("skipped", len(products)-seeded),
	)

	return nil
}

func ensureCoupons(params seedParams) error {
	logger := params.Logger

	for _, coupon := range seedCoupons {
		_, err := params.CouponRepo.FindByCode(params.Ctx, coupon.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrCouponNotFound) {
			return err
		}

		created := coupon
		if err := params.CouponRepo.Create(params.Ctx, &created); err != nil {
			return err
		}
		logger.Info("Coupon seeded", slog.String("code", coupon.Code))
	}

	return nil
}
