// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// List returns one page of products matching the query. Filtering, sorting
// and pagination all happen in the database; an out-of-range page simply
// yields no rows.
func (repo *productRepository) List(ctx context.Context, query *repository.ProductQuery) ([]*entity.Product, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}
	if query.MinPrice != nil {
		tx = tx.Where("selling_price >= ?", query.MinPrice)
	}
	if query.MaxPrice != nil {
		tx = tx.Where("selling_price <= ?", query.MaxPrice)
	}
	if query.Search != "" {
		tx = tx.Where("product_name ILIKE ?", "%"+query.Search+"%")
	}

	switch query.Sort {
	case repository.SortNameAsc:
		tx = tx.Order("product_name ASC")
	case repository.SortPriceAsc:
		tx = tx.Order("selling_price ASC")
	case repository.SortPriceDesc:
		tx = tx.Order("selling_price DESC")
	case repository.SortUnsorted:
		tx = tx.Order("product_id ASC")
	}

	pageSize := query.PageSize
	if pageSize > 0 {
		page := query.Page
		if page < 1 {
			page = 1
		}
		tx = tx.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	var productModels []*model.ProductModel
	if err := tx.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainSlice(productModels), nil
}

// FindByID retrieves a single product.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	return repo.findByID(ctx, repo.db, id)
}

// FindByIDForUpdate retrieves a product with a FOR UPDATE row lock so two
// concurrent checkouts of the same product serialize their stock checks.
func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	locked := repo.db.Clauses(clause.Locking{Strength: "UPDATE"})

	return repo.findByID(ctx, locked, id)
}

func (repo *productRepository) findByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := db.WithContext(ctx).
		Where("product_id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// DecrementStock subtracts quantity from the product's stock. The WHERE
// guard keeps stock from ever going negative even if a caller skipped the
// locked re-validation.
func (repo *productRepository) DecrementStock(ctx context.Context, id int64, quantity decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("product_id = ? AND stock_quantity >= ?", id, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInsufficientStock
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInsufficientStock
	}

	return nil
}

// FindFeatured returns the first products in insertion order.
func (repo *productRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("product_id ASC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find featured products")
	}

	return toProductDomainSlice(productModels), nil
}

// FindRecent returns the newest products by descending id.
func (repo *productRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("product_id DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent products")
	}

	return toProductDomainSlice(productModels), nil
}

// Create inserts a new product (used by seeding).
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ProductID

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ProductID,
		Name:          data.ProductName,
		BuyingPrice:   data.BuyingPrice,
		SellingPrice:  data.SellingPrice,
		StockQuantity: data.StockQuantity,
		Image:         data.Image,
		Category:      data.Category,
		Rating:        data.Rating,
		Description:   data.Description,
	}
}

func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ProductID:     data.ID,
		ProductName:   data.Name,
		BuyingPrice:   data.BuyingPrice,
		SellingPrice:  data.SellingPrice,
		StockQuantity: data.StockQuantity,
		Image:         data.Image,
		Category:      data.Category,
		Rating:        data.Rating,
		Description:   data.Description,
	}
}
