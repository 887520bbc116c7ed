package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// CreateSale inserts the sale header row and writes the generated id back.
func (repo *saleRepository) CreateSale(ctx context.Context, sale *entity.Sale) error {
	saleM := &model.SaleModel{
		CustomerID:  sale.CustomerID,
		TotalAmount: sale.TotalAmount,
		CreatedAt:   sale.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "sale references unknown customer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	sale.ID = saleM.SaleID

	return nil
}

// CreateSaleLine inserts one line of a sale.
func (repo *saleRepository) CreateSaleLine(ctx context.Context, line *entity.SaleLine) error {
	lineM := &model.SaleDetailModel{
		SaleID:         line.SaleID,
		ProductID:      line.ProductID,
		Quantity:       line.Quantity,
		PurchaseAmount: line.PurchaseAmount,
	}

	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "sale line references unknown sale or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale line")
	}

	line.ID = lineM.ID

	return nil
}

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// CreatePayment inserts the payment row for a sale.
func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := &model.PaymentModel{
		SaleID:        payment.SaleID,
		CustomerID:    payment.CustomerID,
		PaymentMethod: payment.Method,
		Amount:        payment.Amount,
	}

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "payment references unknown sale or customer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID

	return nil
}
