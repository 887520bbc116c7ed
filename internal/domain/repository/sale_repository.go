package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// SaleRepository creates sale and sale line rows during checkout.
type SaleRepository interface {
	// CreateSale inserts the sale header and backfills the generated ID.
	CreateSale(ctx context.Context, sale *entity.Sale) error

	// CreateSaleLine inserts one line item for an existing sale.
	CreateSaleLine(ctx context.Context, line *entity.SaleLine) error
}

// PaymentRepository records the payment of a sale.
type PaymentRepository interface {
	// CreatePayment inserts the payment row for a sale.
	CreatePayment(ctx context.Context, payment *entity.Payment) error
}
