package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one committed checkout. It transitively owns its SaleLines and,
// logically, its Payment; exactly one Sale is created per successful checkout.
type Sale struct {
	ID          int64
	CustomerID  int64
	TotalAmount decimal.Decimal // Grand total including shipping and discount.
	CreatedAt   time.Time
	Lines       []*SaleLine
}

// SaleLine mirrors one cart line at the time of sale. PurchaseAmount is a
// point-in-time snapshot (unit price x quantity) independent of later price
// changes.
type SaleLine struct {
	ID             int64
	SaleID         int64
	ProductID      int64
	Quantity       decimal.Decimal
	PurchaseAmount decimal.Decimal
}

// Payment records the payment method for a sale. The method is a free-form
// identifier; no gateway processing happens here. Exactly one per sale.
type Payment struct {
	ID         int64
	SaleID     int64
	CustomerID int64
	Method     string
	Amount     decimal.Decimal // Always equals the owning sale's TotalAmount.
}
