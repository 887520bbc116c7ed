package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartActionInput identifies a cart line and (for add/update) a quantity.
type CartActionInput struct {
	SessionID string  `json:"-"`
	ProductID int64   `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}

// Totals is the server-computed pricing breakdown of a cart.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// CartView is the cart as returned to clients: the lines plus the totals
// derived from them and the session's active discount.
type CartView struct {
	Lines  []*entity.CartLine `json:"lines"`
	Totals Totals             `json:"totals"`
}

// ApplyCouponOutput reports a successfully applied coupon.
type ApplyCouponOutput struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
}

// CartUsecase manages the session-scoped cart ledger and coupon state.
type CartUsecase interface {
	// GetCart returns the current cart with computed totals.
	GetCart(ctx context.Context, sessionID string) (*CartView, error)

	// Add validates the product and stock, then merges the line into the
	// cart (same product/size/color increments quantity).
	Add(ctx context.Context, input *CartActionInput) (*CartView, error)

	// Update overwrites a line's quantity after re-validating stock.
	// Quantity <= 0 removes the line; a missing line is a no-op.
	Update(ctx context.Context, input *CartActionInput) (*CartView, error)

	// Remove deletes all lines matching (product, size, color); no-op if absent.
	Remove(ctx context.Context, input *CartActionInput) (*CartView, error)

	// ApplyCoupon resolves the code case-insensitively and stores its flat
	// discount in the session, replacing any prior discount. A failed
	// lookup leaves a previously applied discount unchanged.
	ApplyCoupon(ctx context.Context, sessionID, code string) (*ApplyCouponOutput, error)
}
