package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrCouponNotFound is returned when the code does not exist.
var ErrCouponNotFound = errors.New("coupon not found")

// CouponRepository defines read access to discount coupons. Codes carry a
// unique constraint and are stored upper-case.
type CouponRepository interface {
	// FindByCode retrieves a coupon by its exact (already normalized) code.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// Create inserts a new coupon (used by seeding).
	Create(ctx context.Context, coupon *entity.Coupon) error
}
