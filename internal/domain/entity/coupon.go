package entity

import (
	"github.com/shopspring/decimal"
)

// Coupon maps a unique code to a flat discount amount. Codes are stored
// upper-case and resolved case-insensitively.
type Coupon struct {
	ID       int64
	Code     string
	Discount decimal.Decimal
}
