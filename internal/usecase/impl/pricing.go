package impl

import (
	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
)

const fallbackShippingFee = 10

// pricingCalculator derives subtotal, shipping and total from cart lines
// and the session's flat discount. It is the single source of truth for
// totals: client-asserted figures are never consulted.
type pricingCalculator struct {
	shippingFee decimal.Decimal
}

func newPricingCalculator(cfg *config.Config) *pricingCalculator {
	fee := decimal.NewFromInt(fallbackShippingFee)
	if cfg != nil && cfg.Pricing != nil {
		fee = decimal.NewFromFloat(cfg.Pricing.ShippingFee)
	}

	return &pricingCalculator{shippingFee: fee}
}

// Compute sums the captured line prices, adds the flat shipping fee for a
// non-empty cart and subtracts the discount. The discount never drives the
// total negative.
func (p *pricingCalculator) Compute(lines []*entity.CartLine, discount decimal.Decimal) usecase.Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Mul(line.Quantity))
	}

	shipping := decimal.Zero
	if len(lines) > 0 {
		shipping = p.shippingFee
	}

	total := subtotal.Add(shipping).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return usecase.Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    total,
	}
}
