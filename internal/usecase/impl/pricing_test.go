package impl

import (
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(price float64, quantity float64) *entity.CartLine {
	return &entity.CartLine{
		Price:    decimal.NewFromFloat(price),
		Quantity: decimal.NewFromFloat(quantity),
	}
}

func TestPricingCalculator_Compute(t *testing.T) {
	calc := newPricingCalculator(nil)

	tests := []struct {
		name     string
		lines    []*entity.CartLine
		discount decimal.Decimal
		subtotal string
		shipping string
		total    string
	}{
		{
			name:     "empty cart has no shipping",
			lines:    nil,
			discount: decimal.Zero,
			subtotal: "0",
			shipping: "0",
			total:    "0",
		},
		{
			name:     "single line adds flat shipping",
			lines:    []*entity.CartLine{line(25.5, 2)},
			discount: decimal.Zero,
			subtotal: "51",
			shipping: "10",
			total:    "61",
		},
		{
			name:     "discount reduces the total",
			lines:    []*entity.CartLine{line(40, 1)},
			discount: decimal.NewFromInt(20),
			subtotal: "40",
			shipping: "10",
			total:    "30",
		},
		{
			name:     "oversized discount floors the total at zero",
			lines:    []*entity.CartLine{line(5, 1)},
			discount: decimal.NewFromInt(100),
			subtotal: "5",
			shipping: "10",
			total:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := calc.Compute(tt.lines, tt.discount)

			assert.Equal(t, tt.subtotal, totals.Subtotal.String())
			assert.Equal(t, tt.shipping, totals.Shipping.String())
			assert.Equal(t, tt.total, totals.Total.String())
			assert.Equal(t, tt.discount.String(), totals.Discount.String())
		})
	}
}

func TestPricingCalculator_ConfiguredShippingFee(t *testing.T) {
	cfg := &config.Config{
		Pricing: &config.PricingConfig{ShippingFee: 25},
	}
	calc := newPricingCalculator(cfg)

	totals := calc.Compute([]*entity.CartLine{line(10, 1)}, decimal.Zero)

	assert.Equal(t, "25", totals.Shipping.String())
	assert.Equal(t, "35", totals.Total.String())
}
