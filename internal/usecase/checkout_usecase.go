package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// ContactInfo is one billing or shipping contact block. Address2 is the
// only optional field for billing; shipping additionally tolerates empty
// email and mobile.
type ContactInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	Country   string `json:"country"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

// CheckoutInput is the checkout submission. Totals are never accepted from
// the client; they are recomputed from the session cart and discount.
type CheckoutInput struct {
	SessionID     string       `json:"-"`
	Billing       ContactInfo  `json:"billing"`
	Shipping      *ContactInfo `json:"shipping,omitempty"`
	PaymentMethod string       `json:"payment_method"`
}

// CheckoutOutput reports a committed order.
type CheckoutOutput struct {
	SaleID int64           `json:"sale_id"`
	Total  decimal.Decimal `json:"total"`
}

// CheckoutUsecase is the order committer: it validates the submission,
// resolves or creates the customer, re-validates stock against the live
// catalog, persists sale, lines, stock decrements and payment atomically,
// and clears the session state on success.
type CheckoutUsecase interface {
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)
}
