package entity

import (
	"github.com/shopspring/decimal"
)

// CartLine is one entry of a session cart. Its identity for merge purposes
// is the composite (ProductID, Size, Color); adding the same composite key
// again increases the quantity instead of duplicating the line.
type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"` // Selling price snapshot taken when the line was added.
	Image     string          `json:"image"`
	Quantity  decimal.Decimal `json:"quantity"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
}

// Matches reports whether the line has the given composite identity.
func (l *CartLine) Matches(productID int64, size, color string) bool {
	return l.ProductID == productID && l.Size == size && l.Color == color
}

// CheckoutSession is the per-session mutable state carried between requests:
// the cart lines, the active coupon discount and the anti-forgery token.
// It is persisted behind the service.CartStore interface, never shared
// between sessions.
type CheckoutSession struct {
	Lines     []*CartLine     `json:"lines"`
	Discount  decimal.Decimal `json:"discount"`
	CSRFToken string          `json:"csrf_token"`
}

// NewCheckoutSession returns an empty session bound to the given token.
func NewCheckoutSession(csrfToken string) *CheckoutSession {
	return &CheckoutSession{
		Lines:     []*CartLine{},
		Discount:  decimal.Zero,
		CSRFToken: csrfToken,
	}
}

// FindLine returns the line with the given composite identity, or nil.
func (s *CheckoutSession) FindLine(productID int64, size, color string) *CartLine {
	for _, line := range s.Lines {
		if line.Matches(productID, size, color) {
			return line
		}
	}

	return nil
}

// RemoveLine deletes every line with the given composite identity.
// Removing an absent line is a no-op.
func (s *CheckoutSession) RemoveLine(productID int64, size, color string) {
	kept := s.Lines[:0]
	for _, line := range s.Lines {
		if !line.Matches(productID, size, color) {
			kept = append(kept, line)
		}
	}
	s.Lines = kept
}

// Clear drops the cart lines and any active discount. The anti-forgery
// token survives so the session stays usable after checkout.
func (s *CheckoutSession) Clear() {
	s.Lines = []*CartLine{}
	s.Discount = decimal.Zero
}
