// Package service declares the domain-facing interfaces implemented by the
// infrastructure layer.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartStore persists per-session checkout state (cart lines, active coupon
// discount, anti-forgery token) keyed by an opaque session identifier.
// Concurrent requests from one session are not a supported scenario;
// last-writer-wins on Save is acceptable.
type CartStore interface {
	// Load returns the session state, or nil when the session is unknown.
	Load(ctx context.Context, sessionID string) (*entity.CheckoutSession, error)

	// Save persists the session state, refreshing its expiry.
	Save(ctx context.Context, sessionID string, session *entity.CheckoutSession) error

	// Delete drops the session state entirely.
	Delete(ctx context.Context, sessionID string) error

	// Close releases any resources held by the store.
	Close() error
}
