package service

import (
	"context"
	"time"
)

// OrderPlacedLine summarizes one sale line inside an order event.
type OrderPlacedLine struct {
	ProductID int64  `json:"product_id"`
	Quantity  string `json:"quantity"`
	Amount    string `json:"amount"`
}

// OrderPlacedEvent is published after a checkout transaction commits.
// Amounts are decimal strings to survive brokers without float drift.
type OrderPlacedEvent struct {
	RequestID   string            `json:"request_id,omitempty"` // For distributed tracing
	SaleID      int64             `json:"sale_id"`
	CustomerID  int64             `json:"customer_id"`
	Email       string            `json:"email"`
	TotalAmount string            `json:"total_amount"`
	Lines       []OrderPlacedLine `json:"lines"`
	PlacedAt    time.Time         `json:"placed_at"`
}

// EventPublisher defines the interface for publishing order events to a
// message broker. Publishing is best-effort: a failure must never fail the
// checkout that already committed.
type EventPublisher interface {
	// PublishOrderPlaced publishes an order-placed event for async consumers.
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
