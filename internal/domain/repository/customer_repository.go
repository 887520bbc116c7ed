package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrCustomerNotFound is returned when no customer matches the lookup.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines access to customer rows. Email carries a
// unique constraint; a concurrent duplicate insert surfaces as a conflict
// error from Create, never as a crash.
type CustomerRepository interface {
	// FindByEmail retrieves a customer by their unique email.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// Create inserts a new customer and backfills the generated ID.
	Create(ctx context.Context, customer *entity.Customer) error
}
