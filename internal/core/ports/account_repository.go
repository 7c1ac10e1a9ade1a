package ports

import (
	"context"

	"dinedash/internal/core/domain/model/account"
	"dinedash/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer profiles.
type CustomerRepository interface {
	// Add persists a new customer profile to storage.
	Add(ctx context.Context, aggregate *account.Customer) error

	// Update persists changes to an existing customer profile.
	Update(ctx context.Context, aggregate *account.Customer) error

	// Get retrieves a customer profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Customer, error)
}

// CourierRepository defines the persistence contract for courier profiles.
type CourierRepository interface {
	// Add persists a new courier profile to storage.
	Add(ctx context.Context, aggregate *account.Courier) error

	// Update persists changes to an existing courier profile.
	Update(ctx context.Context, aggregate *account.Courier) error

	// Get retrieves a courier profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Courier, error)
}
