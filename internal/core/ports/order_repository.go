// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the geocoding client.
// Adapters implement these interfaces, keeping the core free of storage and
// network concerns.
package ports

import (
	"context"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// its line items and rejection set. The write is guarded by the
	// status the aggregate was loaded at; zero rows affected means a
	// concurrent writer advanced the order and surfaces as a conflict.
	Update(ctx context.Context, aggregate *order.Order) error

	// AddRejection persists the aggregate's rejection set without
	// touching any other column. Rejection rows are insert-only and
	// idempotent, so a concurrent acceptance is never overwritten.
	AddRejection(ctx context.Context, aggregate *order.Order) error

	// UpdateMinutesAway persists only the minutes-away estimate, guarded
	// by the status and assigned courier the aggregate was loaded at.
	// Returns a conflict error when the order moved on in the meantime.
	UpdateMinutesAway(ctx context.Context, aggregate *order.Order) error

	// UpdateTransition persists a status transition guarded by the status
	// the caller observed. The write applies only if the stored order is
	// still in the from status (and, when the transition assigns a
	// courier, still has none). Returns a conflict error when another
	// writer got there first.
	UpdateTransition(ctx context.Context, aggregate *order.Order, from order.Status) error

	// Get retrieves an order aggregate by its unique identifier,
	// including line items and the set of couriers who declined it.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order aggregate and its line items from storage.
	// Only unplaced carts are ever deleted.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetCart retrieves the customer's unplaced order for a restaurant.
	// At most one such order exists per (customer, restaurant) pair;
	// returns an object-not-found error when the cart does not exist yet.
	GetCart(ctx context.Context, customerID, restaurantID kernel.UUID) (*order.Order, error)
}
