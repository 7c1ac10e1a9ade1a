package ports

import (
	"context"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
// Payments are immutable once recorded, so there is no update method.
type PaymentRepository interface {
	// Add persists a new payment record to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByOrder retrieves the payment recorded for an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
