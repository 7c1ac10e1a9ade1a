package payment

import (
	"errors"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPaymentIsNotConstructed is returned when validating a Payment that was
// not created via NewPayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment is the one-to-one record attached to a placed order. The amount
// is a snapshot of the order's total at the moment of placement and is
// never derived again. Card details are stored, not charged; there is no
// payment gateway integration.
type Payment struct {
	id         kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	amountPaid decimal.Decimal
	card       Card

	isConstructed bool
}

// NewPayment creates a payment record for a placed order. The amount must
// not be negative and the card must be a validated Card value.
func NewPayment(id, orderID, customerID kernel.UUID, amountPaid decimal.Decimal, card Card) (*Payment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), customerID.Validate(), card.Validate()); err != nil {
		return nil, err
	}

	if amountPaid.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount paid",
			errors.New("amount cannot be negative"))
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		customerID:    customerID,
		amountPaid:    amountPaid,
		card:          card,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a payment record from persistence.
func RestorePayment(id, orderID, customerID kernel.UUID, amountPaid decimal.Decimal, card Card) (*Payment, error) {
	return NewPayment(id, orderID, customerID, amountPaid, card)
}

// Validate ensures the Payment was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the paid order's identifier.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// CustomerID returns the paying customer's identifier.
func (p *Payment) CustomerID() kernel.UUID {
	return p.customerID
}

// AmountPaid returns the charged amount, equal to the order's frozen total.
func (p *Payment) AmountPaid() decimal.Decimal {
	return p.amountPaid
}

// Card returns the stored payment instrument details.
func (p *Payment) Card() Card {
	return p.card
}
