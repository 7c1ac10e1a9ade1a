// Package paymentrepo persists payment records. A payment is written once
// at checkout and never updated; the unique order id index enforces
// one payment per order at the storage level.
package paymentrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/payment"
)

// PaymentDTO represents the database structure for payment records.
type PaymentDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	AmountPaid      decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	Method          string          `gorm:"not null"`
	CardholderName  string          `gorm:"not null"`
	BillingAddress  *string
	CardNumber      string `gorm:"not null"`
	ExpirationMonth int    `gorm:"not null"`
	ExpirationYear  int    `gorm:"not null"`
	CVV             string `gorm:"not null"`
}

// TableName specifies the database table name for payments.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	card := aggregate.Card()

	return PaymentDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         aggregate.OrderID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		AmountPaid:      aggregate.AmountPaid(),
		Method:          card.Method().String(),
		CardholderName:  card.CardholderName(),
		BillingAddress:  card.BillingAddress(),
		CardNumber:      card.Number(),
		ExpirationMonth: card.ExpirationMonth(),
		ExpirationYear:  card.ExpirationYear(),
		CVV:             card.CVV(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	method, err := payment.ParseMethod(dto.Method)
	if err != nil {
		return nil, err
	}

	card, err := payment.NewCard(
		method, dto.CardholderName, dto.BillingAddress,
		dto.CardNumber, dto.ExpirationMonth, dto.ExpirationYear, dto.CVV,
	)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, orderID, customerID, dto.AmountPaid, card)
}
