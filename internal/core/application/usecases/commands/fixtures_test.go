package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
	"dinedash/internal/core/domain/model/payment"
)

func newTestCard(t *testing.T) payment.Card {
	t.Helper()
	card, err := payment.NewCard(
		payment.MethodCreditCard, "Pat Doe", nil, "4111111111111111", 12, 2030, "123",
	)
	require.NoError(t, err)
	return card
}

func newUnplacedOrder(t *testing.T, customerID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID)
	require.NoError(t, err)
	return aggregate
}

// restoreOrder rebuilds an order in an arbitrary lifecycle state for handler
// tests, defaulting the frozen total and timestamps to whatever the status
// requires.
func restoreOrder(
	t *testing.T,
	customerID, restaurantID kernel.UUID,
	status order.Status,
	items []order.Item,
	courierID *kernel.UUID,
	rejectedBy []kernel.UUID,
) *order.Order {
	t.Helper()

	var totalCost *decimal.Decimal
	var placedAt *time.Time
	if status != order.Unplaced {
		total := decimal.NewFromFloat(20.00)
		now := time.Now().UTC()
		totalCost = &total
		placedAt = &now
	}

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, restaurantID,
		status, items, totalCost, placedAt, nil, courierID, rejectedBy, nil,
	)
	require.NoError(t, err)
	return aggregate
}

func newLine(t *testing.T, menuItemID kernel.UUID, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(menuItemID, quantity)
	require.NoError(t, err)
	return item
}
