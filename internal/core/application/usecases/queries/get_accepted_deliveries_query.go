package queries

import (
	"errors"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/guard"
)

var ErrGetAcceptedDeliveriesQueryIsNotConstructed = errors.New(
	"GetAcceptedDeliveriesQuery must be created via NewGetAcceptedDeliveriesQuery constructor",
)

// GetAcceptedDeliveriesQuery retrieves the in-transit orders assigned to a
// courier. No distance filtering applies here: once accepted, a delivery
// stays on the courier's plate wherever they are.
type GetAcceptedDeliveriesQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAcceptedDeliveriesQuery creates a query for a courier's active deliveries.
func NewGetAcceptedDeliveriesQuery(courierID kernel.UUID) (GetAcceptedDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetAcceptedDeliveriesQuery{}, err
	}

	return GetAcceptedDeliveriesQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAcceptedDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAcceptedDeliveriesQueryIsNotConstructed)
}

// CourierID returns the id of the courier whose deliveries are listed.
func (q GetAcceptedDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetAcceptedDeliveriesQueryResponse is one active delivery: pickup and
// drop-off details plus the current minutes-away estimate, when one is set.
type GetAcceptedDeliveriesQueryResponse struct {
	OrderID           kernel.UUID
	RestaurantName    string
	RestaurantAddress string
	CustomerName      string
	CustomerAddress   *string
	TotalCost         string
	MinutesAway       *int
}
