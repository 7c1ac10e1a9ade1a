// Package queries contains read-only operations in the CQRS architecture.
// Query handlers go straight to the database with raw SQL and map rows into
// response structs; they never load or mutate aggregates.
package queries

import (
	"errors"
	"strconv"
	"strings"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/services"
	"dinedash/internal/pkg/guard"
)

var ErrGetDeliveryQueueQueryIsNotConstructed = errors.New(
	"GetDeliveryQueueQuery must be created via NewGetDeliveryQueueQuery constructor",
)

// GetDeliveryQueueQuery retrieves the matching queue for a courier: orders
// ready for pickup, not yet assigned, never rejected by this courier, and
// with both delivery legs within the radius.
//
// The radius arrives as raw client text; anything that does not parse as a
// positive number falls back to the default rather than failing, so a
// malformed filter degrades to the stock queue.
type GetDeliveryQueueQuery struct {
	courierID kernel.UUID
	maxMiles  float64

	guard guard.ConstructorGuard
}

// NewGetDeliveryQueueQuery creates a queue query for the given courier.
func NewGetDeliveryQueueQuery(courierID kernel.UUID, rawMaxMiles string) (GetDeliveryQueueQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetDeliveryQueueQuery{}, err
	}

	return GetDeliveryQueueQuery{
		courierID: courierID,
		maxMiles:  parseMaxMiles(rawMaxMiles),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueueQueryIsNotConstructed)
}

// CourierID returns the id of the courier requesting the queue.
func (q GetDeliveryQueueQuery) CourierID() kernel.UUID {
	return q.courierID
}

// MaxMiles returns the effective matching radius.
func (q GetDeliveryQueueQuery) MaxMiles() float64 {
	return q.maxMiles
}

// GetDeliveryQueueQueryResponse is one queue entry: the order plus both
// delivery legs measured from the courier's stored coordinates.
type GetDeliveryQueueQueryResponse struct {
	OrderID         kernel.UUID
	RestaurantName  string
	TotalCost       string
	RestaurantMiles float64
	CustomerMiles   float64
}

func parseMaxMiles(raw string) float64 {
	miles, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || miles <= 0 {
		return services.DefaultMatchingRadiusMiles
	}

	return miles
}
