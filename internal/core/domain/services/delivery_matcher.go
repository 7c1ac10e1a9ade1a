package services

import (
	"sort"

	"dinedash/internal/core/domain/model/kernel"
)

// DefaultMatchingRadiusMiles is the matching radius applied when the caller
// supplies no bound or an invalid one.
const DefaultMatchingRadiusMiles = 5.0

// Candidate is an order eligible for matching: its identity plus the two
// resolved endpoints of the delivery. Callers must only submit candidates
// whose coordinates are set; unresolved locations are a precondition
// violation, not something the matcher recovers from.
type Candidate struct {
	OrderID    kernel.UUID
	Restaurant kernel.GeoPoint
	Customer   kernel.GeoPoint
}

// Match is a candidate annotated with both legs measured from the
// courier's stored coordinates.
type Match struct {
	OrderID         kernel.UUID
	RestaurantMiles float64
	CustomerMiles   float64
}

// TotalMiles returns the combined length of both legs, used for queue
// ordering.
func (m Match) TotalMiles() float64 {
	return m.RestaurantMiles + m.CustomerMiles
}

// DeliveryMatcher builds the unassigned queue for a courier.
//
// Rules:
//   - each candidate is annotated with courier-to-restaurant and
//     courier-to-customer distances
//   - a candidate is included only when BOTH legs are within maxMiles
//   - results are sorted by ascending combined distance, ties broken by
//     order id, so the queue order is deterministic rather than an
//     accident of storage iteration
//
// Exclusion of orders the courier already rejected happens upstream at the
// storage query; the matcher only sees eligible candidates.
type DeliveryMatcher struct{}

// NewDeliveryMatcher creates a DeliveryMatcher.
func NewDeliveryMatcher() DeliveryMatcher {
	return DeliveryMatcher{}
}

// Match filters and annotates candidates for a courier located at courier.
// A non-positive maxMiles falls back to DefaultMatchingRadiusMiles.
func (DeliveryMatcher) Match(
	courier kernel.GeoPoint, candidates []Candidate, maxMiles float64,
) ([]Match, error) {
	if err := courier.Validate(); err != nil {
		return nil, err
	}

	if maxMiles <= 0 {
		maxMiles = DefaultMatchingRadiusMiles
	}

	matches := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		restaurantMiles, err := courier.DistanceMilesTo(candidate.Restaurant)
		if err != nil {
			return nil, err
		}

		customerMiles, err := courier.DistanceMilesTo(candidate.Customer)
		if err != nil {
			return nil, err
		}

		if restaurantMiles > maxMiles || customerMiles > maxMiles {
			continue
		}

		matches = append(matches, Match{
			OrderID:         candidate.OrderID,
			RestaurantMiles: restaurantMiles,
			CustomerMiles:   customerMiles,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].TotalMiles() != matches[j].TotalMiles() {
			return matches[i].TotalMiles() < matches[j].TotalMiles()
		}
		return matches[i].OrderID.String() < matches[j].OrderID.String()
	})

	return matches, nil
}
