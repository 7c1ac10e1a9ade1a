package order

import (
	"fmt"

	"dinedash/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a strict
// forward-only state machine:
//
//	Unplaced ──> Placed ──> ReadyForPickup ──> InTransit ──> Delivered
//
// No state is ever skipped and no backward transition exists. Delivered is
// terminal. Transition methods return the next status or a conflict error,
// so callers can distinguish stale-state retries from other failures.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Unplaced is the initial status: the order is still a cart being
	// assembled by the customer. Line items may only change in this state.
	Unplaced

	// Placed means the customer checked out: the total is frozen and a
	// payment record exists. The restaurant is preparing the order.
	Placed

	// ReadyForPickup means the restaurant finished preparation and the
	// order is visible in the courier matching queue.
	ReadyForPickup

	// InTransit means a courier accepted the delivery exclusively.
	InTransit

	// Delivered is the terminal state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Unplaced:       "Unplaced",
		Placed:         "Placed",
		ReadyForPickup: "ReadyForPickup",
		InTransit:      "InTransit",
		Delivered:      "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unplaced:       "Unplaced",
		Placed:         "Placed",
		ReadyForPickup: "ReadyForPickup",
		InTransit:      "InTransit",
		Delivered:      "Delivered",
	}
}

// Validate checks that the Status value is one of the defined lifecycle
// states. Used when reconstructing orders from storage.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Place transitions Unplaced -> Placed. Any other current state conflicts.
func (s Status) Place() (Status, error) {
	if s != Unplaced {
		return 0, errs.NewConflictErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to place", s),
		)
	}
	return Placed, nil
}

// MarkReady transitions Placed -> ReadyForPickup.
func (s Status) MarkReady() (Status, error) {
	if s != Placed {
		return 0, errs.NewConflictErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to mark ready", s),
		)
	}
	return ReadyForPickup, nil
}

// Accept transitions ReadyForPickup -> InTransit. The caller must also
// verify the order is unassigned; the status machine only knows states.
func (s Status) Accept() (Status, error) {
	if s != ReadyForPickup {
		return 0, errs.NewConflictErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to accept", s),
		)
	}
	return InTransit, nil
}

// Deliver transitions InTransit -> Delivered. Delivered is terminal, so a
// repeated delivery attempt conflicts rather than overwriting timestamps.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewConflictErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to deliver", s),
		)
	}
	return Delivered, nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment when reconstructing from storage. Only InTransit and
// Delivered orders carry a courier.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != InTransit && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}

	if !courier && (s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}

	return nil
}
