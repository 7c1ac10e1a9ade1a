package order

import (
	"errors"
	"fmt"
	"time"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a customer's purchase against exactly one
// restaurant. While Unplaced it acts as the customer's cart; from Placed
// onward it is an immutable record moving through the delivery lifecycle.
//
// Invariants:
//   - totalCost is nil while Unplaced and set exactly once at placement;
//     it is never recomputed, so later menu price changes do not affect it
//   - a menu item appears at most once among the line items
//   - a courier is assigned only while InTransit or Delivered, and at most
//     once for the life of the order
//   - a courier recorded in the rejection set stays there permanently and
//     can never accept the order
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID

	status      Status
	items       []Item
	totalCost   *decimal.Decimal
	placedAt    *time.Time
	deliveredAt *time.Time

	// courierID is the accepting courier (nil until accepted)
	courierID *kernel.UUID

	// rejectedBy holds couriers that declined this order, permanently
	rejectedBy map[kernel.UUID]struct{}

	// minutesAway is the courier-supplied delivery estimate (nil if unset)
	minutesAway *int

	isConstructed bool
}

// NewOrder creates an empty cart in Unplaced status for the given customer
// and restaurant. Carts come into existence implicitly when the customer
// adds their first item for a restaurant; the find-or-create semantics live
// in the repository, this constructor only builds the fresh aggregate.
func NewOrder(id, customerID, restaurantID kernel.UUID) (*Order, error) {
	o := &Order{
		status:        Unplaced,
		rejectedBy:    make(map[kernel.UUID]struct{}),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. It revalidates the
// aggregate's invariants so corrupted rows cannot produce an invalid
// aggregate: status/courier consistency and the frozen-total rule are both
// checked.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	status Status,
	items []Item,
	totalCost *decimal.Decimal,
	placedAt, deliveredAt *time.Time,
	courierID *kernel.UUID,
	rejectedBy []kernel.UUID,
	minutesAway *int,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if err = status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}

	if status == Unplaced && totalCost != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("total cost",
			errors.New("unplaced order must not have a frozen total"))
	}
	if status != Unplaced && totalCost == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("total cost",
			fmt.Errorf("%s order must have a frozen total", status))
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
		if _, exists := o.findItem(item.MenuItemID()); exists {
			return nil, errs.NewConflictErrorWithCause("order items",
				fmt.Errorf("menu item %s appears more than once", item.MenuItemID()))
		}
		o.items = append(o.items, item)
	}

	for _, rejecting := range rejectedBy {
		if err = rejecting.Validate(); err != nil {
			return nil, err
		}
		o.rejectedBy[rejecting] = struct{}{}
	}

	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}

	o.status = status
	o.totalCost = totalCost
	o.placedAt = placedAt
	o.deliveredAt = deliveredAt
	o.minutesAway = minutesAway

	return o, nil
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant the order is placed against.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// IsEmpty reports whether the order has no line items.
func (o *Order) IsEmpty() bool {
	return len(o.items) == 0
}

// TotalCost returns the frozen total, or nil while the order is Unplaced.
func (o *Order) TotalCost() *decimal.Decimal {
	return o.totalCost
}

// PlacedAt returns the placement timestamp, or nil while Unplaced.
func (o *Order) PlacedAt() *time.Time {
	return o.placedAt
}

// DeliveredAt returns the delivery timestamp, or nil until Delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Courier returns the accepting courier's ID, or nil if unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// MinutesAway returns the courier-supplied delivery estimate, or nil.
func (o *Order) MinutesAway() *int {
	return o.minutesAway
}

// RejectedBy returns the couriers that declined this order.
func (o *Order) RejectedBy() []kernel.UUID {
	rejected := make([]kernel.UUID, 0, len(o.rejectedBy))
	for id := range o.rejectedBy {
		rejected = append(rejected, id)
	}
	return rejected
}

// HasRejected reports whether the given courier has declined this order.
func (o *Order) HasRejected(courierID kernel.UUID) bool {
	_, ok := o.rejectedBy[courierID]
	return ok
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// SetItemQuantity adds, replaces, or removes a line item. Line items may
// only change while the order is Unplaced.
//
// Rules:
//   - quantity > 0: upsert; an existing line for the menu item has its
//     quantity replaced, never duplicated
//   - quantity == 0: the line is removed; removing an absent line is a
//     not-found error
//   - quantity < 0: validation error
func (o *Order) SetItemQuantity(menuItemID kernel.UUID, quantity int) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	if o.status != Unplaced {
		return errs.NewConflictErrorWithCause("order status",
			fmt.Errorf("%s order's items cannot be changed", o.status))
	}

	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	idx, exists := o.findItem(menuItemID)

	if quantity == 0 {
		if !exists {
			return errs.NewObjectNotFoundError("menu item", menuItemID.String())
		}
		o.items = append(o.items[:idx], o.items[idx+1:]...)
		return nil
	}

	item, err := NewItem(menuItemID, quantity)
	if err != nil {
		return err
	}

	if exists {
		o.items[idx] = item
		return nil
	}

	o.items = append(o.items, item)
	return nil
}

// Place transitions the cart to Placed: the total is computed once from the
// supplied live menu prices (sum of quantity x price over all lines),
// frozen into the aggregate, and the placement time is stamped. The order
// must have at least one line item. A price must be present for every line;
// a missing price means the menu item reference is stale.
func (o *Order) Place(prices map[kernel.UUID]decimal.Decimal, now time.Time) error {
	if o.IsEmpty() {
		return errs.NewConflictErrorWithCause("order items",
			errors.New("an empty order cannot be placed"))
	}

	newStatus, err := o.status.Place()
	if err != nil {
		return err
	}

	total := decimal.Zero
	for _, item := range o.items {
		price, ok := prices[item.MenuItemID()]
		if !ok {
			return errs.NewObjectNotFoundError("menu item", item.MenuItemID().String())
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity()))))
	}

	o.status = newStatus
	o.totalCost = &total
	o.placedAt = &now
	return nil
}

// MarkReady transitions Placed -> ReadyForPickup. Restaurant ownership is
// checked by the caller; the aggregate only guards the state machine.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Accept assigns the order to a courier and advances it to InTransit.
//
// Guards:
//   - the order must be ReadyForPickup
//   - no courier may be assigned yet (exclusive acceptance)
//   - a courier that previously rejected the order can never accept it
//
// The storage layer must apply this transition conditionally (only while
// the stored row is still unassigned) so two racing couriers cannot both
// win; see ports.OrderRepository.UpdateTransition.
func (o *Order) Accept(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.HasRejected(courierID) {
		return errs.NewConflictErrorWithCause("order assignment",
			errors.New("courier has rejected this order"))
	}

	if o.courierID != nil {
		return errs.NewConflictErrorWithCause("order assignment",
			errors.New("order is already accepted by another courier"))
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Reject records the courier in the permanent rejection set. The order's
// status is unchanged and other couriers still see it. Rejecting an order
// this courier has already accepted is a conflict; rejecting twice is a
// no-op.
func (o *Order) Reject(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID != nil && o.courierID.IsEqual(courierID) {
		return errs.NewConflictErrorWithCause("order rejection",
			errors.New("cannot reject an order accepted by self"))
	}

	o.rejectedBy[courierID] = struct{}{}
	return nil
}

// MarkDelivered transitions InTransit -> Delivered and stamps the delivery
// time. Only the assigned courier may complete the delivery; a mismatching
// courier gets a not-found error so assignment is not leaked.
func (o *Order) MarkDelivered(courierID kernel.UUID, now time.Time) error {
	if err := o.validateAssignedTo(courierID); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// SetMinutesAway stores the assigned courier's delivery estimate while the
// order is InTransit. A nil value clears the estimate (the caller maps
// non-numeric input to nil rather than erroring).
func (o *Order) SetMinutesAway(courierID kernel.UUID, minutes *int) error {
	if err := o.validateAssignedTo(courierID); err != nil {
		return err
	}

	if o.status != InTransit {
		return errs.NewConflictErrorWithCause("order status",
			fmt.Errorf("%s order cannot carry a delivery estimate", o.status))
	}

	if minutes != nil && *minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minutes away",
			fmt.Errorf("%d is negative", *minutes))
	}

	o.minutesAway = minutes
	return nil
}

func (o *Order) validateAssignedTo(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return errs.NewObjectNotFoundError("order", o.id.String())
	}

	return nil
}

func (o *Order) findItem(menuItemID kernel.UUID) (int, bool) {
	for i, item := range o.items {
		if item.MenuItemID().IsEqual(menuItemID) {
			return i, true
		}
	}
	return 0, false
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}
