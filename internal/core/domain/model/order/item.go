package order

import (
	"errors"
	"fmt"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/errs"
	"dinedash/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when validating a zero-value Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem")

// Item is one line in an order: a menu item reference and a quantity.
// Prices are not copied onto lines; they are read live from the menu when
// the order total is computed at placement.
type Item struct { //nolint:recvcheck //pointer receivers used for construction-time setters
	menuItemID kernel.UUID
	quantity   int
	guard      guard.ConstructorGuard
}

// NewItem creates a line item. Quantity must be positive; a zero quantity
// is expressed by removing the line, not by constructing one.
func NewItem(menuItemID kernel.UUID, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(item.setMenuItemID(menuItemID), item.setQuantity(quantity)); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate reports whether the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
