// Package orderrepo persists order aggregates with their line items and
// rejection sets. It maps between the domain aggregate and three tables:
// orders, order_items, and order_rejections.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// A partial unique index (declared in the migration set) enforces at most one
// unplaced order per (customer, restaurant) pair.
type OrderDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID        `gorm:"type:uuid;index;not null"`
	RestaurantID uuid.UUID        `gorm:"type:uuid;index;not null"`
	Status       int              `gorm:"index"`
	TotalCost    *decimal.Decimal `gorm:"type:numeric(8,2)"`
	PlacedAt     *time.Time
	DeliveredAt  *time.Time
	CourierID    *uuid.UUID `gorm:"type:uuid;index"`
	MinutesAway  *int

	Items      []OrderItemDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Rejections []OrderRejectionDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one cart line. The unique index mirrors the
// aggregate invariant that a menu item appears at most once per order.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int       `gorm:"not null"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderRejectionDTO records that a courier permanently declined an order.
type OrderRejectionDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for rejections.
func (OrderRejectionDTO) TableName() string {
	return "order_rejections"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Status:       int(aggregate.Status()),
		TotalCost:    aggregate.TotalCost(),
		PlacedAt:     aggregate.PlacedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		CourierID:    courierID,
		MinutesAway:  aggregate.MinutesAway(),
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:    dto.ID,
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
		})
	}

	for _, rejecting := range aggregate.RejectedBy() {
		dto.Rejections = append(dto.Rejections, OrderRejectionDTO{
			OrderID:   dto.ID,
			CourierID: rejecting.Bytes(),
		})
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(menuItemID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	rejectedBy := make([]kernel.UUID, 0, len(dto.Rejections))
	for _, rejectionDTO := range dto.Rejections {
		rejecting, rejErr := kernel.UUIDFromBytes(rejectionDTO.CourierID[:])
		if rejErr != nil {
			return nil, rejErr
		}
		rejectedBy = append(rejectedBy, rejecting)
	}

	return order.RestoreOrder(
		id, customerID, restaurantID,
		order.Status(dto.Status), items,
		dto.TotalCost, dto.PlacedAt, dto.DeliveredAt,
		courierID, rejectedBy, dto.MinutesAway,
	)
}
