package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
	"dinedash/internal/pkg/errs"
)

// GetCartQueryHandler reads a customer's unplaced cart and prices it from
// the live menu.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query. A missing cart is not found, same as a
// cart belonging to someone else.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	var cartID uuid.UUID
	row := h.db.WithContext(ctx).Raw(`
		SELECT id FROM orders
		WHERE customer_id = ? AND restaurant_id = ? AND status = ?
	`, query.CustomerID().Bytes(), query.RestaurantID().Bytes(), order.Unplaced).Row()
	if err := row.Scan(&cartID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCartQueryResponse{}, errs.NewObjectNotFoundError(
				"cart", query.RestaurantID(),
			)
		}

		return GetCartQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(cartID[:])
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.name,
			m.price,
			i.quantity
		FROM order_items i
		JOIN menu_items m ON m.id = i.menu_item_id
		WHERE i.order_id = ?
		ORDER BY m.name
	`, cartID).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	resp := GetCartQueryResponse{
		OrderID: orderID,
		Lines:   make([]GetCartQueryLine, 0),
	}

	runningTotal := decimal.Zero
	for rows.Next() {
		var (
			menuItemID uuid.UUID
			name       string
			price      decimal.Decimal
			quantity   int
		)

		if err = rows.Scan(&menuItemID, &name, &price, &quantity); err != nil {
			return GetCartQueryResponse{}, err
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}

		lineTotal := price.Mul(decimal.NewFromInt(int64(quantity)))
		runningTotal = runningTotal.Add(lineTotal)

		resp.Lines = append(resp.Lines, GetCartQueryLine{
			MenuItemID: itemID,
			Name:       name,
			Price:      price.StringFixed(2),
			Quantity:   quantity,
			LineTotal:  lineTotal.StringFixed(2),
		})
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	resp.RunningTotal = runningTotal.StringFixed(2)
	return resp, nil
}
