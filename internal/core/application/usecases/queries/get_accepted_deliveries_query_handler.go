package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
)

// GetAcceptedDeliveriesQueryHandler lists a courier's in-transit orders with
// the addresses they need to drive between.
type GetAcceptedDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAcceptedDeliveriesQueryHandler creates a handler for active delivery queries.
func NewGetAcceptedDeliveriesQueryHandler(db *gorm.DB) GetAcceptedDeliveriesQueryHandler {
	return GetAcceptedDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by placement time so the
// longest-waiting delivery appears first.
func (h GetAcceptedDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAcceptedDeliveriesQuery,
) ([]GetAcceptedDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetAcceptedDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.total_cost,
			o.minutes_away,
			r.name,
			r.address,
			c.first_name,
			c.last_name,
			c.address
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		JOIN customers c ON c.id = o.customer_id
		WHERE o.status = ?
		  AND o.courier_id = ?
		ORDER BY o.placed_at
	`, order.InTransit, query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                  uuid.UUID
			totalCost           decimal.Decimal
			minutesAway         sql.NullInt64
			restaurantName      string
			restaurantAddress   string
			firstName, lastName string
			customerAddress     sql.NullString
		)

		if err = rows.Scan(
			&id, &totalCost, &minutesAway,
			&restaurantName, &restaurantAddress,
			&firstName, &lastName, &customerAddress,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetAcceptedDeliveriesQueryResponse{
			OrderID:           orderID,
			RestaurantName:    restaurantName,
			RestaurantAddress: restaurantAddress,
			CustomerName:      firstName + " " + lastName,
			TotalCost:         totalCost.StringFixed(2),
		}
		if minutesAway.Valid {
			minutes := int(minutesAway.Int64)
			resp.MinutesAway = &minutes
		}
		if customerAddress.Valid {
			address := customerAddress.String
			resp.CustomerAddress = &address
		}

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
