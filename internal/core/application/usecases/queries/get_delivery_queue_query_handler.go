package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
	"dinedash/internal/core/domain/services"
	"dinedash/internal/pkg/errs"
)

// GetDeliveryQueueQueryHandler builds a courier's matching queue. The
// database narrows candidates to ready, unassigned orders the courier has
// not rejected; the domain matcher applies the distance filter and the
// deterministic ordering.
type GetDeliveryQueueQueryHandler struct {
	db      *gorm.DB
	matcher services.DeliveryMatcher
}

// NewGetDeliveryQueueQueryHandler creates a handler for queue queries.
func NewGetDeliveryQueueQueryHandler(db *gorm.DB) GetDeliveryQueueQueryHandler {
	return GetDeliveryQueueQueryHandler{
		db:      db,
		matcher: services.NewDeliveryMatcher(),
	}
}

// Handle executes the queue query. The courier must have stored coordinates;
// without them no distance is computable and the request is rejected.
// Customers without resolved coordinates are filtered out in SQL since their
// orders cannot be matched.
func (h GetDeliveryQueueQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQueueQuery,
) ([]GetDeliveryQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	courierLocation, err := h.courierLocation(ctx, query.CourierID())
	if err != nil {
		return nil, err
	}

	type candidateRow struct {
		restaurantName string
		totalCost      string
	}
	details := make(map[kernel.UUID]candidateRow)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.total_cost,
			r.name,
			r.latitude,
			r.longitude,
			c.latitude,
			c.longitude
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		JOIN customers c ON c.id = o.customer_id
		WHERE o.status = ?
		  AND o.courier_id IS NULL
		  AND c.latitude IS NOT NULL
		  AND c.longitude IS NOT NULL
		  AND NOT EXISTS (
			SELECT 1 FROM order_rejections x
			WHERE x.order_id = o.id AND x.courier_id = ?
		  )
		ORDER BY o.id
	`, order.ReadyForPickup, query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []services.Candidate
	for rows.Next() {
		var (
			id               uuid.UUID
			totalCost        decimal.Decimal
			restaurantName   string
			restLat, restLon decimal.Decimal
			custLat, custLon decimal.Decimal
		)

		if err = rows.Scan(
			&id, &totalCost, &restaurantName,
			&restLat, &restLon, &custLat, &custLon,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		restaurantPoint, pointErr := kernel.NewGeoPoint(restLat, restLon)
		if pointErr != nil {
			return nil, pointErr
		}

		customerPoint, pointErr := kernel.NewGeoPoint(custLat, custLon)
		if pointErr != nil {
			return nil, pointErr
		}

		candidates = append(candidates, services.Candidate{
			OrderID:    orderID,
			Restaurant: restaurantPoint,
			Customer:   customerPoint,
		})
		details[orderID] = candidateRow{
			restaurantName: restaurantName,
			totalCost:      totalCost.StringFixed(2),
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	matches, err := h.matcher.Match(courierLocation, candidates, query.MaxMiles())
	if err != nil {
		return nil, err
	}

	queue := make([]GetDeliveryQueueQueryResponse, 0, len(matches))
	for _, match := range matches {
		detail := details[match.OrderID]
		queue = append(queue, GetDeliveryQueueQueryResponse{
			OrderID:         match.OrderID,
			RestaurantName:  detail.restaurantName,
			TotalCost:       detail.totalCost,
			RestaurantMiles: match.RestaurantMiles,
			CustomerMiles:   match.CustomerMiles,
		})
	}

	return queue, nil
}

func (h GetDeliveryQueueQueryHandler) courierLocation(
	ctx context.Context, courierID kernel.UUID,
) (kernel.GeoPoint, error) {
	var latitude, longitude decimal.NullDecimal

	row := h.db.WithContext(ctx).Raw(`
		SELECT latitude, longitude FROM couriers WHERE id = ?
	`, courierID.Bytes()).Row()

	if err := row.Scan(&latitude, &longitude); err != nil {
		return kernel.GeoPoint{}, errs.NewObjectNotFoundErrorWithCause(
			"courier id", courierID, err,
		)
	}

	if !latitude.Valid || !longitude.Valid {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("courier location")
	}

	return kernel.NewGeoPoint(latitude.Decimal, longitude.Decimal)
}
