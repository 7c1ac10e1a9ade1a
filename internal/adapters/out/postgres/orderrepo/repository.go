package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
	"dinedash/internal/pkg/errs"
)

// orderColumns are the scalar columns written on every update. Listed
// explicitly so nil values (cleared estimate, unassigned courier) are
// written instead of skipped.
var orderColumns = []string{
	"status", "total_cost", "placed_at", "delivered_at", "courier_id", "minutes_away",
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines. A duplicate-key failure on the
// one-cart-per-restaurant index surfaces as a conflict so a concurrent
// first-add can be retried against the winner's cart.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("cart", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order: scalar columns, replaced lines, and any
// new rejections. Rejection rows are only ever added, never removed. The
// scalar write re-verifies the status the aggregate was loaded at so a
// stale save cannot roll an advanced order backward.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, dto.Status).
		Select(orderColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order status")
	}

	if err := r.replaceItems(ctx, dto); err != nil {
		return err
	}

	if err := r.insertRejections(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddRejection inserts the aggregate's rejection rows and nothing else.
// Rejections only restrict queue visibility, so the write is safe to run
// concurrently with an acceptance; re-inserting an existing row is a no-op.
func (r *GormOrderRepository) AddRejection(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.insertRejections(ctx, fromDomain(aggregate)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateMinutesAway writes only the minutes_away column, and only while the
// stored order is still in the loaded status with the loaded courier. Zero
// rows affected means the delivery completed (or was reassigned) first.
func (r *GormOrderRepository) UpdateMinutesAway(
	ctx context.Context, aggregate *order.Order,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND courier_id = ?", dto.ID, dto.Status, dto.CourierID).
		Select("minutes_away").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order status")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateTransition persists a status transition conditionally: the write
// applies only while the stored row is still in the status the caller
// loaded, and, when the transition assigns a courier, only while the row is
// unassigned. Zero rows affected means another writer advanced the order
// first.
func (r *GormOrderRepository) UpdateTransition(
	ctx context.Context, aggregate *order.Order, from order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	query := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(from))
	if from == order.ReadyForPickup && dto.CourierID != nil {
		query = query.Where("courier_id IS NULL")
	}

	result := query.Select(orderColumns).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order status")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its lines and rejection set.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Rejections").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetCart retrieves the customer's unplaced order against a restaurant.
func (r *GormOrderRepository) GetCart(
	ctx context.Context, customerID, restaurantID kernel.UUID,
) (*order.Order, error) {
	if err := errors.Join(customerID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Rejections").
		First(&dto,
			"customer_id = ? AND restaurant_id = ? AND status = ?",
			customerID.Bytes(), restaurantID.Bytes(), int(order.Unplaced),
		).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", restaurantID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order; lines and rejections cascade.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

func (r *GormOrderRepository) replaceItems(ctx context.Context, dto OrderDTO) error {
	err := r.db.WithContext(ctx).
		Delete(&OrderItemDTO{}, "order_id = ?", dto.ID).Error
	if err != nil {
		return err
	}

	if len(dto.Items) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Items).Error
}

func (r *GormOrderRepository) insertRejections(ctx context.Context, dto OrderDTO) error {
	if len(dto.Rejections) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto.Rejections).Error
}
