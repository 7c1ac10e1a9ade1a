package postgres

import (
	"fmt"

	"dinedash/internal/adapters/out/postgres/accountrepo"
	"dinedash/internal/adapters/out/postgres/orderrepo"
	"dinedash/internal/adapters/out/postgres/paymentrepo"
	"dinedash/internal/adapters/out/postgres/restaurantrepo"
	"dinedash/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted aggregate, then
// adds the partial unique index guaranteeing at most one unplaced cart per
// (customer, restaurant) pair. AutoMigrate cannot express a partial index,
// so the index is raw DDL.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&accountrepo.CustomerDTO{},
		&accountrepo.CourierDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderRejectionDTO{},
		&paymentrepo.PaymentDTO{},
	); err != nil {
		return err
	}

	return db.Exec(fmt.Sprintf(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_one_cart
		ON orders (customer_id, restaurant_id) WHERE status = %d
	`, int(order.Unplaced))).Error
}
