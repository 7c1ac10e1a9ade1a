package ports

import (
	"context"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants.
type RestaurantRepository interface {
	// Add persists a new restaurant to storage.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetByOwner retrieves the restaurant operated by the given account.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) (*restaurant.Restaurant, error)
}

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	// Add persists a new menu item to storage.
	Add(ctx context.Context, aggregate *restaurant.MenuItem) error

	// Get retrieves a menu item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.MenuItem, error)

	// GetByRestaurant retrieves all menu items offered by a restaurant.
	GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.MenuItem, error)
}
