// Package restaurantrepo persists restaurants and their menu items.
package restaurantrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/restaurant"
)

// RestaurantDTO represents the database structure for restaurants. Unlike
// customer and courier profiles, coordinates are mandatory here: a
// restaurant cannot enter the matching pool without a pickup location.
type RestaurantDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Name      string          `gorm:"not null"`
	Address   string          `gorm:"not null"`
	Latitude  decimal.Decimal `gorm:"type:numeric(9,6);not null"`
	Longitude decimal.Decimal `gorm:"type:numeric(9,6);not null"`
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents the database structure for menu items.
type MenuItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name         string          `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:numeric(6,2);not null"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantFromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:        aggregate.ID().Bytes(),
		OwnerID:   aggregate.OwnerID().Bytes(),
		Name:      aggregate.Name(),
		Address:   aggregate.Address(),
		Latitude:  aggregate.Location().Latitude(),
		Longitude: aggregate.Location().Longitude(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, ownerID, dto.Name, dto.Address, location)
}

func menuItemFromDomain(aggregate *restaurant.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Name:         aggregate.Name(),
		Price:        aggregate.Price(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreMenuItem(id, restaurantID, dto.Name, dto.Price)
}
