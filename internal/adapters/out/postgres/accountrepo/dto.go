// Package accountrepo persists customer and courier profiles. The two
// tables share a shape: a name, an optional free-text address, and the
// coordinates it resolved to, both null until the first location update.
package accountrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dinedash/internal/core/domain/model/account"
	"dinedash/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for customer profiles.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Address   *string
	Latitude  *decimal.Decimal `gorm:"type:numeric(9,6)"`
	Longitude *decimal.Decimal `gorm:"type:numeric(9,6)"`
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

// CourierDTO represents the database structure for courier profiles.
type CourierDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Address   *string
	Latitude  *decimal.Decimal `gorm:"type:numeric(9,6)"`
	Longitude *decimal.Decimal `gorm:"type:numeric(9,6)"`
}

// TableName specifies the database table name for couriers.
func (CourierDTO) TableName() string {
	return "couriers"
}

func locationColumns(point *kernel.GeoPoint) (*decimal.Decimal, *decimal.Decimal) {
	if point == nil {
		return nil, nil
	}

	latitude := point.Latitude()
	longitude := point.Longitude()
	return &latitude, &longitude
}

func locationFromColumns(latitude, longitude *decimal.Decimal) (*kernel.GeoPoint, error) {
	if latitude == nil || longitude == nil {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return nil, err
	}

	return &point, nil
}

func customerFromDomain(aggregate *account.Customer) CustomerDTO {
	latitude, longitude := locationColumns(aggregate.Location())

	return CustomerDTO{
		ID:        aggregate.ID().Bytes(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Address:   aggregate.Address(),
		Latitude:  latitude,
		Longitude: longitude,
	}
}

func customerToDomain(dto CustomerDTO) (*account.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := locationFromColumns(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return account.RestoreCustomer(id, dto.FirstName, dto.LastName, dto.Address, location)
}

func courierFromDomain(aggregate *account.Courier) CourierDTO {
	latitude, longitude := locationColumns(aggregate.Location())

	return CourierDTO{
		ID:        aggregate.ID().Bytes(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Address:   aggregate.Address(),
		Latitude:  latitude,
		Longitude: longitude,
	}
}

func courierToDomain(dto CourierDTO) (*account.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := locationFromColumns(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return account.RestoreCourier(id, dto.FirstName, dto.LastName, dto.Address, location)
}
