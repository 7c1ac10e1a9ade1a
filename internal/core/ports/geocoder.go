package ports

import (
	"context"
	"errors"

	"dinedash/internal/core/domain/model/kernel"
)

// ErrLocationNotFound is returned by Geocoder implementations when the
// geocoding provider cannot resolve the supplied address to coordinates.
var ErrLocationNotFound = errors.New("location not found")

// Geocoder resolves free-form postal addresses to geographic coordinates.
type Geocoder interface {
	// Resolve returns the coordinates of the given address.
	// Returns ErrLocationNotFound when the provider has no match.
	Resolve(ctx context.Context, address string) (kernel.GeoPoint, error)
}
