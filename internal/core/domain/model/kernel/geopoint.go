package kernel

import (
	"errors"
	"fmt"
	"math"

	"dinedash/internal/pkg/errs"
	"dinedash/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Latitude and longitude bounds in degrees.
var (
	LatitudeMin  = decimal.NewFromInt(-90)
	LatitudeMax  = decimal.NewFromInt(90)
	LongitudeMin = decimal.NewFromInt(-180)
	LongitudeMax = decimal.NewFromInt(180)
)

// earthRadiusMiles is the mean Earth radius used for great-circle distance.
const earthRadiusMiles = 3958.7613

// ErrGeoPointIsNotConstructed is returned when validating a zero-value
// GeoPoint. Use NewGeoPoint or GeoPointFromFloat64.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or GeoPointFromFloat64")

// GeoPoint is an immutable geographic coordinate pair with validated
// latitude and longitude. Coordinates are held as fixed-precision decimals
// because they come from address resolution and are persisted as decimal
// columns; distance math converts to float64 internally.
//
// Example:
//
//	point, err := kernel.GeoPointFromFloat64(40.7128, -74.0060)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type GeoPoint struct { //nolint:recvcheck //pointer receivers used for construction-time setters
	latitude  decimal.Decimal
	longitude decimal.Decimal
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given coordinates in degrees.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(latitude, longitude decimal.Decimal) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// GeoPointFromFloat64 creates a GeoPoint from float64 degrees, as produced
// by geocoding responses.
func GeoPointFromFloat64(latitude, longitude float64) (GeoPoint, error) {
	return NewGeoPoint(decimal.NewFromFloat(latitude), decimal.NewFromFloat(longitude))
}

// Validate reports whether the GeoPoint was created through a constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() decimal.Decimal {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() decimal.Decimal {
	return p.longitude
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%s,%s)", p.latitude, p.longitude)
}

// IsEqual compares two points by coordinates. Both points must be properly
// constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude.Equal(other.latitude) && p.longitude.Equal(other.longitude), nil
}

// DistanceMilesTo computes the great-circle (haversine) distance in miles
// between two points. Straight-line geodesic distance only; road-network
// routing is out of scope.
func (p GeoPoint) DistanceMilesTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := toRadians(p.latitude)
	lat2 := toRadians(other.latitude)
	dLat := toRadians(other.latitude.Sub(p.latitude))
	dLon := toRadians(other.longitude.Sub(p.longitude))

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c, nil
}

func toRadians(degrees decimal.Decimal) float64 {
	return degrees.InexactFloat64() * math.Pi / 180
}

func (p *GeoPoint) setLatitude(latitude decimal.Decimal) error {
	if latitude.LessThan(LatitudeMin) || latitude.GreaterThan(LatitudeMax) {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude decimal.Decimal) error {
	if longitude.LessThan(LongitudeMin) || longitude.GreaterThan(LongitudeMax) {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	p.longitude = longitude
	return nil
}
