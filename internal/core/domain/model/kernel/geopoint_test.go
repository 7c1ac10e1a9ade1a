package kernel_test

import (
	"testing"

	"dinedash/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create valid point within bounds", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(decimal.NewFromFloat(40.7128), decimal.NewFromFloat(-74.0060))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.Latitude().Equal(decimal.NewFromFloat(40.7128)))
		assert.True(t, p.Longitude().Equal(decimal.NewFromFloat(-74.0060)))
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(decimal.NewFromInt(-90), decimal.NewFromInt(180))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
	})

	t.Run("should fail with latitude above range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(decimal.NewFromFloat(90.1), decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("should fail with longitude below range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(decimal.Zero, decimal.NewFromFloat(-180.5))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("should join both range errors", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(decimal.NewFromInt(100), decimal.NewFromInt(200))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "geo point must be created")
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal coordinates compare equal", func(t *testing.T) {
		p1, _ := kernel.GeoPointFromFloat64(10.5, 20.25)
		p2, _ := kernel.GeoPointFromFloat64(10.5, 20.25)

		equal, err := p1.IsEqual(p2)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates compare unequal", func(t *testing.T) {
		p1, _ := kernel.GeoPointFromFloat64(10.5, 20.25)
		p2, _ := kernel.GeoPointFromFloat64(10.5, 21)

		equal, err := p1.IsEqual(p2)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed point fails comparison", func(t *testing.T) {
		p1, _ := kernel.GeoPointFromFloat64(10.5, 20.25)
		var p2 kernel.GeoPoint

		_, err := p1.IsEqual(p2)

		require.Error(t, err)
	})
}

func TestGeoPoint_DistanceMilesTo(t *testing.T) {
	t.Run("distance to self is zero", func(t *testing.T) {
		p, _ := kernel.GeoPointFromFloat64(40.7128, -74.0060)

		miles, err := p.DistanceMilesTo(p)

		require.NoError(t, err)
		assert.InDelta(t, 0, miles, 1e-9)
	})

	t.Run("longitude twentieth of a degree at equator is about 3.45 miles", func(t *testing.T) {
		origin, _ := kernel.GeoPointFromFloat64(0, 0)
		other, _ := kernel.GeoPointFromFloat64(0, 0.05)

		miles, err := origin.DistanceMilesTo(other)

		require.NoError(t, err)
		assert.InDelta(t, 3.45, miles, 0.05)
	})

	t.Run("longitude fifth of a degree at equator is about 13.8 miles", func(t *testing.T) {
		origin, _ := kernel.GeoPointFromFloat64(0, 0)
		other, _ := kernel.GeoPointFromFloat64(0, 0.2)

		miles, err := origin.DistanceMilesTo(other)

		require.NoError(t, err)
		assert.InDelta(t, 13.8, miles, 0.2)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		p1, _ := kernel.GeoPointFromFloat64(40.7128, -74.0060)
		p2, _ := kernel.GeoPointFromFloat64(34.0522, -118.2437)

		d1, err1 := p1.DistanceMilesTo(p2)
		d2, err2 := p2.DistanceMilesTo(p1)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("new york to los angeles is about 2445 miles", func(t *testing.T) {
		nyc, _ := kernel.GeoPointFromFloat64(40.7128, -74.0060)
		la, _ := kernel.GeoPointFromFloat64(34.0522, -118.2437)

		miles, err := nyc.DistanceMilesTo(la)

		require.NoError(t, err)
		assert.InDelta(t, 2445, miles, 15)
	})

	t.Run("unconstructed point fails distance computation", func(t *testing.T) {
		p1, _ := kernel.GeoPointFromFloat64(0, 0)
		var p2 kernel.GeoPoint

		_, err := p1.DistanceMilesTo(p2)

		require.Error(t, err)
	})
}
