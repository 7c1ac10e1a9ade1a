// Package kernel contains shared value objects used across aggregates:
// validated identifiers (UUID) and geographic coordinates (GeoPoint).
// All types are immutable and only constructible through their factory
// functions; zero values fail validation.
package kernel
