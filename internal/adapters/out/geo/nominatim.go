// Package geo implements the geocoding port against the Nominatim search
// API. Addresses are resolved once, when a profile changes, so no caching
// or retry layer sits in front of the provider.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// NominatimGeocoder resolves free-form addresses through a Nominatim
// endpoint. The user agent is mandatory: public Nominatim rejects anonymous
// clients.
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatimGeocoder creates a geocoder against the given endpoint,
// e.g. "https://nominatim.openstreetmap.org".
func NewNominatimGeocoder(baseURL, userAgent string) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: defaultTimeout},
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve returns the coordinates of the first match for the address.
// Returns ports.ErrLocationNotFound when the provider has no match.
func (g *NominatimGeocoder) Resolve(ctx context.Context, address string) (kernel.GeoPoint, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	endpoint := g.baseURL + "/search?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return kernel.GeoPoint{}, err
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.GeoPoint{}, fmt.Errorf(
			"geocoding request failed: unexpected status %d", resp.StatusCode,
		)
	}

	var results []searchResult
	if err = json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("geocoding response malformed: %w", err)
	}

	if len(results) == 0 {
		return kernel.GeoPoint{}, ports.ErrLocationNotFound
	}

	latitude, err := decimal.NewFromString(results[0].Lat)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("geocoding response malformed: %w", err)
	}

	longitude, err := decimal.NewFromString(results[0].Lon)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("geocoding response malformed: %w", err)
	}

	return kernel.NewGeoPoint(latitude, longitude)
}
