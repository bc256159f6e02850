package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// GeocodeService handles interactions with the Google Geocoding API.
// It backfills coordinates for the city the model names when the model
// itself did not return usable ones.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a new GeocodeService with the given API Key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Locate resolves a free-form place name (typically "city, country") to a
// latitude/longitude pair using the first geocoding result.
func (s *GeocodeService) Locate(ctx context.Context, place string) (lat, lng float64, err error) {
	r := &maps.GeocodingRequest{
		Address: place,
	}

	results, err := s.client.Geocode(ctx, r)
	if err != nil {
		return 0, 0, fmt.Errorf("maps api error: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding result for %q", place)
	}

	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
