package api

import (
	"context"

	"zipcode-web/internal/domain/model/external"
)

// GeocodingGateway resolves a US city/state pair into its postal codes
type GeocodingGateway interface {
	// Lookup returns the places of cityName in stateAbbrev.
	// Errors wrap model.ErrLookupNotFound or model.ErrLookupUnavailable.
	Lookup(ctx context.Context, stateAbbrev string, cityName string) (*external.PlacesResponse, error)
}
