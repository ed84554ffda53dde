package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"zipcode-web/internal/domain/model"
	"zipcode-web/internal/domain/model/external"
	"zipcode-web/pkg/http"
)

// geocodingGatewayImpl implements GeocodingGateway against zippopotam.us
type geocodingGatewayImpl struct {
	httpClient *http.Client
}

// NewGeocodingGateway creates a new instance of GeocodingGateway with HTTP client
func NewGeocodingGateway(baseUrl string, clientOptions http.ClientOptions) GeocodingGateway {
	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// Lookup calls GET /us/{state}/{city}
func (g *geocodingGatewayImpl) Lookup(ctx context.Context, stateAbbrev string, cityName string) (*external.PlacesResponse, error) {
	path := fmt.Sprintf("/us/%s/%s",
		url.PathEscape(strings.ToLower(strings.TrimSpace(stateAbbrev))),
		url.PathEscape(strings.ToLower(strings.TrimSpace(cityName))))

	successResp, _, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithSuccessResp(&external.PlacesResponse{}).
		Execute()

	if err != nil {
		var statusErr *http.StatusError
		if errors.As(err, &statusErr) {
			return nil, fmt.Errorf("%w: %s, %s answered %d", model.ErrLookupNotFound, cityName, stateAbbrev, statusErr.StatusCode)
		}
		return nil, fmt.Errorf("%w: %v", model.ErrLookupUnavailable, err)
	}

	response, ok := successResp.(*external.PlacesResponse)
	if !ok || response == nil {
		return nil, fmt.Errorf("%w: empty response for %s, %s", model.ErrLookupUnavailable, cityName, stateAbbrev)
	}

	if err = validatePlaces(response); err != nil {
		return nil, fmt.Errorf("%w: %s, %s: %v", model.ErrLookupNotFound, cityName, stateAbbrev, err)
	}

	return response, nil
}

// validatePlaces rejects payloads lacking any field the reconciliation relies on
func validatePlaces(response *external.PlacesResponse) error {
	switch {
	case response.State == "":
		return errors.New("missing state")
	case response.StateAbbreviation == "":
		return errors.New("missing state abbreviation")
	case response.PlaceName == "":
		return errors.New("missing place name")
	case len(response.Places) == 0:
		return errors.New("no places")
	}
	for i, place := range response.Places {
		if strings.TrimSpace(place.PostCode) == "" {
			return fmt.Errorf("place %d has no post code", i)
		}
	}
	return nil
}
