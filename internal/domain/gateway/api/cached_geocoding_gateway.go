package api

import (
	"context"
	"strings"

	"zipcode-web/internal/domain/model/external"
	"zipcode-web/pkg/log"
	"zipcode-web/pkg/msg"
)

// LookupCacheName is the Redis cache holding successful lookups
const LookupCacheName = "geocoding-lookup"

// LookupCache is the subset of pkg/redis.Cache used by the decorator
type LookupCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type cachedGeocodingGateway struct {
	delegate GeocodingGateway
	cache    LookupCache
}

// NewCachedGeocodingGateway serves repeated lookups from cache. Only successful answers are stored
// and cache failures fall through to the delegate.
func NewCachedGeocodingGateway(delegate GeocodingGateway, cache LookupCache) GeocodingGateway {
	return &cachedGeocodingGateway{delegate: delegate, cache: cache}
}

func (c *cachedGeocodingGateway) Lookup(ctx context.Context, stateAbbrev string, cityName string) (*external.PlacesResponse, error) {
	key := lookupCacheKey(stateAbbrev, cityName)

	var cached external.PlacesResponse
	found, err := c.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn(msg.GetMessage("cache.error.read", key, err))
	} else if found {
		return &cached, nil
	}

	response, err := c.delegate.Lookup(ctx, stateAbbrev, cityName)
	if err != nil {
		return nil, err
	}

	if err = c.cache.Set(ctx, key, response); err != nil {
		log.Warn(msg.GetMessage("cache.error.write", key, err))
	}
	return response, nil
}

func lookupCacheKey(stateAbbrev string, cityName string) string {
	return strings.ToLower(strings.TrimSpace(stateAbbrev)) + ":" + strings.ToLower(strings.TrimSpace(cityName))
}
