package usecase

import (
	"context"

	"spotshare/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// SearchInput represents a search over the available listings
type SearchInput struct {
	Criteria entity.SearchCriteria
	// Origin overrides the device location, e.g. a geocoded "near" address.
	Origin *entity.GeoPoint
}

// SearchResult is a listing matched by a search
type SearchResult struct {
	Listing       *entity.Listing
	DistanceKm    *float64 // nil when the origin is unknown
	DistanceLabel string   // e.g. "850 m", empty when the origin is unknown
}

// SearchUsecase defines the interface for searching the available listings
type SearchUsecase interface {
	DefaultCriteria() entity.SearchCriteria
	Search(ctx context.Context, input *SearchInput) []*SearchResult
	MapFeatures(ctx context.Context, input *SearchInput) *geojson.FeatureCollection
}
