// Package entity contains the core business objects of the project.
package entity

import "slices"

// SortKey selects the ordering of search results.
type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByPrice    SortKey = "price"
	SortByRating   SortKey = "rating"
)

// ParseSortKey parses a sort key, defaulting to distance.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByPrice, SortByRating:
		return SortKey(s)
	default:
		return SortByDistance
	}
}

// SearchCriteria is the user's current filter and sort selection.
type SearchCriteria struct {
	Query             string     // Case-insensitive substring; empty matches everything.
	PriceCeiling      float64    // Inclusive hourly price ceiling; <= 0 means none.
	DistanceCeilingKm float64    // Inclusive distance ceiling; <= 0 means none.
	SpotTypes         []SpotType // Empty or containing SpotTypeAll means every type.
	SortBy            SortKey
}

// DefaultSearchCriteria returns criteria built from the configured defaults.
func DefaultSearchCriteria(priceCeiling, distanceCeilingKm float64, sortBy string) SearchCriteria {
	return SearchCriteria{
		PriceCeiling:      priceCeiling,
		DistanceCeilingKm: distanceCeilingKm,
		SpotTypes:         []SpotType{SpotTypeAll},
		SortBy:            ParseSortKey(sortBy),
	}
}

// MatchesAllSpotTypes reports whether the spot type filter is disabled.
func (c SearchCriteria) MatchesAllSpotTypes() bool {
	return len(c.SpotTypes) == 0 || slices.Contains(c.SpotTypes, SpotTypeAll)
}
