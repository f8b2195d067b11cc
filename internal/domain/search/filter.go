// Package search implements the listing filter and sort pipeline.
// Every function is pure: inputs are never mutated and nothing fails.
package search

import (
	"math"
	"slices"
	"sort"
	"strings"

	"spotshare/internal/domain/entity"
	"spotshare/internal/domain/geo"
)

// Result is a listing that passed the pipeline together with its distance
// from the origin, when the origin is known.
type Result struct {
	Listing    *entity.Listing
	DistanceKm *float64
}

// Apply runs the pipeline and returns the matching listings in order.
func Apply(listings []*entity.Listing, criteria entity.SearchCriteria, origin *entity.GeoPoint) []*entity.Listing {
	results := ApplyWithDistances(listings, criteria, origin)

	out := make([]*entity.Listing, len(results))
	for i, r := range results {
		out[i] = r.Listing
	}

	return out
}

// ApplyWithDistances runs text, price, distance and spot type filters in that
// order, then a stable sort by the criteria's sort key.
func ApplyWithDistances(listings []*entity.Listing, criteria entity.SearchCriteria, origin *entity.GeoPoint) []Result {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	results := make([]Result, 0, len(listings))
	for _, l := range listings {
		if l == nil {
			continue
		}
		if !matchesText(l, query) {
			continue
		}
		if criteria.PriceCeiling > 0 && l.PricePerHour > criteria.PriceCeiling {
			continue
		}

		var distance *float64
		if origin != nil {
			d := geo.DistanceKm(*origin, l.Location)
			if criteria.DistanceCeilingKm > 0 && d > criteria.DistanceCeilingKm {
				continue
			}
			distance = &d
		}

		if !criteria.MatchesAllSpotTypes() && !slices.Contains(criteria.SpotTypes, l.SpotType) {
			continue
		}

		results = append(results, Result{Listing: l, DistanceKm: distance})
	}

	sortResults(results, criteria.SortBy)

	return results
}

func matchesText(l *entity.Listing, query string) bool {
	if query == "" {
		return true
	}

	fields := []string{l.Title, l.Description, l.Location.Address, l.Location.City}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}

	return false
}

func sortResults(results []Result, key entity.SortKey) {
	switch key {
	case entity.SortByPrice:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Listing.PricePerHour < results[j].Listing.PricePerHour
		})
	case entity.SortByRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Listing.RatingOrZero() > results[j].Listing.RatingOrZero()
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return distanceOrInf(results[i].DistanceKm) < distanceOrInf(results[j].DistanceKm)
		})
	}
}

func distanceOrInf(d *float64) float64 {
	if d == nil {
		return math.Inf(1)
	}

	return *d
}
