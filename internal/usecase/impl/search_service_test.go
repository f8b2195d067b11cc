package impl

import (
	"context"
	"testing"

	"spotshare/internal/domain/entity"
	mockUsecase "spotshare/internal/mocks/usecase"
	"spotshare/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	downtown = entity.GeoPoint{Latitude: 37.7749, Longitude: -122.4194}
	// About 1.1 km north of downtown.
	nearby = entity.GeoPoint{Latitude: 37.7849, Longitude: -122.4194, Address: "1 Market St"}
	// About 559 km away.
	faraway = entity.GeoPoint{Latitude: 34.0522, Longitude: -118.2437}
)

func searchListing(id string, price float64, loc entity.GeoPoint, rating *float64) *entity.Listing {
	return &entity.Listing{
		ID:           id,
		Title:        "Spot " + id,
		Location:     loc,
		PricePerHour: price,
		IsAvailable:  true,
		SpotType:     entity.SpotTypeGarage,
		Rating:       rating,
	}
}

func newSearchFixture(t *testing.T, listings []*entity.Listing, state entity.LocationState) usecase.SearchUsecase {
	t.Helper()

	listingUC := mockUsecase.NewMockListingUsecase(t)
	listingUC.EXPECT().AllAvailable().Return(listings).Maybe()
	locationUC := mockUsecase.NewMockLocationUsecase(t)
	locationUC.EXPECT().State().Return(state).Maybe()

	return NewSearchService(SearchServiceParams{
		Listings: listingUC,
		Location: locationUC,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})
}

func resultIDs(results []*usecase.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Listing.ID
	}

	return out
}

func TestSearchService_DefaultCriteria(t *testing.T) {
	svc := newSearchFixture(t, nil, entity.LocationState{})

	c := svc.DefaultCriteria()
	assert.InDelta(t, 50.0, c.PriceCeiling, 0)
	assert.InDelta(t, 10.0, c.DistanceCeilingKm, 0)
	assert.Equal(t, entity.SortByDistance, c.SortBy)
	assert.Equal(t, []entity.SpotType{entity.SpotTypeAll}, c.SpotTypes)

	c.SpotTypes[0] = entity.SpotTypeGarage
	assert.Equal(t, []entity.SpotType{entity.SpotTypeAll}, svc.DefaultCriteria().SpotTypes, "callers get a copy")
}

func TestSearchService_Search_UsesKnownLocation(t *testing.T) {
	listings := []*entity.Listing{
		searchListing("far", 3, faraway, nil),
		searchListing("near", 3, nearby, nil),
		searchListing("here", 3, downtown, nil),
	}
	svc := newSearchFixture(t, listings, entity.LocationState{Status: entity.LocationKnown, Point: &downtown})

	results := svc.Search(context.Background(), &usecase.SearchInput{Criteria: svc.DefaultCriteria()})

	require.Equal(t, []string{"here", "near"}, resultIDs(results))
	assert.Equal(t, "0 m", results[0].DistanceLabel)
	require.NotNil(t, results[1].DistanceKm)
	assert.InDelta(t, 1.11, *results[1].DistanceKm, 0.01)
	assert.Equal(t, "1.1 km", results[1].DistanceLabel)
}

func TestSearchService_Search_ExplicitOriginWins(t *testing.T) {
	listings := []*entity.Listing{
		searchListing("sf", 3, downtown, nil),
		searchListing("la", 3, faraway, nil),
	}
	svc := newSearchFixture(t, listings, entity.LocationState{Status: entity.LocationKnown, Point: &downtown})

	results := svc.Search(context.Background(), &usecase.SearchInput{
		Criteria: svc.DefaultCriteria(),
		Origin:   &faraway,
	})

	assert.Equal(t, []string{"la"}, resultIDs(results))
}

func TestSearchService_Search_UnknownLocationSkipsDistance(t *testing.T) {
	listings := []*entity.Listing{
		searchListing("cheap", 2, faraway, ptr(3.0)),
		searchListing("pricey", 60, downtown, ptr(5.0)),
		searchListing("rated", 4, downtown, ptr(4.5)),
	}
	svc := newSearchFixture(t, listings, entity.LocationState{Status: entity.LocationDenied})

	criteria := svc.DefaultCriteria()
	criteria.SortBy = entity.SortByRating
	results := svc.Search(context.Background(), &usecase.SearchInput{Criteria: criteria})

	assert.Equal(t, []string{"rated", "cheap"}, resultIDs(results), "price ceiling applies, distance does not")
	for _, r := range results {
		assert.Nil(t, r.DistanceKm)
		assert.Empty(t, r.DistanceLabel)
	}
}

func TestSearchService_Search_NilInputUsesDefaults(t *testing.T) {
	listings := []*entity.Listing{searchListing("a", 3, downtown, nil)}
	svc := newSearchFixture(t, listings, entity.LocationState{})

	assert.Equal(t, []string{"a"}, resultIDs(svc.Search(context.Background(), nil)))
}

func TestSearchService_MapFeatures(t *testing.T) {
	listings := []*entity.Listing{
		searchListing("near", 3, nearby, ptr(4.0)),
		searchListing("far", 3, faraway, nil),
	}
	svc := newSearchFixture(t, listings, entity.LocationState{Status: entity.LocationKnown, Point: &downtown})

	fc := svc.MapFeatures(context.Background(), &usecase.SearchInput{Criteria: svc.DefaultCriteria()})

	require.Len(t, fc.Features, 1)
	f := fc.Features[0]
	assert.Equal(t, "near", f.ID)
	assert.Equal(t, orb.Point{-122.4194, 37.7849}, f.Geometry)
	assert.Equal(t, "Spot near", f.Properties["title"])
	assert.Equal(t, "1 Market St", f.Properties["address"])
	assert.Equal(t, 4.0, f.Properties["rating"])
	assert.Equal(t, "1.1 km", f.Properties["distanceLabel"])
}
