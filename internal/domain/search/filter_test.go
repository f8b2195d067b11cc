package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spotshare/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func listing(id string, price float64, lat, lon float64, spotType entity.SpotType) *entity.Listing {
	return &entity.Listing{
		ID:           id,
		Title:        "Spot " + id,
		PricePerHour: price,
		Location:     entity.GeoPoint{Latitude: lat, Longitude: lon},
		SpotType:     spotType,
		IsAvailable:  true,
	}
}

func ids(ls []*entity.Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.ID
	}

	return out
}

func TestApply_TextFilter(t *testing.T) {
	a := listing("a", 5, 0, 0, entity.SpotTypeGarage)
	a.Title = "Covered Garage downtown"
	b := listing("b", 5, 0, 0, entity.SpotTypeDriveway)
	b.Location.City = "Springfield"
	c := listing("c", 5, 0, 0, entity.SpotTypeLot)
	c.Description = "Big open lot"

	criteria := entity.SearchCriteria{Query: "  GARAGE ", SortBy: entity.SortByPrice}
	assert.Equal(t, []string{"a"}, ids(Apply([]*entity.Listing{a, b, c}, criteria, nil)))

	criteria.Query = "spring"
	assert.Equal(t, []string{"b"}, ids(Apply([]*entity.Listing{a, b, c}, criteria, nil)))

	criteria.Query = "open lot"
	assert.Equal(t, []string{"c"}, ids(Apply([]*entity.Listing{a, b, c}, criteria, nil)))

	criteria.Query = ""
	assert.Len(t, Apply([]*entity.Listing{a, b, c}, criteria, nil), 3)
}

func TestApply_PriceCeilingIsInclusive(t *testing.T) {
	ls := []*entity.Listing{
		listing("a", 10, 0, 0, entity.SpotTypeGarage),
		listing("b", 10.01, 0, 0, entity.SpotTypeGarage),
		listing("c", 3, 0, 0, entity.SpotTypeGarage),
	}

	got := Apply(ls, entity.SearchCriteria{PriceCeiling: 10, SortBy: entity.SortByPrice}, nil)

	assert.Equal(t, []string{"c", "a"}, ids(got))
}

func TestApply_DistanceCeiling(t *testing.T) {
	origin := &entity.GeoPoint{Latitude: 0, Longitude: 0}
	near := listing("near", 5, 0.01, 0, entity.SpotTypeGarage)
	far := listing("far", 5, 1, 0, entity.SpotTypeGarage)
	ls := []*entity.Listing{far, near}

	t.Run("filters by distance when origin known", func(t *testing.T) {
		got := Apply(ls, entity.SearchCriteria{DistanceCeilingKm: 10}, origin)
		assert.Equal(t, []string{"near"}, ids(got))
	})

	t.Run("skips distance filter when origin unknown", func(t *testing.T) {
		got := Apply(ls, entity.SearchCriteria{DistanceCeilingKm: 10}, nil)
		assert.Equal(t, []string{"far", "near"}, ids(got))
	})
}

func TestApply_SpotTypes(t *testing.T) {
	ls := []*entity.Listing{
		listing("g", 5, 0, 0, entity.SpotTypeGarage),
		listing("d", 5, 0, 0, entity.SpotTypeDriveway),
		listing("s", 5, 0, 0, entity.SpotTypeStreet),
	}

	t.Run("subset", func(t *testing.T) {
		got := Apply(ls, entity.SearchCriteria{SpotTypes: []entity.SpotType{entity.SpotTypeGarage, entity.SpotTypeStreet}}, nil)
		assert.Equal(t, []string{"g", "s"}, ids(got))
	})

	t.Run("all sentinel disables the filter", func(t *testing.T) {
		got := Apply(ls, entity.SearchCriteria{SpotTypes: []entity.SpotType{entity.SpotTypeAll, entity.SpotTypeGarage}}, nil)
		assert.Len(t, got, 3)
	})

	t.Run("empty set disables the filter", func(t *testing.T) {
		got := Apply(ls, entity.SearchCriteria{}, nil)
		assert.Len(t, got, 3)
	})
}

func TestApply_SortByDistanceWithoutOriginKeepsOrder(t *testing.T) {
	ls := []*entity.Listing{
		listing("1", 9, 5, 5, entity.SpotTypeGarage),
		listing("2", 1, 0, 0, entity.SpotTypeGarage),
		listing("3", 5, 2, 2, entity.SpotTypeGarage),
	}

	got := Apply(ls, entity.SearchCriteria{SortBy: entity.SortByDistance}, nil)

	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestApply_SortByDistance(t *testing.T) {
	origin := &entity.GeoPoint{}
	ls := []*entity.Listing{
		listing("far", 1, 0.3, 0, entity.SpotTypeGarage),
		listing("mid", 1, 0.2, 0, entity.SpotTypeGarage),
		listing("near", 1, 0.1, 0, entity.SpotTypeGarage),
	}

	got := ApplyWithDistances(ls, entity.SearchCriteria{SortBy: entity.SortByDistance}, origin)

	assert.Equal(t, "near", got[0].Listing.ID)
	assert.Equal(t, "mid", got[1].Listing.ID)
	assert.Equal(t, "far", got[2].Listing.ID)
	for _, r := range got {
		assert.NotNil(t, r.DistanceKm)
	}
}

func TestApply_SortByRatingTreatsNilAsZero(t *testing.T) {
	unrated := listing("unrated", 1, 0, 0, entity.SpotTypeGarage)
	low := listing("low", 1, 0, 0, entity.SpotTypeGarage)
	low.Rating = ptr(1.5)
	high := listing("high", 1, 0, 0, entity.SpotTypeGarage)
	high.Rating = ptr(4.8)
	zero := listing("zero", 1, 0, 0, entity.SpotTypeGarage)
	zero.Rating = ptr(0.0)

	got := Apply([]*entity.Listing{unrated, low, zero, high}, entity.SearchCriteria{SortBy: entity.SortByRating}, nil)

	assert.Equal(t, []string{"high", "low", "unrated", "zero"}, ids(got))
}

func TestApply_SortByPriceIsStable(t *testing.T) {
	ls := []*entity.Listing{
		listing("a", 5, 0, 0, entity.SpotTypeGarage),
		listing("b", 2, 0, 0, entity.SpotTypeGarage),
		listing("c", 5, 0, 0, entity.SpotTypeGarage),
		listing("d", 2, 0, 0, entity.SpotTypeGarage),
	}

	got := Apply(ls, entity.SearchCriteria{SortBy: entity.SortByPrice}, nil)

	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(got))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	ls := []*entity.Listing{
		listing("a", 9, 0, 0, entity.SpotTypeGarage),
		listing("b", 1, 0, 0, entity.SpotTypeGarage),
	}

	_ = Apply(ls, entity.SearchCriteria{SortBy: entity.SortByPrice}, nil)

	assert.Equal(t, []string{"a", "b"}, ids(ls))
}

func TestApply_EmptyInput(t *testing.T) {
	assert.Empty(t, Apply(nil, entity.SearchCriteria{Query: "x"}, nil))
}
