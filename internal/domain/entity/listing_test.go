package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeListingPatch_IgnoresIDAndCreatedAt(t *testing.T) {
	patch, err := DecodeListingPatch([]byte(`{"id":"other","createdAt":"2020-01-01T00:00:00Z","title":"New"}`))
	require.NoError(t, err)

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	original := &Listing{ID: "L1", Title: "Old", CreatedAt: created, UpdatedAt: created}
	now := created.Add(time.Hour)

	got := patch.Apply(original, now)

	assert.Equal(t, "L1", got.ID)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, now, got.UpdatedAt)
	assert.Equal(t, "Old", original.Title, "apply must not mutate its input")
}

func TestDecodeListingPatch_PricePerDay(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		patch, err := DecodeListingPatch([]byte(`{"pricePerDay": 20}`))
		require.NoError(t, err)
		require.NotNil(t, patch.PricePerDay)
		assert.InDelta(t, 20.0, *patch.PricePerDay, 0)
		assert.False(t, patch.ClearPricePerDay)
	})

	t.Run("null clears", func(t *testing.T) {
		patch, err := DecodeListingPatch([]byte(`{"pricePerDay": null}`))
		require.NoError(t, err)
		assert.True(t, patch.ClearPricePerDay)

		daily := 15.0
		got := patch.Apply(&Listing{PricePerDay: &daily}, time.Time{})
		assert.Nil(t, got.PricePerDay)
	})

	t.Run("absent", func(t *testing.T) {
		patch, err := DecodeListingPatch([]byte(`{"title":"x"}`))
		require.NoError(t, err)
		assert.Nil(t, patch.PricePerDay)
		assert.False(t, patch.ClearPricePerDay)
	})
}

func TestDecodeListingPatch_InvalidJSON(t *testing.T) {
	_, err := DecodeListingPatch([]byte(`{"title":`))
	require.Error(t, err)
}

func TestListingPatch_IsEmpty(t *testing.T) {
	var nilPatch *ListingPatch
	assert.True(t, nilPatch.IsEmpty())
	assert.True(t, (&ListingPatch{}).IsEmpty())

	available := false
	assert.False(t, (&ListingPatch{IsAvailable: &available}).IsEmpty())
	assert.False(t, (&ListingPatch{ClearPricePerDay: true}).IsEmpty())
}

func TestListingPatch_ApplyNormalizesAmenities(t *testing.T) {
	amenities := []Amenity{AmenityCovered, AmenityCCTV, AmenityCovered}
	got := (&ListingPatch{Amenities: &amenities}).Apply(&Listing{}, time.Time{})

	assert.Equal(t, []Amenity{AmenityCovered, AmenityCCTV}, got.Amenities)
}

func TestListing_CloneIsDeep(t *testing.T) {
	rating := 4.5
	l := &Listing{Images: []string{"a"}, Amenities: []Amenity{AmenityGated}, Rating: &rating}

	c := l.Clone()
	c.Images[0] = "b"
	*c.Rating = 1

	assert.Equal(t, "a", l.Images[0])
	assert.InDelta(t, 4.5, *l.Rating, 0)
}

func TestListingDraft_ToListing(t *testing.T) {
	draft := &ListingDraft{
		Title:        "Covered driveway",
		PricePerHour: 5,
		SpotType:     SpotTypeDriveway,
		Amenities:    []Amenity{AmenityLighting, AmenityLighting},
		IsAvailable:  true,
	}

	got := draft.ToListing("u1", "Ann")

	assert.Equal(t, "u1", got.OwnerID)
	assert.Equal(t, "Ann", got.OwnerName)
	assert.Equal(t, []Amenity{AmenityLighting}, got.Amenities)
	assert.NotNil(t, got.Images)
	assert.Empty(t, got.ID)
}
