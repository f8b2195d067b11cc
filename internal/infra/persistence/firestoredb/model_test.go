package firestoredb

import (
	"testing"
	"time"

	"spotshare/internal/domain/entity"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func updatesByPath(updates []firestore.Update) map[string]any {
	out := make(map[string]any, len(updates))
	for _, u := range updates {
		out[u.Path] = u.Value
	}

	return out
}

func TestFromListingDomain_LeavesServerFieldsEmpty(t *testing.T) {
	l := &entity.Listing{
		ID:           "ignored",
		OwnerID:      "ann",
		Title:        "Garage",
		Location:     entity.GeoPoint{Latitude: 1, Longitude: 2, City: "Springfield"},
		PricePerHour: 3,
		SpotType:     entity.SpotTypeGarage,
		Amenities:    []entity.Amenity{entity.AmenityCCTV, entity.AmenityCCTV, entity.AmenityGated},
		CreatedAt:    time.Now(),
	}

	m := fromListingDomain(l)

	assert.Empty(t, m.ID)
	assert.True(t, m.CreatedAt.IsZero())
	assert.True(t, m.UpdatedAt.IsZero())
	assert.Equal(t, []string{}, m.Images)
	assert.Equal(t, []string{"cctv", "gated"}, m.Amenities)
	assert.Equal(t, "Springfield", m.Location.City)
	assert.Equal(t, "garage", m.SpotType)
}

func TestToListingDomain_Tolerant(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := &ListingModel{
		ID:        "L1",
		SpotType:  "hovercraft",
		Amenities: []string{"covered", "moat", "covered"},
		CreatedAt: created,
	}

	l := toListingDomain(m)

	assert.Equal(t, "L1", l.ID)
	assert.Equal(t, entity.SpotTypeOther, l.SpotType)
	assert.Equal(t, []entity.Amenity{entity.AmenityCovered}, l.Amenities)
	assert.Equal(t, []string{}, l.Images)
	assert.Equal(t, created, l.UpdatedAt, "update time never precedes creation time")
}

func TestListingUpdates(t *testing.T) {
	patch := &entity.ListingPatch{
		Title:            ptr("Renamed"),
		ClearPricePerDay: true,
		PricePerDay:      ptr(20.0),
		Location:         &entity.GeoPoint{Latitude: 5, Longitude: 6},
		Amenities:        &[]entity.Amenity{entity.AmenityLighting, entity.AmenityLighting},
	}

	got := updatesByPath(listingUpdates(patch))

	assert.Len(t, got, 5)
	assert.Equal(t, "Renamed", got["title"])
	assert.Equal(t, firestore.Delete, got["pricePerDay"])
	assert.Equal(t, GeoPointModel{Latitude: 5, Longitude: 6}, got["location"])
	assert.Equal(t, []string{"lighting"}, got["amenities"])
	assert.Equal(t, firestore.ServerTimestamp, got["updatedAt"])
	assert.NotContains(t, got, "ownerId")
	assert.NotContains(t, got, "createdAt")
}

func TestIdentityModelRoundTrip(t *testing.T) {
	in := &entity.Identity{ID: "u1", Email: "a@b.c", Name: "Ann", Role: entity.RoleHomeowner, Phone: "555"}

	out := toIdentityDomain(fromIdentityDomain(in))

	require.NotNil(t, out)
	assert.Equal(t, in, out)
}

func TestToIdentityDomain_UnknownRoleIsUser(t *testing.T) {
	out := toIdentityDomain(&IdentityModel{ID: "u1", Role: "admin"})

	assert.Equal(t, entity.RoleUser, out.Role)
}

func TestProfileMerge_NeverWritesRole(t *testing.T) {
	data := profileMerge(&entity.ProfilePatch{Name: ptr("Ann"), Phone: ptr("")})

	assert.Equal(t, map[string]any{
		"name":      "Ann",
		"phone":     "",
		"updatedAt": firestore.ServerTimestamp,
	}, data)
}
