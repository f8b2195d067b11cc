package geo

import (
	"testing"

	"spotshare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	sf := entity.GeoPoint{Latitude: 37.7749, Longitude: -122.4194}
	la := entity.GeoPoint{Latitude: 34.0522, Longitude: -118.2437}

	t.Run("identical points", func(t *testing.T) {
		assert.InDelta(t, 0.0, DistanceKm(sf, sf), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, DistanceKm(sf, la), DistanceKm(la, sf), 1e-9)
	})

	t.Run("san francisco to los angeles", func(t *testing.T) {
		assert.InDelta(t, 559.1, DistanceKm(sf, la), 1.0)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		a := entity.GeoPoint{Latitude: 0, Longitude: 0}
		b := entity.GeoPoint{Latitude: 1, Longitude: 0}
		assert.InDelta(t, 111.19, DistanceKm(a, b), 0.01)
	})

	t.Run("a tenth of a degree of longitude at the equator", func(t *testing.T) {
		d := DistanceKm(entity.GeoPoint{Latitude: 0, Longitude: 0}, entity.GeoPoint{Latitude: 0, Longitude: 0.1})
		assert.GreaterOrEqual(t, d, 10.9)
		assert.LessOrEqual(t, d, 11.3)
	})

	t.Run("address fields are ignored", func(t *testing.T) {
		withAddress := sf
		withAddress.City = "San Francisco"
		assert.InDelta(t, 0.0, DistanceKm(sf, withAddress), 1e-9)
	})
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		km   float64
		want string
	}{
		{km: 0, want: "0 m"},
		{km: 0.85, want: "850 m"},
		{km: 0.9994, want: "999 m"},
		{km: 0.9996, want: "1.0 km"},
		{km: 1, want: "1.0 km"},
		{km: 3.24, want: "3.2 km"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDistance(tt.km))
		})
	}
}

func TestToOrbPoint(t *testing.T) {
	p := ToOrbPoint(entity.GeoPoint{Latitude: 10, Longitude: 20})

	assert.InDelta(t, 20.0, p.Lon(), 0)
	assert.InDelta(t, 10.0, p.Lat(), 0)
}
