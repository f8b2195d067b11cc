package device

import (
	"context"

	"spotshare/internal/domain/entity"
	"spotshare/internal/errors"
)

// ErrGeocodingDisabled is returned when no geocoding endpoint is configured.
var ErrGeocodingDisabled = errors.New("geocoding is disabled")

// ErrNoGeocodeResult is returned when the endpoint knows no match.
var ErrNoGeocodeResult = errors.New("no geocoding result")

// Geocoder converts between coordinates and addresses.
type Geocoder interface {
	Reverse(ctx context.Context, point entity.GeoPoint) (*entity.Placemark, error)
	Forward(ctx context.Context, address string) (*entity.GeoPoint, error)
}

type disabledGeocoder struct{}

func (disabledGeocoder) Reverse(context.Context, entity.GeoPoint) (*entity.Placemark, error) {
	return nil, ErrGeocodingDisabled
}

func (disabledGeocoder) Forward(context.Context, string) (*entity.GeoPoint, error) {
	return nil, ErrGeocodingDisabled
}
