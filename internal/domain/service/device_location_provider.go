package service

import (
	"context"

	"spotshare/internal/domain/entity"
	"spotshare/internal/errors"
)

// ErrLocationServicesDisabled is returned by a position read when the device
// location services are switched off.
var ErrLocationServicesDisabled = errors.New("location services disabled")

// DeviceLocationProvider defines the interface for device positioning and geocoding.
type DeviceLocationProvider interface {
	// PermissionStatus returns the current OS permission without prompting.
	PermissionStatus(ctx context.Context) (entity.Permission, error)

	// RequestPermission prompts the user once and returns the resulting permission.
	RequestPermission(ctx context.Context) (entity.Permission, error)

	// CurrentPosition performs a live position read. Callers bound it with ctx.
	CurrentPosition(ctx context.Context, accuracy entity.Accuracy) (*entity.GeoPoint, error)

	// LastKnownPosition returns the cached position, or nil when there is none.
	LastKnownPosition(ctx context.Context) (*entity.GeoPoint, error)

	// ReverseGeocode resolves address fields for a coordinate.
	ReverseGeocode(ctx context.Context, point entity.GeoPoint) (*entity.Placemark, error)

	// Geocode resolves a free-text address to a point.
	Geocode(ctx context.Context, address string) (*entity.GeoPoint, error)
}
