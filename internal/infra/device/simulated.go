// Package device provides the device location provider used when the data
// layer runs outside a handset: a configured simulated device backed by an
// optional geocoding endpoint.
package device

import (
	"context"
	"sync"

	"spotshare/config"
	"spotshare/internal/domain/entity"
	"spotshare/internal/domain/service"
)

type simulatedDevice struct {
	mu         sync.Mutex
	permission entity.Permission
	cfg        config.DeviceConfig
	geocoder   Geocoder
}

func newSimulatedDevice(cfg config.DeviceConfig, geocoder Geocoder) *simulatedDevice {
	if geocoder == nil {
		geocoder = disabledGeocoder{}
	}

	return &simulatedDevice{
		permission: entity.Permission{Granted: cfg.PermissionGranted, CanAskAgain: cfg.CanAskAgain},
		cfg:        cfg,
		geocoder:   geocoder,
	}
}

func (d *simulatedDevice) PermissionStatus(context.Context) (entity.Permission, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.permission, nil
}

// RequestPermission behaves like an OS prompt: a refused prompt cannot be shown again.
func (d *simulatedDevice) RequestPermission(context.Context) (entity.Permission, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.permission.Granted || !d.permission.CanAskAgain {
		return d.permission, nil
	}

	if d.cfg.GrantOnRequest {
		d.permission = entity.Permission{Granted: true, CanAskAgain: true}
	} else {
		d.permission = entity.Permission{Granted: false, CanAskAgain: false}
	}

	return d.permission, nil
}

// CurrentPosition returns the configured fix. Without one the read never
// completes and only ctx ends it.
func (d *simulatedDevice) CurrentPosition(ctx context.Context, _ entity.Accuracy) (*entity.GeoPoint, error) {
	if !d.cfg.ServicesEnabled {
		return nil, service.ErrLocationServicesDisabled
	}

	if d.cfg.Latitude == nil || d.cfg.Longitude == nil {
		<-ctx.Done()

		return nil, ctx.Err()
	}

	return &entity.GeoPoint{Latitude: *d.cfg.Latitude, Longitude: *d.cfg.Longitude}, nil
}

func (d *simulatedDevice) LastKnownPosition(context.Context) (*entity.GeoPoint, error) {
	if d.cfg.LastKnownLatitude == nil || d.cfg.LastKnownLongitude == nil {
		return nil, nil
	}

	return &entity.GeoPoint{Latitude: *d.cfg.LastKnownLatitude, Longitude: *d.cfg.LastKnownLongitude}, nil
}

func (d *simulatedDevice) ReverseGeocode(ctx context.Context, point entity.GeoPoint) (*entity.Placemark, error) {
	return d.geocoder.Reverse(ctx, point)
}

func (d *simulatedDevice) Geocode(ctx context.Context, address string) (*entity.GeoPoint, error) {
	return d.geocoder.Forward(ctx, address)
}
