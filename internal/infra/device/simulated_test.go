package device

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"spotshare/config"
	"spotshare/internal/domain/entity"
	"spotshare/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func ptr[T any](v T) *T { return &v }

func TestSimulatedDevice_Permission(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DeviceConfig
		want entity.Permission
	}{
		{
			name: "already granted",
			cfg:  config.DeviceConfig{PermissionGranted: true, CanAskAgain: true},
			want: entity.Permission{Granted: true, CanAskAgain: true},
		},
		{
			name: "granted on request",
			cfg:  config.DeviceConfig{CanAskAgain: true, GrantOnRequest: true},
			want: entity.Permission{Granted: true, CanAskAgain: true},
		},
		{
			name: "refused on request",
			cfg:  config.DeviceConfig{CanAskAgain: true},
			want: entity.Permission{Granted: false, CanAskAgain: false},
		},
		{
			name: "cannot ask again",
			cfg:  config.DeviceConfig{GrantOnRequest: true},
			want: entity.Permission{Granted: false, CanAskAgain: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newSimulatedDevice(tt.cfg, nil)

			got, err := d.RequestPermission(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			status, err := d.PermissionStatus(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestSimulatedDevice_CurrentPosition(t *testing.T) {
	t.Run("configured fix", func(t *testing.T) {
		d := newSimulatedDevice(config.DeviceConfig{ServicesEnabled: true, Latitude: ptr(1.0), Longitude: ptr(2.0)}, nil)

		p, err := d.CurrentPosition(context.Background(), entity.AccuracyBalanced)
		require.NoError(t, err)
		assert.Equal(t, &entity.GeoPoint{Latitude: 1, Longitude: 2}, p)
	})

	t.Run("services disabled", func(t *testing.T) {
		d := newSimulatedDevice(config.DeviceConfig{Latitude: ptr(1.0), Longitude: ptr(2.0)}, nil)

		_, err := d.CurrentPosition(context.Background(), entity.AccuracyHigh)
		assert.ErrorIs(t, err, service.ErrLocationServicesDisabled)
	})

	t.Run("no fix waits for the deadline", func(t *testing.T) {
		d := newSimulatedDevice(config.DeviceConfig{ServicesEnabled: true}, nil)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := d.CurrentPosition(ctx, entity.AccuracyLow)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestSimulatedDevice_LastKnownPosition(t *testing.T) {
	none, err := newSimulatedDevice(config.DeviceConfig{}, nil).LastKnownPosition(context.Background())
	require.NoError(t, err)
	assert.Nil(t, none)

	d := newSimulatedDevice(config.DeviceConfig{LastKnownLatitude: ptr(3.0), LastKnownLongitude: ptr(4.0)}, nil)
	last, err := d.LastKnownPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &entity.GeoPoint{Latitude: 3, Longitude: 4}, last)
}

func TestSimulatedDevice_Geocoding(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		d := newSimulatedDevice(config.DeviceConfig{}, nil)

		_, err := d.ReverseGeocode(context.Background(), entity.GeoPoint{})
		assert.ErrorIs(t, err, ErrGeocodingDisabled)
		_, err = d.Geocode(context.Background(), "x")
		assert.ErrorIs(t, err, ErrGeocodingDisabled)
	})

	t.Run("delegates", func(t *testing.T) {
		next := &countingGeocoder{}
		d := newSimulatedDevice(config.DeviceConfig{}, next)

		pm, err := d.ReverseGeocode(context.Background(), entity.GeoPoint{})
		require.NoError(t, err)
		assert.Equal(t, "Springfield", pm.City)

		p, err := d.Geocode(context.Background(), "1 Elm St")
		require.NoError(t, err)
		assert.Equal(t, "1 Elm St", p.Address)
	})
}

func TestNewProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("requires location config", func(t *testing.T) {
		_, err := NewProvider(Params{Lifecycle: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: logger})
		assert.Error(t, err)
	})

	t.Run("rejects bad cache url", func(t *testing.T) {
		cfg := &config.Config{Location: &config.LocationConfig{
			Geocoder: config.GeocoderConfig{Enabled: true, BaseURL: "http://geo", CacheURL: "ftp://nope"},
		}}

		_, err := NewProvider(Params{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
		assert.Error(t, err)
	})

	t.Run("disabled geocoder", func(t *testing.T) {
		cfg := &config.Config{Location: &config.LocationConfig{}}

		p, err := NewProvider(Params{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
		require.NoError(t, err)
		_, err = p.Geocode(context.Background(), "x")
		assert.ErrorIs(t, err, ErrGeocodingDisabled)
	})
}
