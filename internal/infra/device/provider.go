package device

import (
	"context"
	"log/slog"

	"spotshare/config"
	"spotshare/internal/domain/service"
	"spotshare/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the location provider, injected by Fx.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProvider builds the simulated device. Geocoding goes to Nominatim when
// enabled, through a redis cache when location.geocoder.cacheUrl is set.
func NewProvider(params Params) (service.DeviceLocationProvider, error) {
	cfg := params.Config.Location
	if cfg == nil {
		return nil, errors.New("location config is required")
	}

	geocoder, err := newGeocoder(params.Lifecycle, cfg.Geocoder, params.Logger)
	if err != nil {
		return nil, err
	}

	return newSimulatedDevice(cfg.Device, geocoder), nil
}

func newGeocoder(lc fx.Lifecycle, cfg config.GeocoderConfig, logger *slog.Logger) (Geocoder, error) {
	if !cfg.Enabled || cfg.BaseURL == "" {
		logger.Info("Geocoding disabled")

		return disabledGeocoder{}, nil
	}

	var geocoder Geocoder = newNominatimGeocoder(cfg)
	if cfg.CacheURL == "" {
		return geocoder, nil
	}

	opts, err := redis.ParseURL(cfg.CacheURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid geocoder cache url")
	}
	client := redis.NewClient(opts)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	logger.Info("Geocoder cache enabled", slog.String("addr", opts.Addr), slog.Duration("ttl", cfg.CacheTTL))

	return newCachedGeocoder(geocoder, client, cfg.CacheTTL, logger), nil
}
