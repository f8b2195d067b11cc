package impl

import (
	"io"
	"log/slog"
	"time"

	"spotshare/config"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Listings.MinPricePerHour = 1
	cfg.Listings.MaxPricePerHour = 100
	cfg.Listings.MaxImages = 2
	cfg.Location.Timeout = 50 * time.Millisecond

	return cfg
}

func ptr[T any](v T) *T { return &v }
