package device

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"spotshare/internal/domain/entity"
	"spotshare/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	forwardKeyPrefix = "geocode:fwd:" // geocode:fwd:{normalized address}
	reverseKeyPrefix = "geocode:rev:" // geocode:rev:{lat},{lon} at 5 decimals
)

// cachedGeocoder answers repeated lookups from redis. Cache failures fall
// through to the wrapped geocoder.
type cachedGeocoder struct {
	next   Geocoder
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func newCachedGeocoder(next Geocoder, client *redis.Client, ttl time.Duration, logger *slog.Logger) *cachedGeocoder {
	return &cachedGeocoder{next: next, client: client, ttl: ttl, logger: logger}
}

func (c *cachedGeocoder) Reverse(ctx context.Context, point entity.GeoPoint) (*entity.Placemark, error) {
	key := reverseKey(point)

	var cached entity.Placemark
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	placemark, err := c.next.Reverse(ctx, point)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, placemark)

	return placemark, nil
}

func (c *cachedGeocoder) Forward(ctx context.Context, address string) (*entity.GeoPoint, error) {
	key := forwardKeyPrefix + strings.ToLower(strings.Join(strings.Fields(address), " "))

	var cached entity.GeoPoint
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	point, err := c.next.Forward(ctx, address)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, point)

	return point, nil
}

func (c *cachedGeocoder) load(ctx context.Context, key string, out any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Geocode cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("Discarding corrupt geocode cache entry", slog.String("key", key), slog.Any("error", err))

		return false
	}

	return true
}

func (c *cachedGeocoder) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Geocode cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func reverseKey(p entity.GeoPoint) string {
	return fmt.Sprintf("%s%s,%s", reverseKeyPrefix,
		strconv.FormatFloat(p.Latitude, 'f', 5, 64),
		strconv.FormatFloat(p.Longitude, 'f', 5, 64),
	)
}
