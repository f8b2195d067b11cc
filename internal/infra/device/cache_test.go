package device

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"spotshare/internal/domain/entity"
	"spotshare/internal/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGeocoder struct {
	reverse int
	forward int
	err     error
}

func (g *countingGeocoder) Reverse(context.Context, entity.GeoPoint) (*entity.Placemark, error) {
	g.reverse++
	if g.err != nil {
		return nil, g.err
	}

	return &entity.Placemark{Address: "1 Elm St", City: "Springfield"}, nil
}

func (g *countingGeocoder) Forward(_ context.Context, address string) (*entity.GeoPoint, error) {
	g.forward++
	if g.err != nil {
		return nil, g.err
	}

	return &entity.GeoPoint{Latitude: 1.5, Longitude: 2.5, Address: address}, nil
}

func newTestCache(t *testing.T, next Geocoder) (*cachedGeocoder, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return newCachedGeocoder(next, client, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil))), mr
}

func TestCachedGeocoder_Reverse(t *testing.T) {
	next := &countingGeocoder{}
	cache, mr := newTestCache(t, next)
	point := entity.GeoPoint{Latitude: 37.774929, Longitude: -122.419416}

	first, err := cache.Reverse(context.Background(), point)
	require.NoError(t, err)
	second, err := cache.Reverse(context.Background(), point)
	require.NoError(t, err)

	assert.Equal(t, 1, next.reverse)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists("geocode:rev:37.77493,-122.41942"))
	assert.Equal(t, time.Hour, mr.TTL("geocode:rev:37.77493,-122.41942"))
}

func TestCachedGeocoder_ForwardNormalizesAddress(t *testing.T) {
	next := &countingGeocoder{}
	cache, mr := newTestCache(t, next)

	_, err := cache.Forward(context.Background(), "1  Elm St ")
	require.NoError(t, err)
	got, err := cache.Forward(context.Background(), "1 elm st")
	require.NoError(t, err)

	assert.Equal(t, 1, next.forward)
	assert.InDelta(t, 1.5, got.Latitude, 1e-9)
	assert.True(t, mr.Exists("geocode:fwd:1 elm st"))
}

func TestCachedGeocoder_Expiry(t *testing.T) {
	next := &countingGeocoder{}
	cache, mr := newTestCache(t, next)

	_, _ = cache.Forward(context.Background(), "a")
	mr.FastForward(2 * time.Hour)
	_, _ = cache.Forward(context.Background(), "a")

	assert.Equal(t, 2, next.forward)
}

func TestCachedGeocoder_ErrorsAreNotCached(t *testing.T) {
	next := &countingGeocoder{err: errors.New("offline")}
	cache, mr := newTestCache(t, next)

	_, err := cache.Forward(context.Background(), "a")
	require.Error(t, err)

	assert.False(t, mr.Exists("geocode:fwd:a"))
}

func TestCachedGeocoder_FallsThroughWhenRedisDown(t *testing.T) {
	next := &countingGeocoder{}
	cache, mr := newTestCache(t, next)
	mr.Close()

	point, err := cache.Forward(context.Background(), "a")

	require.NoError(t, err)
	assert.Equal(t, "a", point.Address)
	assert.Equal(t, 1, next.forward)
}

func TestCachedGeocoder_CorruptEntry(t *testing.T) {
	next := &countingGeocoder{}
	cache, mr := newTestCache(t, next)
	require.NoError(t, mr.Set("geocode:fwd:a", "{not json"))

	_, err := cache.Forward(context.Background(), "a")

	require.NoError(t, err)
	assert.Equal(t, 1, next.forward)
}
