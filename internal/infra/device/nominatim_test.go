package device

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"spotshare/config"
	"spotshare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nominatimStub struct {
	mu       sync.Mutex
	queries  []url.Values
	agents   []string
	status   int
	response string
}

func (s *nominatimStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.queries = append(s.queries, r.URL.Query())
	s.agents = append(s.agents, r.UserAgent())
	s.mu.Unlock()

	if s.status != 0 {
		w.WriteHeader(s.status)

		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(s.response))
}

func newTestNominatim(t *testing.T, stub *nominatimStub) (*nominatimGeocoder, string) {
	t.Helper()

	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	return newNominatimGeocoder(config.GeocoderConfig{
		Enabled:           true,
		BaseURL:           srv.URL + "/",
		UserAgent:         "spotshare-test",
		Timeout:           time.Second,
		RequestsPerSecond: 1000,
	}), srv.URL
}

func TestNominatim_Reverse(t *testing.T) {
	stub := &nominatimStub{response: `{
		"lat": "37.7749", "lon": "-122.4194",
		"address": {"house_number": "12", "road": "Main St", "town": "Springfield", "state": "CA", "postcode": "94000"}
	}`}
	g, _ := newTestNominatim(t, stub)

	pm, err := g.Reverse(context.Background(), entity.GeoPoint{Latitude: 37.7749, Longitude: -122.4194})
	require.NoError(t, err)

	assert.Equal(t, &entity.Placemark{Address: "12 Main St", City: "Springfield", State: "CA", PostalCode: "94000"}, pm)
	require.Len(t, stub.queries, 1)
	assert.Equal(t, "37.7749", stub.queries[0].Get("lat"))
	assert.Equal(t, "-122.4194", stub.queries[0].Get("lon"))
	assert.Equal(t, "jsonv2", stub.queries[0].Get("format"))
	assert.Equal(t, "spotshare-test", stub.agents[0])
}

func TestNominatim_ReverseUnknownPlace(t *testing.T) {
	g, _ := newTestNominatim(t, &nominatimStub{response: `{"error": "Unable to geocode"}`})

	_, err := g.Reverse(context.Background(), entity.GeoPoint{})

	assert.ErrorIs(t, err, ErrNoGeocodeResult)
}

func TestNominatim_Forward(t *testing.T) {
	stub := &nominatimStub{response: `[{
		"lat": "40.7128", "lon": "-74.0060",
		"address": {"road": "Broadway", "city": "New York", "state": "NY"}
	}]`}
	g, _ := newTestNominatim(t, stub)

	point, err := g.Forward(context.Background(), "Broadway, New York")
	require.NoError(t, err)

	assert.InDelta(t, 40.7128, point.Latitude, 1e-9)
	assert.InDelta(t, -74.0060, point.Longitude, 1e-9)
	assert.Equal(t, "Broadway", point.Address)
	assert.Equal(t, "New York", point.City)
	assert.Equal(t, "Broadway, New York", stub.queries[0].Get("q"))
	assert.Equal(t, "1", stub.queries[0].Get("limit"))
}

func TestNominatim_ForwardErrors(t *testing.T) {
	t.Run("no match", func(t *testing.T) {
		g, _ := newTestNominatim(t, &nominatimStub{response: `[]`})

		_, err := g.Forward(context.Background(), "nowhere")
		assert.ErrorIs(t, err, ErrNoGeocodeResult)
	})

	t.Run("bad coordinates", func(t *testing.T) {
		g, _ := newTestNominatim(t, &nominatimStub{response: `[{"lat": "north", "lon": "1"}]`})

		_, err := g.Forward(context.Background(), "x")
		assert.Error(t, err)
	})

	t.Run("server error", func(t *testing.T) {
		g, _ := newTestNominatim(t, &nominatimStub{status: http.StatusTooManyRequests})

		_, err := g.Forward(context.Background(), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})
}

func TestNominatim_CanceledContext(t *testing.T) {
	stub := &nominatimStub{response: `[]`}
	g, _ := newTestNominatim(t, stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Forward(ctx, "x")

	assert.Error(t, err)
	assert.Empty(t, stub.queries)
}
