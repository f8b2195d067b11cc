package device

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"spotshare/config"
	"spotshare/internal/domain/entity"
	"spotshare/internal/errors"

	"golang.org/x/time/rate"
)

// nominatimGeocoder talks to an OpenStreetMap Nominatim endpoint.
type nominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

func newNominatimGeocoder(cfg config.GeocoderConfig) *nominatimGeocoder {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &nominatimGeocoder{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(limit, 1),
	}
}

type nominatimAddress struct {
	HouseNumber string `json:"house_number"`
	Road        string `json:"road"`
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	State       string `json:"state"`
	Postcode    string `json:"postcode"`
}

type nominatimPlace struct {
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	DisplayName string           `json:"display_name"`
	Address     nominatimAddress `json:"address"`
	Error       string           `json:"error"`
}

// Reverse resolves the address fields of a coordinate.
func (g *nominatimGeocoder) Reverse(ctx context.Context, point entity.GeoPoint) (*entity.Placemark, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("addressdetails", "1")
	query.Set("lat", strconv.FormatFloat(point.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(point.Longitude, 'f', -1, 64))

	var place nominatimPlace
	if err := g.get(ctx, "/reverse", query, &place); err != nil {
		return nil, err
	}
	if place.Error != "" {
		return nil, errors.Wrap(ErrNoGeocodeResult, place.Error)
	}

	return place.placemark(), nil
}

// Forward resolves a free-text address to its best match.
func (g *nominatimGeocoder) Forward(ctx context.Context, address string) (*entity.GeoPoint, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("addressdetails", "1")
	query.Set("limit", "1")
	query.Set("q", address)

	var places []nominatimPlace
	if err := g.get(ctx, "/search", query, &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, ErrNoGeocodeResult
	}

	best := places[0]
	lat, err := strconv.ParseFloat(best.Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse latitude")
	}
	lon, err := strconv.ParseFloat(best.Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse longitude")
	}

	point := entity.GeoPoint{Latitude: lat, Longitude: lon}.WithPlacemark(best.placemark())

	return &point, nil
}

func (g *nominatimGeocoder) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "geocoder rate limit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "build geocoder request")
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "geocoder request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("geocoder returned %s after %s", resp.Status, time.Since(started).Round(time.Millisecond))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode geocoder response")
	}

	return nil
}

func (p nominatimPlace) placemark() *entity.Placemark {
	a := p.Address

	street := strings.TrimSpace(fmt.Sprintf("%s %s", a.HouseNumber, a.Road))
	city := a.City
	if city == "" {
		city = a.Town
	}
	if city == "" {
		city = a.Village
	}

	return &entity.Placemark{
		Address:    street,
		City:       city,
		State:      a.State,
		PostalCode: a.Postcode,
	}
}
