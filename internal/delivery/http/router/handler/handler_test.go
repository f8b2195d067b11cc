package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"spotshare/internal/delivery/http/middleware"
	"spotshare/internal/delivery/http/response"
	"spotshare/internal/delivery/http/validator"
	"spotshare/internal/domain/entity"
	domainerrors "spotshare/internal/domain/errors"
	"spotshare/internal/errors"
	mockSvc "spotshare/internal/mocks/service"
	mockUsecase "spotshare/internal/mocks/usecase"
	"spotshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	echo     *echo.Echo
	listings *mockUsecase.MockListingUsecase
	search   *mockUsecase.MockSearchUsecase
	location *mockUsecase.MockLocationUsecase
	session  *mockUsecase.MockSessionUsecase
	qrcode   *mockSvc.MockQRCodeService
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	f := &handlerFixture{
		echo:     echo.New(),
		listings: mockUsecase.NewMockListingUsecase(t),
		search:   mockUsecase.NewMockSearchUsecase(t),
		location: mockUsecase.NewMockLocationUsecase(t),
		session:  mockUsecase.NewMockSessionUsecase(t),
		qrcode:   mockSvc.NewMockQRCodeService(t),
	}
	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	listingHandler := NewListingHandler(f.listings, f.search, f.location, f.qrcode)
	locationHandler := NewLocationHandler(f.location)
	sessionHandler := NewSessionHandler(f.session)

	f.echo.GET("/health", HealthCheck)
	f.echo.GET("/v1/listings", listingHandler.Search)
	f.echo.GET("/v1/listings/map", listingHandler.Map)
	f.echo.GET("/v1/listings/:id", listingHandler.Get)
	f.echo.GET("/v1/listings/:id/qr", listingHandler.ShareCode)
	f.echo.GET("/v1/listings/scan", listingHandler.Scan)
	f.echo.GET("/v1/location", locationHandler.Get)
	f.echo.POST("/v1/location/refresh", locationHandler.Refresh)
	f.echo.GET("/v1/session", sessionHandler.Get)

	return f
}

func (f *handlerFixture) do(method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

type envelope struct {
	response.Response
	Data json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func ptr[T any](v T) *T { return &v }

func defaultCriteria() entity.SearchCriteria {
	return entity.DefaultSearchCriteria(0, 25, "distance")
}

func sampleListing() *entity.Listing {
	return &entity.Listing{
		ID:           "L1",
		OwnerID:      "ann",
		OwnerName:    "Ann",
		Title:        "Covered driveway",
		Location:     entity.GeoPoint{Latitude: 37.77, Longitude: -122.42, City: "San Francisco"},
		PricePerHour: 4.5,
		IsAvailable:  true,
		SpotType:     entity.SpotTypeDriveway,
		Amenities:    []entity.Amenity{entity.AmenityCovered},
		CreatedAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestHealthCheck(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
}

func TestListingHandler_Search(t *testing.T) {
	f := newHandlerFixture(t)
	f.search.EXPECT().DefaultCriteria().Return(defaultCriteria())

	var got *usecase.SearchInput
	f.search.EXPECT().Search(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, input *usecase.SearchInput) []*usecase.SearchResult {
			got = input

			return []*usecase.SearchResult{{Listing: sampleListing(), DistanceKm: ptr(0.85), DistanceLabel: "850 m"}}
		})

	rec := f.do(http.MethodGet, "/v1/listings?q=driveway&maxPrice=10&types=Garage,driveway&sort=price")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "driveway", got.Criteria.Query)
	assert.Equal(t, 10.0, got.Criteria.PriceCeiling)
	assert.Equal(t, 25.0, got.Criteria.DistanceCeilingKm, "unset parameters keep the defaults")
	assert.Equal(t, []entity.SpotType{entity.SpotTypeGarage, entity.SpotTypeDriveway}, got.Criteria.SpotTypes)
	assert.Equal(t, entity.SortByPrice, got.Criteria.SortBy)
	assert.Nil(t, got.Origin)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Count)

	var results []SearchResultResponse
	require.NoError(t, json.Unmarshal(env.Data, &results))
	require.Len(t, results, 1)
	assert.Equal(t, "L1", results[0].ID)
	assert.Equal(t, "driveway", results[0].SpotType)
	assert.Equal(t, []string{"covered"}, results[0].Amenities)
	assert.Equal(t, "850 m", results[0].DistanceLabel)
}

func TestListingHandler_SearchNear(t *testing.T) {
	f := newHandlerFixture(t)
	origin := &entity.GeoPoint{Latitude: 40.71, Longitude: -74.0}
	f.search.EXPECT().DefaultCriteria().Return(defaultCriteria())
	f.location.EXPECT().Geocode(mock.Anything, "Times Square").Return(origin, nil)
	f.search.EXPECT().Search(mock.Anything, mock.MatchedBy(func(in *usecase.SearchInput) bool {
		return in.Origin == origin
	})).Return(nil)

	rec := f.do(http.MethodGet, "/v1/listings?near=Times+Square")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}

func TestListingHandler_SearchNearUnknownAddress(t *testing.T) {
	f := newHandlerFixture(t)
	f.search.EXPECT().DefaultCriteria().Return(defaultCriteria())
	f.location.EXPECT().Geocode(mock.Anything, "nowhere").
		Return(nil, domainerrors.ErrGeocodingFailed.WithDetails("no match"))

	rec := f.do(http.MethodGet, "/v1/listings?near=nowhere")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "GEOCODING_FAILED", env.Error.Code)
}

func TestListingHandler_SearchValidation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "price not a number", query: "maxPrice=cheap"},
		{name: "negative distance", query: "maxDistanceKm=-1"},
		{name: "zero price ceiling", query: "maxPrice=0"},
		{name: "zero distance ceiling", query: "maxDistanceKm=0"},
		{name: "unknown type", query: "types=boat"},
		{name: "unknown sort", query: "sort=newest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)

			rec := f.do(http.MethodGet, "/v1/listings?"+tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestListingHandler_Map(t *testing.T) {
	f := newHandlerFixture(t)
	fc := geojson.NewFeatureCollection()
	f.search.EXPECT().DefaultCriteria().Return(defaultCriteria())
	f.search.EXPECT().MapFeatures(mock.Anything, mock.Anything).Return(fc)

	rec := f.do(http.MethodGet, "/v1/listings/map")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, rec.Body.String())
}

func TestListingHandler_Get(t *testing.T) {
	f := newHandlerFixture(t)
	f.listings.EXPECT().GetByID("L1").Return(sampleListing(), true)
	f.listings.EXPECT().GetByID("gone").Return(nil, false)

	rec := f.do(http.MethodGet, "/v1/listings/L1")
	require.Equal(t, http.StatusOK, rec.Code)
	var listing ListingResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &listing))
	assert.Equal(t, "Covered driveway", listing.Title)
	assert.Equal(t, "San Francisco", listing.Location.City)
	assert.Equal(t, []string{}, listing.Images)

	rec = f.do(http.MethodGet, "/v1/listings/gone")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "LISTING_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestListingHandler_ShareCode(t *testing.T) {
	f := newHandlerFixture(t)
	f.listings.EXPECT().GetByID("L1").Return(sampleListing(), true)
	f.qrcode.EXPECT().GenerateListingQR("L1").Return([]byte("\x89PNG"), nil)

	rec := f.do(http.MethodGet, "/v1/listings/L1/qr")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestListingHandler_ShareCodeFailure(t *testing.T) {
	f := newHandlerFixture(t)
	f.listings.EXPECT().GetByID("L1").Return(sampleListing(), true)
	f.qrcode.EXPECT().GenerateListingQR("L1").Return(nil, errors.New("encoder failed"))

	rec := f.do(http.MethodGet, "/v1/listings/L1/qr")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "encoder failed")
}

func TestListingHandler_Scan(t *testing.T) {
	link := "https://spotshare.app/listings/L1"

	t.Run("resolves the listing", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.qrcode.EXPECT().ParseListingQR(link).Return("L1", nil)
		f.listings.EXPECT().GetByID("L1").Return(sampleListing(), true)

		rec := f.do(http.MethodGet, "/v1/listings/scan?data="+url.QueryEscape(link))

		require.Equal(t, http.StatusOK, rec.Code)
		var got ListingResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
		assert.Equal(t, "L1", got.ID)
	})

	t.Run("foreign link", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.qrcode.EXPECT().ParseListingQR("https://evil.example/x").Return("", errors.New("invalid QR code host: evil.example"))

		rec := f.do(http.MethodGet, "/v1/listings/scan?data="+url.QueryEscape("https://evil.example/x"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("listing gone", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.qrcode.EXPECT().ParseListingQR(link).Return("L1", nil)
		f.listings.EXPECT().GetByID("L1").Return(nil, false)

		rec := f.do(http.MethodGet, "/v1/listings/scan?data="+url.QueryEscape(link))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLocationHandler(t *testing.T) {
	f := newHandlerFixture(t)
	f.location.EXPECT().State().Return(entity.LocationState{Status: entity.LocationUnknown})
	f.location.EXPECT().RequestCurrentLocation(mock.Anything).Return(entity.LocationState{
		Status: entity.LocationKnown,
		Point:  &entity.GeoPoint{Latitude: 1, Longitude: 2},
	})

	rec := f.do(http.MethodGet, "/v1/location")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"unknown","canAskAgain":false}`, string(decodeEnvelope(t, rec).Data))

	rec = f.do(http.MethodPost, "/v1/location/refresh")
	require.Equal(t, http.StatusOK, rec.Code)
	var state LocationResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &state))
	assert.Equal(t, "known", state.Status)
	require.NotNil(t, state.Point)
	assert.Equal(t, 2.0, state.Point.Longitude)
}

func TestLocationHandler_DeniedIsNotAnError(t *testing.T) {
	f := newHandlerFixture(t)
	f.location.EXPECT().RequestCurrentLocation(mock.Anything).Return(entity.LocationState{
		Status:  entity.LocationDenied,
		Message: "Location permission denied",
	})

	rec := f.do(http.MethodPost, "/v1/location/refresh")

	require.Equal(t, http.StatusOK, rec.Code)
	var state LocationResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &state))
	assert.Equal(t, "denied", state.Status)
	assert.Equal(t, "Location permission denied", state.Message)
}

func TestSessionHandler(t *testing.T) {
	f := newHandlerFixture(t)
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	f.session.EXPECT().State().Return(entity.Session{
		State:     entity.AuthStateAuthenticated,
		Identity:  &entity.Identity{ID: "ann", Email: "ann@example.com", Name: "Ann", Role: entity.RoleHomeowner},
		ExpiresAt: expires,
	}).Once()
	f.session.EXPECT().State().Return(entity.Session{State: entity.AuthStateUnauthenticated}).Once()

	rec := f.do(http.MethodGet, "/v1/session")
	require.Equal(t, http.StatusOK, rec.Code)
	var session SessionResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &session))
	assert.Equal(t, "authenticated", session.State)
	require.NotNil(t, session.Identity)
	assert.Equal(t, "homeowner", session.Identity.Role)
	require.NotNil(t, session.ExpiresAt)
	assert.True(t, expires.Equal(*session.ExpiresAt))

	rec = f.do(http.MethodGet, "/v1/session")
	assert.JSONEq(t, `{"state":"unauthenticated"}`, string(decodeEnvelope(t, rec).Data))
}
