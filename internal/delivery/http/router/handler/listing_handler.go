package handler

import (
	"net/http"
	"strings"

	"spotshare/internal/delivery/http/response"
	"spotshare/internal/domain/entity"
	domainerrors "spotshare/internal/domain/errors"
	"spotshare/internal/domain/service"
	"spotshare/internal/errors"
	"spotshare/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ListingHandler serves the available listings.
type ListingHandler struct {
	listings usecase.ListingUsecase
	search   usecase.SearchUsecase
	location usecase.LocationUsecase
	qrcode   service.QRCodeService
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(
	listings usecase.ListingUsecase,
	search usecase.SearchUsecase,
	location usecase.LocationUsecase,
	qrcode service.QRCodeService,
) *ListingHandler {
	return &ListingHandler{
		listings: listings,
		search:   search,
		location: location,
		qrcode:   qrcode,
	}
}

// searchQuery is the query string of the search endpoints.
type searchQuery struct {
	Query         string   `validate:"max=200"`
	MaxPrice      *float64 `validate:"omitempty,gt=0"`
	MaxDistanceKm *float64 `validate:"omitempty,gt=0"`
	Types         []string `validate:"dive,oneof=all driveway garage carport street lot other"`
	Sort          string   `validate:"omitempty,oneof=distance price rating"`
	Near          string   `validate:"max=200"`
}

// Search returns the available listings matching the query, sorted and with distances.
func (h *ListingHandler) Search(c echo.Context) error {
	input, err := h.searchInput(c)
	if err != nil {
		return err
	}

	results := h.search.Search(c.Request().Context(), input)

	return response.List(c, toSearchResultsResponse(results))
}

// Map returns the same search as a GeoJSON FeatureCollection.
func (h *ListingHandler) Map(c echo.Context) error {
	input, err := h.searchInput(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, h.search.MapFeatures(c.Request().Context(), input))
}

// Get returns one available listing.
func (h *ListingHandler) Get(c echo.Context) error {
	listing, ok := h.listings.GetByID(c.Param("id"))
	if !ok {
		return errors.WithStack(domainerrors.ErrListingNotFound)
	}

	return response.OK(c, toListingResponse(listing))
}

// ShareCode returns the PNG QR code linking to an available listing.
func (h *ListingHandler) ShareCode(c echo.Context) error {
	listing, ok := h.listings.GetByID(c.Param("id"))
	if !ok {
		return errors.WithStack(domainerrors.ErrListingNotFound)
	}

	png, err := h.qrcode.GenerateListingQR(listing.ID)
	if err != nil {
		return errors.Wrap(err, "generate share code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Scan resolves a scanned share code link to the listing it points at.
func (h *ListingHandler) Scan(c echo.Context) error {
	id, err := h.qrcode.ParseListingQR(c.QueryParam("data"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	listing, ok := h.listings.GetByID(id)
	if !ok {
		return errors.WithStack(domainerrors.ErrListingNotFound)
	}

	return response.OK(c, toListingResponse(listing))
}

func (h *ListingHandler) searchInput(c echo.Context) (*usecase.SearchInput, error) {
	var q searchQuery
	err := echo.QueryParamsBinder(c).
		String("q", &q.Query).
		String("sort", &q.Sort).
		String("near", &q.Near).
		BindError()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if q.MaxPrice, err = optionalFloat(c, "maxPrice"); err != nil {
		return nil, err
	}
	if q.MaxDistanceKm, err = optionalFloat(c, "maxDistanceKm"); err != nil {
		return nil, err
	}
	for _, t := range strings.Split(c.QueryParam("types"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			q.Types = append(q.Types, strings.ToLower(t))
		}
	}

	if err := c.Validate(&q); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	criteria := h.search.DefaultCriteria()
	criteria.Query = q.Query
	if q.MaxPrice != nil {
		criteria.PriceCeiling = *q.MaxPrice
	}
	if q.MaxDistanceKm != nil {
		criteria.DistanceCeilingKm = *q.MaxDistanceKm
	}
	if len(q.Types) > 0 {
		criteria.SpotTypes = make([]entity.SpotType, 0, len(q.Types))
		for _, t := range q.Types {
			criteria.SpotTypes = append(criteria.SpotTypes, entity.SpotType(t))
		}
	}
	if q.Sort != "" {
		criteria.SortBy = entity.ParseSortKey(q.Sort)
	}

	input := &usecase.SearchInput{Criteria: criteria}
	if strings.TrimSpace(q.Near) != "" {
		origin, err := h.location.Geocode(c.Request().Context(), q.Near)
		if err != nil {
			return nil, err
		}
		input.Origin = origin
	}

	return input, nil
}

func optionalFloat(c echo.Context, name string) (*float64, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}

	var v float64
	if err := echo.QueryParamsBinder(c).Float64(name, &v).BindError(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a number")
	}

	return &v, nil
}
