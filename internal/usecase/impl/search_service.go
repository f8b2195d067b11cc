package impl

import (
	"context"
	"log/slog"

	"spotshare/config"
	deliverycontext "spotshare/internal/delivery/context"
	"spotshare/internal/domain/entity"
	"spotshare/internal/domain/geo"
	"spotshare/internal/domain/search"
	"spotshare/internal/usecase"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	listings usecase.ListingUsecase
	location usecase.LocationUsecase
	defaults entity.SearchCriteria
	logger   *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Listings usecase.ListingUsecase
	Location usecase.LocationUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	defaults := entity.DefaultSearchCriteria(config.DefaultPriceCeiling, config.DefaultDistanceCeilingKm, string(entity.SortByDistance))
	if params.Config != nil && params.Config.Search != nil {
		defaults = entity.DefaultSearchCriteria(
			params.Config.Search.PriceCeiling,
			params.Config.Search.DistanceCeilingKm,
			params.Config.Search.SortBy,
		)
	}

	return &searchService{
		listings: params.Listings,
		location: params.Location,
		defaults: defaults,
		logger:   params.Logger,
	}
}

// DefaultCriteria returns a fresh copy of the configured starting criteria.
func (s *searchService) DefaultCriteria() entity.SearchCriteria {
	c := s.defaults
	c.SpotTypes = append([]entity.SpotType(nil), s.defaults.SpotTypes...)

	return c
}

// Search filters and sorts the available listings.
func (s *searchService) Search(ctx context.Context, input *usecase.SearchInput) []*usecase.SearchResult {
	criteria, origin := s.resolve(input)

	results := search.ApplyWithDistances(s.listings.AllAvailable(), criteria, origin)

	out := make([]*usecase.SearchResult, 0, len(results))
	for _, r := range results {
		res := &usecase.SearchResult{Listing: r.Listing, DistanceKm: r.DistanceKm}
		if r.DistanceKm != nil {
			res.DistanceLabel = geo.FormatDistance(*r.DistanceKm)
		}
		out = append(out, res)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Search completed",
		slog.String("query", criteria.Query),
		slog.Bool("has_origin", origin != nil),
		slog.Int("results", len(out)),
	)

	return out
}

// MapFeatures returns the search results as point features for a map view.
func (s *searchService) MapFeatures(ctx context.Context, input *usecase.SearchInput) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, r := range s.Search(ctx, input) {
		l := r.Listing
		f := geojson.NewFeature(geo.ToOrbPoint(l.Location))
		f.ID = l.ID
		f.Properties["title"] = l.Title
		f.Properties["pricePerHour"] = l.PricePerHour
		f.Properties["spotType"] = string(l.SpotType)
		f.Properties["address"] = l.Location.Address
		if l.Rating != nil {
			f.Properties["rating"] = *l.Rating
		}
		if r.DistanceKm != nil {
			f.Properties["distanceKm"] = *r.DistanceKm
			f.Properties["distanceLabel"] = r.DistanceLabel
		}
		fc.Append(f)
	}

	return fc
}

// resolve fills missing criteria from the defaults and picks the origin:
// an explicit one first, then the known device location.
func (s *searchService) resolve(input *usecase.SearchInput) (entity.SearchCriteria, *entity.GeoPoint) {
	if input == nil {
		input = &usecase.SearchInput{Criteria: s.DefaultCriteria()}
	}

	criteria := input.Criteria
	if criteria.SortBy == "" {
		criteria.SortBy = s.defaults.SortBy
	}

	if input.Origin != nil {
		origin := *input.Origin

		return criteria, &origin
	}

	if state := s.location.State(); state.IsKnown() && state.Point != nil {
		origin := *state.Point

		return criteria, &origin
	}

	return criteria, nil
}
