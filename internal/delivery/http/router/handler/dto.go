package handler

import (
	"time"

	"spotshare/internal/domain/entity"
	"spotshare/internal/usecase"
)

// GeoPointResponse is the JSON view of a position.
type GeoPointResponse struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address,omitempty"`
	City       string  `json:"city,omitempty"`
	State      string  `json:"state,omitempty"`
	PostalCode string  `json:"postalCode,omitempty"`
}

// ListingResponse is the JSON view of a listing.
type ListingResponse struct {
	ID           string           `json:"id"`
	OwnerID      string           `json:"ownerId"`
	OwnerName    string           `json:"ownerName"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Location     GeoPointResponse `json:"location"`
	PricePerHour float64          `json:"pricePerHour"`
	PricePerDay  *float64         `json:"pricePerDay,omitempty"`
	Images       []string         `json:"images"`
	IsAvailable  bool             `json:"isAvailable"`
	SpotType     string           `json:"spotType"`
	Amenities    []string         `json:"amenities"`
	Rating       *float64         `json:"rating,omitempty"`
	ReviewCount  int              `json:"reviewCount"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// SearchResultResponse is a listing with its distance from the search origin.
type SearchResultResponse struct {
	ListingResponse
	DistanceKm    *float64 `json:"distanceKm,omitempty"`
	DistanceLabel string   `json:"distanceLabel,omitempty"`
}

// LocationResponse is the JSON view of the location session.
type LocationResponse struct {
	Status      string            `json:"status"`
	Point       *GeoPointResponse `json:"point,omitempty"`
	Message     string            `json:"message,omitempty"`
	CanAskAgain bool              `json:"canAskAgain"`
}

// IdentityResponse is the JSON view of the signed-in identity.
type IdentityResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// SessionResponse is the JSON view of the session.
type SessionResponse struct {
	State     string            `json:"state"`
	Identity  *IdentityResponse `json:"identity,omitempty"`
	ExpiresAt *time.Time        `json:"expiresAt,omitempty"`
}

func toGeoPointResponse(p entity.GeoPoint) GeoPointResponse {
	return GeoPointResponse{
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Address:    p.Address,
		City:       p.City,
		State:      p.State,
		PostalCode: p.PostalCode,
	}
}

func toListingResponse(l *entity.Listing) ListingResponse {
	amenities := make([]string, 0, len(l.Amenities))
	for _, a := range l.Amenities {
		amenities = append(amenities, string(a))
	}
	images := l.Images
	if images == nil {
		images = []string{}
	}

	return ListingResponse{
		ID:           l.ID,
		OwnerID:      l.OwnerID,
		OwnerName:    l.OwnerName,
		Title:        l.Title,
		Description:  l.Description,
		Location:     toGeoPointResponse(l.Location),
		PricePerHour: l.PricePerHour,
		PricePerDay:  l.PricePerDay,
		Images:       images,
		IsAvailable:  l.IsAvailable,
		SpotType:     l.SpotType.String(),
		Amenities:    amenities,
		Rating:       l.Rating,
		ReviewCount:  l.ReviewCount,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func toSearchResultsResponse(results []*usecase.SearchResult) []SearchResultResponse {
	out := make([]SearchResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, SearchResultResponse{
			ListingResponse: toListingResponse(r.Listing),
			DistanceKm:      r.DistanceKm,
			DistanceLabel:   r.DistanceLabel,
		})
	}

	return out
}

func toLocationResponse(s entity.LocationState) LocationResponse {
	resp := LocationResponse{
		Status:      string(s.Status),
		Message:     s.Message,
		CanAskAgain: s.CanAskAgain,
	}
	if s.Point != nil {
		p := toGeoPointResponse(*s.Point)
		resp.Point = &p
	}

	return resp
}

func toSessionResponse(s entity.Session) SessionResponse {
	resp := SessionResponse{State: string(s.State)}
	if s.Identity != nil {
		resp.Identity = &IdentityResponse{
			ID:       s.Identity.ID,
			Email:    s.Identity.Email,
			Name:     s.Identity.Name,
			Role:     s.Identity.Role.String(),
			Phone:    s.Identity.Phone,
			PhotoURL: s.Identity.PhotoURL,
		}
	}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		resp.ExpiresAt = &exp
	}

	return resp
}
