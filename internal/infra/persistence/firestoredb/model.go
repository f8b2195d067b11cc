// Package firestoredb implements the persistence layer on Cloud Firestore.
package firestoredb

import (
	"time"

	"spotshare/internal/domain/entity"

	"cloud.google.com/go/firestore"
)

const (
	listingsCollection = "listings"
	usersCollection    = "users"
)

// GeoPointModel mirrors the embedded location map of a listing document.
type GeoPointModel struct {
	Latitude   float64 `firestore:"latitude"`
	Longitude  float64 `firestore:"longitude"`
	Address    string  `firestore:"address,omitempty"`
	City       string  `firestore:"city,omitempty"`
	State      string  `firestore:"state,omitempty"`
	PostalCode string  `firestore:"postalCode,omitempty"`
}

// ListingModel mirrors a document of the 'listings' collection.
// Zero timestamps are filled in by the server on write.
type ListingModel struct {
	ID           string        `firestore:"-"`
	OwnerID      string        `firestore:"ownerId"`
	OwnerName    string        `firestore:"ownerName"`
	Title        string        `firestore:"title"`
	Description  string        `firestore:"description"`
	Location     GeoPointModel `firestore:"location"`
	PricePerHour float64       `firestore:"pricePerHour"`
	PricePerDay  *float64      `firestore:"pricePerDay,omitempty"`
	Images       []string      `firestore:"images"`
	IsAvailable  bool          `firestore:"isAvailable"`
	SpotType     string        `firestore:"spotType"`
	Amenities    []string      `firestore:"amenities"`
	Rating       *float64      `firestore:"rating,omitempty"`
	ReviewCount  int           `firestore:"reviewCount"`
	CreatedAt    time.Time     `firestore:"createdAt,serverTimestamp"`
	UpdatedAt    time.Time     `firestore:"updatedAt,serverTimestamp"`
}

// IdentityModel mirrors a document of the 'users' collection, keyed by identity ID.
type IdentityModel struct {
	ID        string    `firestore:"-"`
	Email     string    `firestore:"email"`
	Name      string    `firestore:"name"`
	Role      string    `firestore:"role"`
	PhotoURL  string    `firestore:"photoURL,omitempty"`
	Phone     string    `firestore:"phone,omitempty"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

func fromGeoPoint(p entity.GeoPoint) GeoPointModel {
	return GeoPointModel{
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Address:    p.Address,
		City:       p.City,
		State:      p.State,
		PostalCode: p.PostalCode,
	}
}

func (m GeoPointModel) toDomain() entity.GeoPoint {
	return entity.GeoPoint{
		Latitude:   m.Latitude,
		Longitude:  m.Longitude,
		Address:    m.Address,
		City:       m.City,
		State:      m.State,
		PostalCode: m.PostalCode,
	}
}

// fromListingDomain maps a listing to its document. ID and timestamps are
// left for the backend to assign.
func fromListingDomain(l *entity.Listing) *ListingModel {
	m := &ListingModel{
		OwnerID:      l.OwnerID,
		OwnerName:    l.OwnerName,
		Title:        l.Title,
		Description:  l.Description,
		Location:     fromGeoPoint(l.Location),
		PricePerHour: l.PricePerHour,
		PricePerDay:  l.PricePerDay,
		Images:       l.Images,
		IsAvailable:  l.IsAvailable,
		SpotType:     string(l.SpotType),
		Amenities:    make([]string, 0, len(l.Amenities)),
		Rating:       l.Rating,
		ReviewCount:  l.ReviewCount,
	}
	if m.Images == nil {
		m.Images = []string{}
	}
	for _, a := range entity.NormalizeAmenities(l.Amenities) {
		m.Amenities = append(m.Amenities, string(a))
	}

	return m
}

// toListingDomain maps a document to a listing. Unknown amenities are dropped
// and an unknown spot type reads as "other".
func toListingDomain(m *ListingModel) *entity.Listing {
	l := &entity.Listing{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		OwnerName:    m.OwnerName,
		Title:        m.Title,
		Description:  m.Description,
		Location:     m.Location.toDomain(),
		PricePerHour: m.PricePerHour,
		PricePerDay:  m.PricePerDay,
		Images:       m.Images,
		IsAvailable:  m.IsAvailable,
		SpotType:     entity.SpotType(m.SpotType),
		Amenities:    make([]entity.Amenity, 0, len(m.Amenities)),
		Rating:       m.Rating,
		ReviewCount:  m.ReviewCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if l.Images == nil {
		l.Images = []string{}
	}
	if !l.SpotType.IsValid() {
		l.SpotType = entity.SpotTypeOther
	}
	for _, raw := range m.Amenities {
		if a := entity.Amenity(raw); a.IsValid() {
			l.Amenities = append(l.Amenities, a)
		}
	}
	l.Amenities = entity.NormalizeAmenities(l.Amenities)
	if l.UpdatedAt.Before(l.CreatedAt) {
		l.UpdatedAt = l.CreatedAt
	}

	return l
}

// listingUpdates converts a patch into field updates. The server refreshes updatedAt.
func listingUpdates(p *entity.ListingPatch) []firestore.Update {
	updates := make([]firestore.Update, 0, 8)
	add := func(path string, value any) {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if p.OwnerName != nil {
		add("ownerName", *p.OwnerName)
	}
	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Location != nil {
		add("location", fromGeoPoint(*p.Location))
	}
	if p.PricePerHour != nil {
		add("pricePerHour", *p.PricePerHour)
	}
	if p.ClearPricePerDay {
		add("pricePerDay", firestore.Delete)
	} else if p.PricePerDay != nil {
		add("pricePerDay", *p.PricePerDay)
	}
	if p.Images != nil {
		images := *p.Images
		if images == nil {
			images = []string{}
		}
		add("images", images)
	}
	if p.IsAvailable != nil {
		add("isAvailable", *p.IsAvailable)
	}
	if p.SpotType != nil {
		add("spotType", string(*p.SpotType))
	}
	if p.Amenities != nil {
		amenities := make([]string, 0, len(*p.Amenities))
		for _, a := range entity.NormalizeAmenities(*p.Amenities) {
			amenities = append(amenities, string(a))
		}
		add("amenities", amenities)
	}
	if p.Rating != nil {
		add("rating", *p.Rating)
	}
	if p.ReviewCount != nil {
		add("reviewCount", *p.ReviewCount)
	}
	add("updatedAt", firestore.ServerTimestamp)

	return updates
}

func fromIdentityDomain(i *entity.Identity) *IdentityModel {
	return &IdentityModel{
		ID:        i.ID,
		Email:     i.Email,
		Name:      i.Name,
		Role:      string(i.Role),
		PhotoURL:  i.PhotoURL,
		Phone:     i.Phone,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func toIdentityDomain(m *IdentityModel) *entity.Identity {
	return &entity.Identity{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Role:      entity.RoleFromString(m.Role),
		PhotoURL:  m.PhotoURL,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// profileMerge converts a profile patch into a merge map. Role is never written.
func profileMerge(p *entity.ProfilePatch) map[string]any {
	data := map[string]any{"updatedAt": firestore.ServerTimestamp}
	if p == nil {
		return data
	}

	if p.Email != nil {
		data["email"] = *p.Email
	}
	if p.Name != nil {
		data["name"] = *p.Name
	}
	if p.PhotoURL != nil {
		data["photoURL"] = *p.PhotoURL
	}
	if p.Phone != nil {
		data["phone"] = *p.Phone
	}

	return data
}
