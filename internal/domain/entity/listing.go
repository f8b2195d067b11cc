// Package entity contains the core business objects of the project.
package entity

import (
	"bytes"
	"encoding/json"
	"slices"
	"time"

	"spotshare/internal/errors"
)

// Listing is a parking spot offered by a homeowner.
// ID, CreatedAt and UpdatedAt are assigned by the backend.
type Listing struct {
	ID           string    // Backend-assigned identifier, immutable once created.
	OwnerID      string    // Identity ID of the homeowner who created the listing.
	OwnerName    string    // Display name of the owner at creation time.
	Title        string    // Short headline.
	Description  string    // Free-text description.
	Location     GeoPoint  // Position of the spot with optional address.
	PricePerHour float64   // Hourly price, non-negative.
	PricePerDay  *float64  // Optional daily price, non-negative when set.
	Images       []string  // Ordered image URLs.
	IsAvailable  bool      // Whether the spot is currently offered.
	SpotType     SpotType  // Physical kind of the spot.
	Amenities    []Amenity // Amenity set without duplicates.
	Rating       *float64  // Aggregate rating 0..5, nil when unrated.
	ReviewCount  int       // Number of reviews, non-negative.
	CreatedAt    time.Time // Server creation timestamp.
	UpdatedAt    time.Time // Server last-update timestamp.
}

// Clone returns a deep copy so views never share mutable slices.
func (l *Listing) Clone() *Listing {
	if l == nil {
		return nil
	}

	c := *l
	c.Images = slices.Clone(l.Images)
	c.Amenities = slices.Clone(l.Amenities)
	if l.PricePerDay != nil {
		v := *l.PricePerDay
		c.PricePerDay = &v
	}
	if l.Rating != nil {
		v := *l.Rating
		c.Rating = &v
	}

	return &c
}

// RatingOrZero returns the rating, treating an unrated listing as 0.
func (l *Listing) RatingOrZero() float64 {
	if l.Rating == nil {
		return 0
	}

	return *l.Rating
}

// ListingDraft is the data of a new listing. Owner fields are taken from the
// current session and ID/timestamps are assigned by the backend.
type ListingDraft struct {
	Title        string    `validate:"required,min=3,max=100"`
	Description  string    `validate:"max=1000"`
	Location     GeoPoint
	PricePerHour float64   `validate:"gte=0"`
	PricePerDay  *float64  `validate:"omitempty,gte=0"`
	Images       []string  `validate:"dive,url"`
	IsAvailable  bool
	SpotType     SpotType  `validate:"required,oneof=driveway garage carport street lot other"`
	Amenities    []Amenity `validate:"dive,oneof=covered security lighting ev_charging cctv gated accessible 24_7_access"`
}

// ToListing builds the listing the draft describes for the given owner.
func (d *ListingDraft) ToListing(ownerID, ownerName string) *Listing {
	l := &Listing{
		OwnerID:      ownerID,
		OwnerName:    ownerName,
		Title:        d.Title,
		Description:  d.Description,
		Location:     d.Location,
		PricePerHour: d.PricePerHour,
		Images:       slices.Clone(d.Images),
		IsAvailable:  d.IsAvailable,
		SpotType:     d.SpotType,
		Amenities:    NormalizeAmenities(d.Amenities),
	}
	if d.PricePerDay != nil {
		v := *d.PricePerDay
		l.PricePerDay = &v
	}
	if l.Images == nil {
		l.Images = []string{}
	}
	if l.Amenities == nil {
		l.Amenities = []Amenity{}
	}

	return l
}

// ListingPatch is a partial update of a listing. Nil fields are left unchanged.
// Identity and creation time cannot be expressed.
type ListingPatch struct {
	OwnerName        *string
	Title            *string
	Description      *string
	Location         *GeoPoint
	PricePerHour     *float64
	PricePerDay      *float64
	ClearPricePerDay bool // Removes the daily price; wins over PricePerDay.
	Images           *[]string
	IsAvailable      *bool
	SpotType         *SpotType
	Amenities        *[]Amenity
	Rating           *float64
	ReviewCount      *int
}

// IsEmpty reports whether the patch changes nothing.
func (p *ListingPatch) IsEmpty() bool {
	return p == nil || (p.OwnerName == nil && p.Title == nil && p.Description == nil &&
		p.Location == nil && p.PricePerHour == nil && p.PricePerDay == nil && !p.ClearPricePerDay &&
		p.Images == nil && p.IsAvailable == nil && p.SpotType == nil && p.Amenities == nil &&
		p.Rating == nil && p.ReviewCount == nil)
}

// Apply returns a copy of l with the patch merged in and UpdatedAt set to updatedAt.
func (p *ListingPatch) Apply(l *Listing, updatedAt time.Time) *Listing {
	out := l.Clone()
	if p == nil {
		return out
	}

	if p.OwnerName != nil {
		out.OwnerName = *p.OwnerName
	}
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.PricePerHour != nil {
		out.PricePerHour = *p.PricePerHour
	}
	if p.ClearPricePerDay {
		out.PricePerDay = nil
	} else if p.PricePerDay != nil {
		v := *p.PricePerDay
		out.PricePerDay = &v
	}
	if p.Images != nil {
		out.Images = slices.Clone(*p.Images)
	}
	if p.IsAvailable != nil {
		out.IsAvailable = *p.IsAvailable
	}
	if p.SpotType != nil {
		out.SpotType = *p.SpotType
	}
	if p.Amenities != nil {
		out.Amenities = NormalizeAmenities(*p.Amenities)
	}
	if p.Rating != nil {
		v := *p.Rating
		out.Rating = &v
	}
	if p.ReviewCount != nil {
		out.ReviewCount = *p.ReviewCount
	}
	if !updatedAt.IsZero() {
		out.UpdatedAt = updatedAt
	}

	return out
}

type geoPointPayload struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postalCode"`
}

type listingPatchPayload struct {
	OwnerName    *string          `json:"ownerName"`
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Location     *geoPointPayload `json:"location"`
	PricePerHour *float64         `json:"pricePerHour"`
	PricePerDay  json.RawMessage  `json:"pricePerDay"`
	Images       *[]string        `json:"images"`
	IsAvailable  *bool            `json:"isAvailable"`
	SpotType     *SpotType        `json:"spotType"`
	Amenities    *[]Amenity       `json:"amenities"`
	Rating       *float64         `json:"rating"`
	ReviewCount  *int             `json:"reviewCount"`
}

// DecodeListingPatch decodes a free-form JSON object into a ListingPatch.
// Keys that are not settable, such as id and createdAt, are ignored.
// An explicit null pricePerDay clears the daily price.
func DecodeListingPatch(data []byte) (*ListingPatch, error) {
	var payload listingPatchPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "decode listing patch")
	}

	patch := &ListingPatch{
		OwnerName:    payload.OwnerName,
		Title:        payload.Title,
		Description:  payload.Description,
		PricePerHour: payload.PricePerHour,
		Images:       payload.Images,
		IsAvailable:  payload.IsAvailable,
		SpotType:     payload.SpotType,
		Amenities:    payload.Amenities,
		Rating:       payload.Rating,
		ReviewCount:  payload.ReviewCount,
	}

	if payload.Location != nil {
		patch.Location = &GeoPoint{
			Latitude:   payload.Location.Latitude,
			Longitude:  payload.Location.Longitude,
			Address:    payload.Location.Address,
			City:       payload.Location.City,
			State:      payload.Location.State,
			PostalCode: payload.Location.PostalCode,
		}
	}

	if len(payload.PricePerDay) > 0 {
		if bytes.Equal(bytes.TrimSpace(payload.PricePerDay), []byte("null")) {
			patch.ClearPricePerDay = true
		} else {
			var v float64
			if err := json.Unmarshal(payload.PricePerDay, &v); err != nil {
				return nil, errors.Wrap(err, "decode pricePerDay")
			}
			patch.PricePerDay = &v
		}
	}

	return patch, nil
}
