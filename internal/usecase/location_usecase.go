package usecase

import (
	"context"

	"spotshare/internal/domain/entity"
)

// LocationUsecase defines the interface for the device location session
type LocationUsecase interface {
	// RequestCurrentLocation resolves the device position. It never fails:
	// the outcome is reported as Known, Denied or Failed.
	RequestCurrentLocation(ctx context.Context) entity.LocationState

	// State returns the latest location state.
	State() entity.LocationState

	// DistanceTo returns the distance in km from the known location, false when unknown.
	DistanceTo(point entity.GeoPoint) (float64, bool)

	// Geocode resolves a free-text address.
	Geocode(ctx context.Context, address string) (*entity.GeoPoint, error)
}
