// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"spotshare/internal/domain/entity"
	"spotshare/internal/errors"
)

// Domain-specific errors for listing persistence.
var (
	// ErrListingNotFound is returned when a listing document does not exist.
	ErrListingNotFound = errors.New("listing not found")
	// ErrPermissionDenied is returned when the backend access policy rejects an operation.
	ErrPermissionDenied = errors.New("permission denied")
)

// Subscription is a handle to a live feed.
type Subscription interface {
	// Unsubscribe stops further callbacks. It is safe to call more than once.
	Unsubscribe()
}

// ListingRepository defines the interface for listing documents in the backend.
type ListingRepository interface {
	// Create persists a new listing and returns the backend-assigned ID.
	// CreatedAt and UpdatedAt are assigned by the server.
	Create(ctx context.Context, listing *entity.Listing) (string, error)

	// Update merges the patch into the listing and refreshes its server UpdatedAt.
	Update(ctx context.Context, id string, patch *entity.ListingPatch) error

	// Delete removes a listing by its ID.
	Delete(ctx context.Context, id string) error

	// ListByOwner returns every listing of an owner, available or not, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error)

	// Subscribe opens a live feed over every listing. onSnapshot receives the full
	// set after each change batch; onError receives transport errors while the
	// feed keeps running.
	Subscribe(ctx context.Context, onSnapshot func([]*entity.Listing), onError func(error)) (Subscription, error)
}
