package repository

import (
	"context"

	"spotshare/internal/domain/entity"
	"spotshare/internal/errors"
)

// ErrIdentityNotFound is returned when no profile record exists for an identity.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityRepository defines the interface for profile records keyed by identity ID.
type IdentityRepository interface {
	// FindByID retrieves a profile record.
	// Returns ErrIdentityNotFound if no record exists.
	FindByID(ctx context.Context, id string) (*entity.Identity, error)

	// Create writes a full profile record, replacing any existing one.
	Create(ctx context.Context, identity *entity.Identity) error

	// Upsert merges the patch into the record, creating it when missing.
	Upsert(ctx context.Context, id string, patch *entity.ProfilePatch) error
}
