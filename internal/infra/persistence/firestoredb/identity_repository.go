package firestoredb

import (
	"context"

	"spotshare/internal/domain/entity"
	"spotshare/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// identityRepository implements the domain.IdentityRepository interface on Firestore.
type identityRepository struct {
	client *firestore.Client
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(client *firestore.Client) repository.IdentityRepository {
	return &identityRepository{client: client}
}

func (repo *identityRepository) doc(id string) *firestore.DocumentRef {
	return repo.client.Collection(usersCollection).Doc(id)
}

// FindByID reads the profile document of an identity.
func (repo *identityRepository) FindByID(ctx context.Context, id string) (*entity.Identity, error) {
	snap, err := repo.doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err, repository.ErrIdentityNotFound, "failed to find identity")
	}

	var m IdentityModel
	if err := snap.DataTo(&m); err != nil {
		return nil, mapError(err, nil, "failed to decode identity")
	}
	m.ID = snap.Ref.ID

	return toIdentityDomain(&m), nil
}

// Create writes the full profile document.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	if _, err := repo.doc(identity.ID).Set(ctx, fromIdentityDomain(identity)); err != nil {
		return mapError(err, nil, "failed to create identity")
	}

	return nil
}

// Upsert merges the patch into the profile document, creating it when missing.
func (repo *identityRepository) Upsert(ctx context.Context, id string, patch *entity.ProfilePatch) error {
	if _, err := repo.doc(id).Set(ctx, profileMerge(patch), firestore.MergeAll); err != nil {
		return mapError(err, nil, "failed to upsert identity")
	}

	return nil
}
