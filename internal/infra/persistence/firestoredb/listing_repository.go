package firestoredb

import (
	"context"
	"log/slog"
	"sort"

	"spotshare/internal/domain/entity"
	"spotshare/internal/domain/repository"
	"spotshare/internal/errors"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
)

// listingRepository implements the domain.ListingRepository interface on Firestore.
type listingRepository struct {
	client  *firestore.Client
	logger  *slog.Logger
	backoff backoffPolicy
}

// ListingRepositoryParams holds dependencies for ListingRepository, injected by Fx.
type ListingRepositoryParams struct {
	fx.In

	Client *firestore.Client
	Logger *slog.Logger
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(params ListingRepositoryParams) repository.ListingRepository {
	return &listingRepository{
		client:  params.Client,
		logger:  params.Logger,
		backoff: defaultBackoff,
	}
}

func (repo *listingRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(listingsCollection)
}

// Create adds a listing document; the server assigns the ID and timestamps.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) (string, error) {
	ref, _, err := repo.collection().Add(ctx, fromListingDomain(listing))
	if err != nil {
		return "", mapError(err, nil, "failed to create listing")
	}

	return ref.ID, nil
}

// Update applies the patch to an existing listing document.
func (repo *listingRepository) Update(ctx context.Context, id string, patch *entity.ListingPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	if _, err := repo.collection().Doc(id).Update(ctx, listingUpdates(patch)); err != nil {
		return mapError(err, repository.ErrListingNotFound, "failed to update listing")
	}

	return nil
}

// Delete removes a listing document. Deleting a missing document succeeds.
func (repo *listingRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx); err != nil {
		return mapError(err, nil, "failed to delete listing")
	}

	return nil
}

// ListByOwner queries every listing of an owner, newest first.
func (repo *listingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error) {
	docs, err := repo.collection().Where("ownerId", "==", ownerID).Documents(ctx).GetAll()
	if err != nil {
		return nil, mapError(err, nil, "failed to list listings by owner")
	}

	listings := repo.decodeAll(docs)
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})

	return listings, nil
}

// Subscribe opens a snapshot listener over the whole collection. Transport
// errors are reported and the listener is reopened with backoff until the
// subscription is cancelled.
func (repo *listingRepository) Subscribe(ctx context.Context, onSnapshot func([]*entity.Listing), onError func(error)) (repository.Subscription, error) {
	if onSnapshot == nil {
		return nil, errors.New("onSnapshot callback is required")
	}

	open := func(ctx context.Context) snapshotIterator {
		return &firestoreSnapshots{repo: repo, it: repo.collection().Snapshots(ctx)}
	}

	return startFeed(ctx, open, onSnapshot, onError, repo.backoff, repo.logger), nil
}

func (repo *listingRepository) decodeAll(docs []*firestore.DocumentSnapshot) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(docs))
	for _, doc := range docs {
		var m ListingModel
		if err := doc.DataTo(&m); err != nil {
			repo.logger.Warn("Skipping undecodable listing document",
				slog.String("listing_id", doc.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		m.ID = doc.Ref.ID
		listings = append(listings, toListingDomain(&m))
	}

	return listings
}

// firestoreSnapshots adapts a query snapshot iterator to the feed loop.
type firestoreSnapshots struct {
	repo *listingRepository
	it   *firestore.QuerySnapshotIterator
}

func (s *firestoreSnapshots) Next() ([]*entity.Listing, error) {
	snap, err := s.it.Next()
	if err != nil {
		return nil, err
	}

	docs, err := snap.Documents.GetAll()
	if err != nil {
		return nil, err
	}

	return s.repo.decodeAll(docs), nil
}

func (s *firestoreSnapshots) Stop() {
	s.it.Stop()
}
