package usecase

import (
	"context"

	"spotshare/internal/domain/entity"
	"spotshare/internal/domain/repository"
)

// UploadImageInput represents an image to attach to a listing
type UploadImageInput struct {
	Data        []byte
	ContentType string // e.g. "image/jpeg"
	// ListingID files the image under the listing's folder so deleting the
	// listing sweeps it. Empty for listings that do not exist yet.
	ListingID string
}

// ListingUsecase defines the interface for the listing store.
// AllAvailable and Mine are derived views over the live feed and local optimistic writes.
type ListingUsecase interface {
	// Live feed
	SubscribeAll(ctx context.Context, onUpdate func([]*entity.Listing), onError func(error)) (repository.Subscription, error)
	Close()

	// Mutations
	Create(ctx context.Context, draft *entity.ListingDraft) (string, error)
	Update(ctx context.Context, id string, patch *entity.ListingPatch) error
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, input *UploadImageInput) (string, error)

	// Owner view
	LoadMine(ctx context.Context) ([]*entity.Listing, error)
	FindMine(id string) (*entity.Listing, bool)

	// Local reads
	GetByID(id string) (*entity.Listing, bool)
	AllAvailable() []*entity.Listing
	Mine() []*entity.Listing
}
