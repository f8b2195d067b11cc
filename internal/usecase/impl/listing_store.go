package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"spotshare/config"
	deliverycontext "spotshare/internal/delivery/context"
	"spotshare/internal/domain/entity"
	domainerrors "spotshare/internal/domain/errors"
	"spotshare/internal/domain/repository"
	"spotshare/internal/domain/service"
	"spotshare/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type overlayKind int

const (
	overlayCreated overlayKind = iota
	overlayUpdated
	overlayDeleted
)

// overlayEntry is a local write the live feed has not confirmed yet.
type overlayEntry struct {
	kind overlayKind
	// listing is the locally constructed listing of a created entry.
	listing *entity.Listing
	// patches are applied in order on top of the authoritative listing.
	patches        []*entity.ListingPatch
	localUpdatedAt time.Time
	// baseUpdatedAt is the server UpdatedAt the latest edit was made against.
	baseUpdatedAt time.Time
}

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/heic": "heic",
}

// listingStore implements the ListingUsecase interface.
type listingStore struct {
	repo     repository.ListingRepository
	images   service.ImageStore
	session  usecase.SessionUsecase
	validate *validator.Validate
	limits   config.ListingsConfig
	logger   *slog.Logger
	now      func() time.Time
	async    func(func())

	mu           sync.RWMutex
	ownerID      string
	snapshot     []*entity.Listing
	haveSnapshot bool
	mineBase     []*entity.Listing
	overlay      map[string]*overlayEntry
	createdOrder []string
	available    []*entity.Listing
	mine         []*entity.Listing

	subGeneration int
	subscribed    bool
	sub           repository.Subscription
	onUpdate      func([]*entity.Listing)
	onError       func(error)

	unwatch func()
}

// ListingStoreParams holds dependencies for ListingStore, injected by Fx.
type ListingStoreParams struct {
	fx.In

	Repo    repository.ListingRepository
	Images  service.ImageStore
	Session usecase.SessionUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// NewListingStore is the constructor for listingStore.
func NewListingStore(params ListingStoreParams) usecase.ListingUsecase {
	limits := config.ListingsConfig{
		MinPricePerHour: config.DefaultMinPricePerHour,
		MaxPricePerHour: config.DefaultMaxPricePerHour,
		MaxImages:       config.DefaultMaxImages,
		CleanupTimeout:  config.DefaultCleanupTimeout,
	}
	if params.Config != nil && params.Config.Listings != nil {
		limits = *params.Config.Listings
	}

	store := &listingStore{
		repo:     params.Repo,
		images:   params.Images,
		session:  params.Session,
		validate: validator.New(),
		limits:   limits,
		logger:   params.Logger,
		now:      time.Now,
		async:    func(fn func()) { go fn() },
		overlay:  make(map[string]*overlayEntry),
	}

	if current := params.Session.Current(); current != nil {
		store.ownerID = current.ID
	}
	store.unwatch = params.Session.Watch(store.onSessionChange)

	return store
}

func (s *listingStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SubscribeAll opens the live feed. Only one subscription may be active.
func (s *listingStore) SubscribeAll(ctx context.Context, onUpdate func([]*entity.Listing), onError func(error)) (repository.Subscription, error) {
	s.mu.Lock()
	if s.subscribed {
		s.mu.Unlock()

		return nil, domainerrors.ErrSubscriptionActive
	}
	s.subscribed = true
	s.subGeneration++
	generation := s.subGeneration
	s.onUpdate = onUpdate
	s.onError = onError
	s.mu.Unlock()

	sub, err := s.repo.Subscribe(ctx,
		func(listings []*entity.Listing) { s.handleSnapshot(generation, listings) },
		func(err error) { s.handleFeedError(generation, err) },
	)
	if err != nil {
		s.mu.Lock()
		s.resetSubscriptionLocked()
		s.mu.Unlock()

		return nil, mapGatewayError(err, "subscribe listings")
	}

	s.mu.Lock()
	s.sub = sub
	s.mu.Unlock()

	s.log(ctx).Info("Listing feed subscribed")

	return &storeSubscription{store: s, generation: generation}, nil
}

// storeSubscription is the handle returned by SubscribeAll.
type storeSubscription struct {
	store      *listingStore
	generation int
	once       sync.Once
}

func (h *storeSubscription) Unsubscribe() {
	h.once.Do(func() {
		h.store.unsubscribe(h.generation)
	})
}

func (s *listingStore) unsubscribe(generation int) {
	s.mu.Lock()
	if !s.subscribed || s.subGeneration != generation {
		s.mu.Unlock()

		return
	}
	sub := s.sub
	s.resetSubscriptionLocked()
	s.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

func (s *listingStore) resetSubscriptionLocked() {
	s.subscribed = false
	s.sub = nil
	s.onUpdate = nil
	s.onError = nil
	s.subGeneration++
}

// Close releases the live subscription and the session watcher.
func (s *listingStore) Close() {
	s.mu.Lock()
	sub := s.sub
	if s.subscribed {
		s.resetSubscriptionLocked()
	}
	unwatch := s.unwatch
	s.unwatch = nil
	s.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
	if unwatch != nil {
		unwatch()
	}
}

func (s *listingStore) handleSnapshot(generation int, listings []*entity.Listing) {
	s.mu.Lock()
	if !s.subscribed || s.subGeneration != generation {
		s.mu.Unlock()

		return
	}

	s.snapshot = make([]*entity.Listing, 0, len(listings))
	for _, l := range listings {
		if l != nil {
			s.snapshot = append(s.snapshot, l.Clone())
		}
	}
	s.haveSnapshot = true
	s.reconcileLocked()
	s.deriveLocked()
	onUpdate, view := s.onUpdate, slices.Clone(s.available)
	s.mu.Unlock()

	if onUpdate != nil {
		onUpdate(view)
	}
}

func (s *listingStore) handleFeedError(generation int, err error) {
	s.mu.RLock()
	active := s.subscribed && s.subGeneration == generation
	onError := s.onError
	s.mu.RUnlock()

	if !active {
		return
	}

	s.logger.Warn("Listing feed error", slog.Any("error", err))
	if onError != nil {
		onError(mapGatewayError(err, "listing feed"))
	}
}

// notify delivers the current available view after a local write.
func (s *listingStore) notify() {
	s.mu.RLock()
	onUpdate, view := s.onUpdate, slices.Clone(s.available)
	s.mu.RUnlock()

	if onUpdate != nil {
		onUpdate(view)
	}
}

func (s *listingStore) onSessionChange(session entity.Session) {
	owner := ""
	if session.State == entity.AuthStateAuthenticated && session.Identity != nil {
		owner = session.Identity.ID
	}
	// Authenticating is transient; keep the current owner until it settles.
	if session.State == entity.AuthStateAuthenticating {
		return
	}

	s.mu.Lock()
	if owner == s.ownerID {
		s.mu.Unlock()

		return
	}
	s.ownerID = owner
	s.mineBase = nil
	for _, id := range s.createdOrder {
		delete(s.overlay, id)
	}
	s.createdOrder = nil
	s.deriveLocked()
	s.mu.Unlock()
}

// Create validates the draft, writes it and prepends it to Mine.
func (s *listingStore) Create(ctx context.Context, draft *entity.ListingDraft) (string, error) {
	owner := s.session.Current()
	if owner == nil {
		return "", domainerrors.ErrNoIdentity
	}
	if err := s.validateDraft(draft); err != nil {
		return "", err
	}

	listing := draft.ToListing(owner.ID, owner.Name)

	id, err := s.repo.Create(ctx, listing)
	if err != nil {
		s.log(ctx).Error("Failed to create listing", slog.String("owner_id", owner.ID), slog.Any("error", err))

		return "", mapGatewayError(err, "create listing")
	}

	now := s.now()
	listing.ID = id
	listing.CreatedAt = now
	listing.UpdatedAt = now

	s.mu.Lock()
	if s.findAuthoritativeLocked(id) == nil && owner.ID == s.ownerID {
		s.overlay[id] = &overlayEntry{kind: overlayCreated, listing: listing, localUpdatedAt: now}
		s.createdOrder = append([]string{id}, s.createdOrder...)
		s.deriveLocked()
	}
	s.mu.Unlock()
	s.notify()

	s.log(ctx).Info("Listing created", slog.String("listing_id", id))

	return id, nil
}

// Update writes the patch and merges it into every local view holding the listing.
func (s *listingStore) Update(ctx context.Context, id string, patch *entity.ListingPatch) error {
	if strings.TrimSpace(id) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("listing id is required")
	}
	if patch.IsEmpty() {
		return nil
	}
	if err := s.validatePatch(patch); err != nil {
		return err
	}

	// The feed may confirm the write before the call returns, so the base
	// is the version this edit was made against.
	var baseUpdatedAt time.Time
	s.mu.RLock()
	if base := s.findAuthoritativeLocked(id); base != nil {
		baseUpdatedAt = base.UpdatedAt
	}
	s.mu.RUnlock()

	if err := s.repo.Update(ctx, id, patch); err != nil {
		s.log(ctx).Error("Failed to update listing", slog.String("listing_id", id), slog.Any("error", err))

		return mapGatewayError(err, "update listing")
	}

	now := s.now()

	s.mu.Lock()
	entry := s.overlay[id]
	switch {
	case entry != nil && entry.kind == overlayCreated:
		entry.listing = patch.Apply(entry.listing, now)
		entry.localUpdatedAt = now
	case entry != nil && entry.kind == overlayDeleted:
		// nothing to merge into
	default:
		if s.findAuthoritativeLocked(id) == nil {
			break
		}
		if entry == nil {
			entry = &overlayEntry{kind: overlayUpdated, baseUpdatedAt: baseUpdatedAt}
			s.overlay[id] = entry
		}
		entry.patches = append(entry.patches, patch)
		entry.localUpdatedAt = now
		s.reconcileLocked()
	}
	s.deriveLocked()
	s.mu.Unlock()
	s.notify()

	return nil
}

// Delete removes the listing remotely, then locally, then cleans up its
// images in the background.
func (s *listingStore) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("listing id is required")
	}

	s.mu.RLock()
	var images []string
	if l := s.findLocalLocked(id); l != nil {
		images = slices.Clone(l.Images)
	}
	s.mu.RUnlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log(ctx).Error("Failed to delete listing", slog.String("listing_id", id), slog.Any("error", err))

		return mapGatewayError(err, "delete listing")
	}

	s.mu.Lock()
	s.mineBase = slices.DeleteFunc(s.mineBase, func(l *entity.Listing) bool { return l.ID == id })
	s.createdOrder = slices.DeleteFunc(s.createdOrder, func(v string) bool { return v == id })
	s.overlay[id] = &overlayEntry{kind: overlayDeleted, localUpdatedAt: s.now()}
	s.deriveLocked()
	s.mu.Unlock()
	s.notify()

	logger := s.log(ctx)
	s.async(func() { s.cleanupImages(logger, id, images) })

	return nil
}

func (s *listingStore) cleanupImages(logger *slog.Logger, id string, images []string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.limits.CleanupTimeout)
	defer cancel()

	for _, url := range images {
		if err := s.images.DeleteByURL(ctx, url); err != nil {
			logger.Warn("Failed to delete listing image", slog.String("listing_id", id), slog.String("url", url), slog.Any("error", err))
		}
	}

	if err := s.images.DeleteFolder(ctx, listingFolder(id)); err != nil {
		logger.Warn("Failed to delete listing image folder", slog.String("listing_id", id), slog.Any("error", err))
	}
}

// UploadImage stores an image for the current owner and returns its URL.
func (s *listingStore) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (string, error) {
	owner := s.session.Current()
	if owner == nil {
		return "", domainerrors.ErrNoIdentity
	}
	if input == nil || len(input.Data) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("image data is required")
	}

	ext, ok := imageExtensions[strings.ToLower(input.ContentType)]
	if !ok {
		return "", domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unsupported image type %q", input.ContentType))
	}

	folder := "listings/" + owner.ID + "/"
	if input.ListingID != "" {
		s.mu.RLock()
		listing := s.findLocalLocked(input.ListingID)
		s.mu.RUnlock()
		if listing == nil || listing.OwnerID != owner.ID {
			return "", domainerrors.ErrListingNotFound
		}
		folder = listingFolder(input.ListingID)
	}

	path := folder + uuid.NewString() + "." + ext
	url, err := s.images.Upload(ctx, path, input.Data, input.ContentType)
	if err != nil {
		s.log(ctx).Error("Failed to upload listing image", slog.String("path", path), slog.Any("error", err))

		return "", mapGatewayError(err, "upload image")
	}

	return url, nil
}

// LoadMine queries every listing of the current owner, available or not.
func (s *listingStore) LoadMine(ctx context.Context) ([]*entity.Listing, error) {
	owner := s.session.Current()
	if owner == nil {
		return nil, domainerrors.ErrNoIdentity
	}

	listings, err := s.repo.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, mapGatewayError(err, "load my listings")
	}

	s.mu.Lock()
	if owner.ID != s.ownerID {
		s.mu.Unlock()

		return nil, domainerrors.ErrNoIdentity
	}
	s.mineBase = make([]*entity.Listing, 0, len(listings))
	for _, l := range listings {
		if l != nil {
			s.mineBase = append(s.mineBase, l.Clone())
		}
	}
	s.reconcileLocked()
	s.deriveLocked()
	mine := slices.Clone(s.mine)
	s.mu.Unlock()

	return mine, nil
}

// FindMine looks a listing up in the owner view.
func (s *listingStore) FindMine(id string) (*entity.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return findByID(s.mine, id)
}

// GetByID looks a listing up in the available view only. A listing that is
// only in Mine, such as one just created, is not found.
func (s *listingStore) GetByID(id string) (*entity.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return findByID(s.available, id)
}

// AllAvailable returns the available view, newest first. Treat it as read-only.
func (s *listingStore) AllAvailable() []*entity.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.available)
}

// Mine returns the current owner's view. Treat it as read-only.
func (s *listingStore) Mine() []*entity.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.mine)
}

// reconcileLocked drops overlay entries the authoritative data supersedes.
func (s *listingStore) reconcileLocked() {
	for id, entry := range s.overlay {
		auth := s.findAuthoritativeLocked(id)

		switch entry.kind {
		case overlayCreated:
			if auth != nil {
				delete(s.overlay, id)
				s.createdOrder = slices.DeleteFunc(s.createdOrder, func(v string) bool { return v == id })
			}
		case overlayUpdated:
			if auth == nil || auth.UpdatedAt.After(entry.baseUpdatedAt) {
				delete(s.overlay, id)
			}
		case overlayDeleted:
			if s.haveSnapshot && findInSlice(s.snapshot, id) == nil {
				delete(s.overlay, id)
			}
		}
	}
}

// deriveLocked rebuilds the available and mine views.
func (s *listingStore) deriveLocked() {
	available := make([]*entity.Listing, 0, len(s.snapshot))
	for _, l := range s.snapshot {
		merged, ok := s.applyOverlayLocked(l)
		if !ok || !merged.IsAvailable {
			continue
		}
		available = append(available, merged)
	}
	sortNewestFirst(available)
	s.available = available

	s.mine = s.deriveMineLocked()
}

func (s *listingStore) deriveMineLocked() []*entity.Listing {
	if s.ownerID == "" {
		return []*entity.Listing{}
	}

	seen := make(map[string]struct{})
	owned := make([]*entity.Listing, 0, len(s.mineBase))
	for _, l := range s.mineBase {
		latest := l
		if fromFeed := findInSlice(s.snapshot, l.ID); fromFeed != nil {
			latest = fromFeed
		}
		seen[l.ID] = struct{}{}
		if merged, ok := s.applyOverlayLocked(latest); ok {
			owned = append(owned, merged)
		}
	}
	for _, l := range s.snapshot {
		if _, ok := seen[l.ID]; ok || l.OwnerID != s.ownerID {
			continue
		}
		seen[l.ID] = struct{}{}
		if merged, ok := s.applyOverlayLocked(l); ok {
			owned = append(owned, merged)
		}
	}
	sortNewestFirst(owned)

	mine := make([]*entity.Listing, 0, len(s.createdOrder)+len(owned))
	for _, id := range s.createdOrder {
		if _, ok := seen[id]; ok {
			continue
		}
		if entry := s.overlay[id]; entry != nil && entry.kind == overlayCreated {
			mine = append(mine, entry.listing)
		}
	}

	return append(mine, owned...)
}

// applyOverlayLocked returns the listing with pending local edits applied,
// or false when it is locally deleted.
func (s *listingStore) applyOverlayLocked(l *entity.Listing) (*entity.Listing, bool) {
	entry := s.overlay[l.ID]
	if entry == nil {
		return l, true
	}

	switch entry.kind {
	case overlayDeleted:
		return nil, false
	case overlayUpdated:
		merged := l
		for _, p := range entry.patches {
			merged = p.Apply(merged, entry.localUpdatedAt)
		}

		return merged, true
	default:
		return l, true
	}
}

// findAuthoritativeLocked returns the backend version of a listing, preferring the feed.
func (s *listingStore) findAuthoritativeLocked(id string) *entity.Listing {
	if l := findInSlice(s.snapshot, id); l != nil {
		return l
	}

	return findInSlice(s.mineBase, id)
}

// findLocalLocked returns the listing as the views currently show it.
func (s *listingStore) findLocalLocked(id string) *entity.Listing {
	if l := findInSlice(s.mine, id); l != nil {
		return l
	}
	if l := findInSlice(s.available, id); l != nil {
		return l
	}

	return findInSlice(s.snapshot, id)
}

func (s *listingStore) validateDraft(draft *entity.ListingDraft) error {
	if draft == nil {
		return domainerrors.ErrValidationFailed.WithDetails("listing data is required")
	}
	if err := s.validate.Struct(draft); err != nil {
		return validationError(err)
	}
	if err := s.validateLocation(draft.Location); err != nil {
		return err
	}

	return s.validateLimits(&draft.PricePerHour, draft.PricePerDay, draft.Images)
}

func (s *listingStore) validatePatch(patch *entity.ListingPatch) error {
	if patch.Title != nil {
		if n := len([]rune(strings.TrimSpace(*patch.Title))); n < 3 || n > 100 {
			return domainerrors.ErrValidationFailed.WithDetails("title must be 3 to 100 characters")
		}
	}
	if patch.Description != nil && len([]rune(*patch.Description)) > 1000 {
		return domainerrors.ErrValidationFailed.WithDetails("description must be at most 1000 characters")
	}
	if patch.Location != nil {
		if err := s.validateLocation(*patch.Location); err != nil {
			return err
		}
	}
	if patch.SpotType != nil && !patch.SpotType.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown spot type %q", *patch.SpotType))
	}
	if patch.Amenities != nil {
		for _, a := range *patch.Amenities {
			if !a.IsValid() {
				return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown amenity %q", a))
			}
		}
	}
	if patch.Rating != nil && (*patch.Rating < 0 || *patch.Rating > 5) {
		return domainerrors.ErrValidationFailed.WithDetails("rating must be between 0 and 5")
	}
	if patch.ReviewCount != nil && *patch.ReviewCount < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("review count must not be negative")
	}

	var images []string
	if patch.Images != nil {
		images = *patch.Images
	}

	return s.validateLimits(patch.PricePerHour, patch.PricePerDay, images)
}

func (s *listingStore) validateLocation(p entity.GeoPoint) error {
	if err := s.validate.Var(p.Latitude, "latitude"); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("latitude is out of range")
	}
	if err := s.validate.Var(p.Longitude, "longitude"); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("longitude is out of range")
	}

	return nil
}

func (s *listingStore) validateLimits(pricePerHour, pricePerDay *float64, images []string) error {
	if pricePerHour != nil && (*pricePerHour < s.limits.MinPricePerHour || *pricePerHour > s.limits.MaxPricePerHour) {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf(
			"hourly price must be between %.2f and %.2f", s.limits.MinPricePerHour, s.limits.MaxPricePerHour))
	}
	if pricePerDay != nil && *pricePerDay < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("daily price must not be negative")
	}
	if len(images) > s.limits.MaxImages {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("at most %d images are allowed", s.limits.MaxImages))
	}

	return nil
}

func listingFolder(id string) string {
	return "listings/" + id + "/"
}

func sortNewestFirst(listings []*entity.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
}

func findInSlice(listings []*entity.Listing, id string) *entity.Listing {
	for _, l := range listings {
		if l.ID == id {
			return l
		}
	}

	return nil
}

func findByID(listings []*entity.Listing, id string) (*entity.Listing, bool) {
	l := findInSlice(listings, id)

	return l, l != nil
}
