// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "spotshare/internal/delivery/context"
	"spotshare/internal/domain/entity"
	domainerrors "spotshare/internal/domain/errors"
	"spotshare/internal/domain/repository"
	"spotshare/internal/domain/service"
	"spotshare/internal/errors"
	"spotshare/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// sessionStore implements the SessionUsecase interface.
type sessionStore struct {
	gateway    service.IdentityGateway
	identities repository.IdentityRepository
	validate   *validator.Validate
	logger     *slog.Logger
	now        func() time.Time

	mu       sync.RWMutex
	session  entity.Session
	watchers map[int]func(entity.Session)
	nextID   int
}

// SessionStoreParams holds dependencies for SessionStore, injected by Fx.
type SessionStoreParams struct {
	fx.In

	Gateway    service.IdentityGateway
	Identities repository.IdentityRepository
	Logger     *slog.Logger
}

// NewSessionStore is the constructor for sessionStore.
func NewSessionStore(params SessionStoreParams) usecase.SessionUsecase {
	return &sessionStore{
		gateway:    params.Gateway,
		identities: params.Identities,
		validate:   validator.New(),
		logger:     params.Logger,
		now:        time.Now,
		session:    entity.Session{State: entity.AuthStateUnauthenticated},
		watchers:   make(map[int]func(entity.Session)),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *sessionStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SignIn authenticates with email and password.
func (s *sessionStore) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	return s.authenticate(ctx, "sign in", func() (*service.AuthResult, error) {
		return s.gateway.SignInWithPassword(ctx, email, password)
	})
}

// SignInWithExternalToken exchanges an external provider token for a session.
func (s *sessionStore) SignInWithExternalToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, domainerrors.ErrExternalTokenInvalid
	}

	return s.authenticate(ctx, "external sign in", func() (*service.AuthResult, error) {
		return s.gateway.SignInWithIDToken(ctx, idToken)
	})
}

func (s *sessionStore) authenticate(ctx context.Context, operation string, signIn func() (*service.AuthResult, error)) (*entity.Identity, error) {
	s.setSession(entity.Session{State: entity.AuthStateAuthenticating})

	result, err := signIn()
	if err != nil {
		s.log(ctx).Warn("Authentication failed", slog.String("operation", operation), slog.Any("error", err))
		s.setSession(entity.Session{State: entity.AuthStateUnauthenticated})

		return nil, mapGatewayError(err, operation)
	}

	identity, err := s.ensureProfile(ctx, result)
	if err != nil {
		s.log(ctx).Error("Failed to load profile", slog.String("uid", result.UID), slog.Any("error", err))
		s.setSession(entity.Session{State: entity.AuthStateUnauthenticated})

		return nil, err
	}

	s.setSession(entity.Session{
		State:     entity.AuthStateAuthenticated,
		Identity:  identity,
		ExpiresAt: result.ExpiresAt,
	})
	s.log(ctx).Info("Signed in", slog.String("uid", identity.ID), slog.String("role", identity.Role.String()))

	return identity.Clone(), nil
}

// ensureProfile loads the profile record, synthesizing and persisting a
// default one when the backend has none.
func (s *sessionStore) ensureProfile(ctx context.Context, result *service.AuthResult) (*entity.Identity, error) {
	identity, err := s.identities.FindByID(ctx, result.UID)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, mapGatewayError(err, "load profile")
	}

	now := s.now()
	identity = &entity.Identity{
		ID:        result.UID,
		Email:     result.Email,
		Name:      entity.DefaultDisplayName(result.DisplayName, result.Email),
		Role:      entity.RoleUser,
		PhotoURL:  result.PhotoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.log(ctx).Info("Profile record missing, creating default", slog.String("uid", result.UID))
	if err := s.identities.Create(ctx, identity); err != nil {
		return nil, mapGatewayError(err, "create profile")
	}

	return identity, nil
}

// SignUp registers an account and persists its profile with the chosen role.
func (s *sessionStore) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.Identity, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sign up input is required")
	}
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	s.setSession(entity.Session{State: entity.AuthStateAuthenticating})

	result, err := s.gateway.SignUp(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		s.log(ctx).Warn("Sign up failed", slog.String("email", input.Email), slog.Any("error", err))
		s.setSession(entity.Session{State: entity.AuthStateUnauthenticated})

		return nil, mapGatewayError(err, "sign up")
	}

	now := s.now()
	identity := &entity.Identity{
		ID:        result.UID,
		Email:     input.Email,
		Name:      input.Name,
		Role:      input.Role,
		PhotoURL:  result.PhotoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.identities.Create(ctx, identity); err != nil {
		s.log(ctx).Error("Failed to persist profile after sign up", slog.String("uid", result.UID), slog.Any("error", err))
		s.setSession(entity.Session{State: entity.AuthStateUnauthenticated})

		return nil, mapGatewayError(err, "create profile")
	}

	s.setSession(entity.Session{
		State:     entity.AuthStateAuthenticated,
		Identity:  identity,
		ExpiresAt: result.ExpiresAt,
	})
	s.log(ctx).Info("Signed up", slog.String("uid", identity.ID), slog.String("role", identity.Role.String()))

	return identity.Clone(), nil
}

// SignOut ends the session, passing through Authenticating while the provider
// call runs. The local state is cleared even when that call fails.
func (s *sessionStore) SignOut(ctx context.Context) {
	current := s.Current()

	if current != nil {
		s.setSession(entity.Session{State: entity.AuthStateAuthenticating})

		if err := s.gateway.SignOut(ctx, current.ID); err != nil {
			s.log(ctx).Warn("Remote sign out failed", slog.String("uid", current.ID), slog.Any("error", err))
		}
	}

	s.setSession(entity.Session{State: entity.AuthStateUnauthenticated})
}

// UpdateProfile merges the patch into the profile record and the local identity.
func (s *sessionStore) UpdateProfile(ctx context.Context, patch *entity.ProfilePatch) (*entity.Identity, error) {
	current := s.Current()
	if current == nil {
		return nil, domainerrors.ErrNoIdentity
	}
	if patch == nil {
		return current, nil
	}

	if err := s.identities.Upsert(ctx, current.ID, patch); err != nil {
		return nil, mapGatewayError(err, "update profile")
	}

	s.mu.Lock()
	if s.session.Identity == nil || s.session.Identity.ID != current.ID {
		s.mu.Unlock()

		return nil, domainerrors.ErrNoIdentity
	}
	s.session.Identity = patch.Apply(s.session.Identity, s.now())
	snapshot, watchers := s.snapshotLocked()
	s.mu.Unlock()

	notifyWatchers(watchers, snapshot)

	return snapshot.Identity.Clone(), nil
}

// ResetPassword dispatches a password reset email.
func (s *sessionStore) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	if err := s.gateway.SendPasswordReset(ctx, email); err != nil {
		return mapGatewayError(err, "reset password")
	}

	return nil
}

// Current returns a copy of the authenticated identity, or nil.
func (s *sessionStore) Current() *entity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.Identity.Clone()
}

// State returns a snapshot of the session.
func (s *sessionStore) State() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.session
	snapshot.Identity = s.session.Identity.Clone()

	return snapshot
}

// Watch registers fn for state changes.
func (s *sessionStore) Watch(fn func(entity.Session)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	s.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.watchers, id)
			s.mu.Unlock()
		})
	}
}

func (s *sessionStore) setSession(session entity.Session) {
	s.mu.Lock()
	s.session = session
	snapshot, watchers := s.snapshotLocked()
	s.mu.Unlock()

	notifyWatchers(watchers, snapshot)
}

func (s *sessionStore) snapshotLocked() (entity.Session, []func(entity.Session)) {
	snapshot := s.session
	snapshot.Identity = s.session.Identity.Clone()

	watchers := make([]func(entity.Session), 0, len(s.watchers))
	for _, fn := range s.watchers {
		watchers = append(watchers, fn)
	}

	return snapshot, watchers
}

func notifyWatchers(watchers []func(entity.Session), session entity.Session) {
	for _, fn := range watchers {
		fn(session)
	}
}
