package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"spotshare/internal/domain/entity"
	domainerrors "spotshare/internal/domain/errors"
	"spotshare/internal/domain/repository"
	"spotshare/internal/domain/service"
	mockRepo "spotshare/internal/mocks/repository"
	mockSvc "spotshare/internal/mocks/service"
	"spotshare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	store      *sessionStore
	gateway    *mockSvc.MockIdentityGateway
	identities *mockRepo.MockIdentityRepository
	states     []entity.AuthState
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		gateway:    mockSvc.NewMockIdentityGateway(t),
		identities: mockRepo.NewMockIdentityRepository(t),
	}
	f.store = NewSessionStore(SessionStoreParams{
		Gateway:    f.gateway,
		Identities: f.identities,
		Logger:     newDiscardLogger(),
	}).(*sessionStore)
	f.store.now = func() time.Time { return fixedNow }
	f.store.Watch(func(s entity.Session) { f.states = append(f.states, s.State) })

	return f
}

func TestSessionStore_SignIn_ExistingProfile(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	expires := fixedNow.Add(time.Hour)
	profile := &entity.Identity{ID: "u1", Email: "ann@example.com", Name: "Ann", Role: entity.RoleHomeowner}

	f.gateway.EXPECT().SignInWithPassword(ctx, "ann@example.com", "secret").
		Return(&service.AuthResult{UID: "u1", Email: "ann@example.com", ExpiresAt: expires}, nil)
	f.identities.EXPECT().FindByID(ctx, "u1").Return(profile, nil)

	identity, err := f.store.SignIn(ctx, " ann@example.com ", "secret")
	require.NoError(t, err)

	assert.Equal(t, entity.RoleHomeowner, identity.Role)
	assert.Equal(t, entity.AuthStateAuthenticated, f.store.State().State)
	assert.Equal(t, expires, f.store.State().ExpiresAt)
	assert.Equal(t, []entity.AuthState{entity.AuthStateAuthenticating, entity.AuthStateAuthenticated}, f.states)
}

func TestSessionStore_SignIn_SynthesizesMissingProfile(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.gateway.EXPECT().SignInWithPassword(ctx, "bob@example.com", "secret").
		Return(&service.AuthResult{UID: "u2", Email: "bob@example.com"}, nil)
	f.identities.EXPECT().FindByID(ctx, "u2").Return(nil, repository.ErrIdentityNotFound)
	f.identities.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Identity")).
		Run(func(_ context.Context, identity *entity.Identity) {
			assert.Equal(t, "u2", identity.ID)
			assert.Equal(t, "bob", identity.Name)
			assert.Equal(t, entity.RoleUser, identity.Role)
			assert.Equal(t, fixedNow, identity.CreatedAt)
		}).
		Return(nil)

	identity, err := f.store.SignIn(ctx, "bob@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "bob", identity.Name)
	assert.Equal(t, entity.AuthStateAuthenticated, f.store.State().State)
}

func TestSessionStore_SignIn_GatewayFailureReturnsToUnauthenticated(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.gateway.EXPECT().SignInWithPassword(ctx, "ann@example.com", "wrong").
		Return(nil, domainerrors.ErrInvalidCredentials)

	_, err := f.store.SignIn(ctx, "ann@example.com", "wrong")
	require.Error(t, err)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, f.store.Current())
	assert.Equal(t, []entity.AuthState{entity.AuthStateAuthenticating, entity.AuthStateUnauthenticated}, f.states)
}

func TestSessionStore_SignIn_ProfileLoadFailure(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.gateway.EXPECT().SignInWithPassword(ctx, "ann@example.com", "secret").
		Return(&service.AuthResult{UID: "u1"}, nil)
	f.identities.EXPECT().FindByID(ctx, "u1").Return(nil, errors.New("unavailable"))

	_, err := f.store.SignIn(ctx, "ann@example.com", "secret")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "unavailable", appErr.Message())
	assert.Equal(t, entity.AuthStateUnauthenticated, f.store.State().State)
}

func TestSessionStore_SignIn_RequiresCredentials(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.store.SignIn(context.Background(), "", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, f.states)
}

func TestSessionStore_SignInWithExternalToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.gateway.EXPECT().SignInWithIDToken(ctx, "google-token").
		Return(&service.AuthResult{UID: "g1", Email: "carol@example.com", DisplayName: "Carol C", ProviderID: "google.com"}, nil)
	f.identities.EXPECT().FindByID(ctx, "g1").Return(nil, repository.ErrIdentityNotFound)
	f.identities.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Identity")).Return(nil)

	identity, err := f.store.SignInWithExternalToken(ctx, "google-token")
	require.NoError(t, err)
	assert.Equal(t, "Carol C", identity.Name)
}

func TestSessionStore_SignUp_PersistsChosenRole(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	input := &usecase.SignUpInput{Email: "dan@example.com", Password: "secret1", Name: "Dan", Role: entity.RoleHomeowner}

	f.gateway.EXPECT().SignUp(ctx, "dan@example.com", "secret1", "Dan").
		Return(&service.AuthResult{UID: "u3", Email: "dan@example.com"}, nil)
	f.identities.EXPECT().Create(ctx, mock.MatchedBy(func(identity *entity.Identity) bool {
		return identity.ID == "u3" && identity.Role == entity.RoleHomeowner && identity.Name == "Dan"
	})).Return(nil)

	identity, err := f.store.SignUp(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleHomeowner, identity.Role)
	assert.Equal(t, entity.AuthStateAuthenticated, f.store.State().State)
}

func TestSessionStore_SignUp_Validation(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.store.SignUp(context.Background(), &usecase.SignUpInput{
		Email: "not-an-email", Password: "123", Name: "X", Role: "admin",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSessionStore_SignUp_ProfileWriteFailure(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.gateway.EXPECT().SignUp(ctx, "dan@example.com", "secret1", "Dan").
		Return(&service.AuthResult{UID: "u3"}, nil)
	f.identities.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrPermissionDenied)

	_, err := f.store.SignUp(ctx, &usecase.SignUpInput{Email: "dan@example.com", Password: "secret1", Name: "Dan", Role: entity.RoleUser})

	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.Equal(t, entity.AuthStateUnauthenticated, f.store.State().State)
}

func TestSessionStore_SignOut_ClearsStateEvenOnFailure(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	f.store.setSession(entity.Session{State: entity.AuthStateAuthenticated, Identity: &entity.Identity{ID: "u1"}})

	f.gateway.EXPECT().SignOut(ctx, "u1").Return(errors.New("network down"))

	f.store.SignOut(ctx)

	assert.Nil(t, f.store.Current())
	assert.Equal(t, entity.AuthStateUnauthenticated, f.store.State().State)
	assert.Equal(t, []entity.AuthState{
		entity.AuthStateAuthenticated,
		entity.AuthStateAuthenticating,
		entity.AuthStateUnauthenticated,
	}, f.states)
}

func TestSessionStore_SignOut_AuthenticatingDuringProviderCall(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	f.store.setSession(entity.Session{State: entity.AuthStateAuthenticated, Identity: &entity.Identity{ID: "u1"}})

	var during entity.Session
	f.gateway.EXPECT().SignOut(ctx, "u1").RunAndReturn(func(context.Context, string) error {
		during = f.store.State()

		return nil
	})

	f.store.SignOut(ctx)

	assert.Equal(t, entity.AuthStateAuthenticating, during.State)
	assert.Nil(t, during.Identity)
	assert.Equal(t, entity.AuthStateUnauthenticated, f.store.State().State)
}

func TestSessionStore_SignOut_WhenUnauthenticated(t *testing.T) {
	f := newSessionFixture(t)

	f.store.SignOut(context.Background())

	assert.Equal(t, entity.AuthStateUnauthenticated, f.store.State().State)
	assert.Equal(t, []entity.AuthState{entity.AuthStateUnauthenticated}, f.states)
}

func TestSessionStore_UpdateProfile(t *testing.T) {
	t.Run("no identity", func(t *testing.T) {
		f := newSessionFixture(t)

		_, err := f.store.UpdateProfile(context.Background(), &entity.ProfilePatch{Name: ptr("X")})
		assert.ErrorIs(t, err, domainerrors.ErrNoIdentity)
	})

	t.Run("upsert and local merge", func(t *testing.T) {
		f := newSessionFixture(t)
		ctx := context.Background()
		f.store.setSession(entity.Session{
			State:    entity.AuthStateAuthenticated,
			Identity: &entity.Identity{ID: "u1", Name: "Old", Role: entity.RoleHomeowner},
		})
		patch := &entity.ProfilePatch{Name: ptr("New"), Phone: ptr("555")}

		f.identities.EXPECT().Upsert(ctx, "u1", patch).Return(nil)

		identity, err := f.store.UpdateProfile(ctx, patch)
		require.NoError(t, err)

		assert.Equal(t, "New", identity.Name)
		assert.Equal(t, "555", f.store.Current().Phone)
		assert.Equal(t, entity.RoleHomeowner, f.store.Current().Role)
		assert.Equal(t, fixedNow, f.store.Current().UpdatedAt)
	})

	t.Run("upsert failure keeps local identity", func(t *testing.T) {
		f := newSessionFixture(t)
		ctx := context.Background()
		f.store.setSession(entity.Session{State: entity.AuthStateAuthenticated, Identity: &entity.Identity{ID: "u1", Name: "Old"}})

		f.identities.EXPECT().Upsert(ctx, "u1", mock.Anything).Return(errors.New("offline"))

		_, err := f.store.UpdateProfile(ctx, &entity.ProfilePatch{Name: ptr("New")})
		require.Error(t, err)
		assert.Equal(t, "Old", f.store.Current().Name)
	})
}

func TestSessionStore_ResetPassword(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.gateway.EXPECT().SendPasswordReset(ctx, "ann@example.com").Return(nil)

	require.NoError(t, f.store.ResetPassword(ctx, "ann@example.com"))
	assert.ErrorIs(t, f.store.ResetPassword(ctx, " "), domainerrors.ErrValidationFailed)
}

func TestSessionStore_WatchUnsubscribe(t *testing.T) {
	f := newSessionFixture(t)
	calls := 0
	stop := f.store.Watch(func(entity.Session) { calls++ })

	f.store.setSession(entity.Session{State: entity.AuthStateAuthenticating})
	stop()
	stop()
	f.store.setSession(entity.Session{State: entity.AuthStateUnauthenticated})

	assert.Equal(t, 1, calls)
}

func TestSessionStore_CurrentReturnsCopy(t *testing.T) {
	f := newSessionFixture(t)
	f.store.setSession(entity.Session{State: entity.AuthStateAuthenticated, Identity: &entity.Identity{ID: "u1", Name: "Ann"}})

	f.store.Current().Name = "Mallory"

	assert.Equal(t, "Ann", f.store.Current().Name)
}
