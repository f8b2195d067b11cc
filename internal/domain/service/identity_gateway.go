package service

import (
	"context"
	"time"
)

// AuthResult is the outcome of a successful authentication round-trip.
type AuthResult struct {
	UID          string    // Subject ID assigned by the identity provider
	Email        string    // Email the account is registered with
	DisplayName  string    // Provider display name, may be empty
	PhotoURL     string    // Provider avatar URL, may be empty
	IDToken      string    // Short-lived ID token
	RefreshToken string    // Refresh token for the ID token
	ProviderID   string    // "password" or the external provider, e.g. "google.com"
	ExpiresAt    time.Time // ID token expiry, zero when unknown
}

// IdentityGateway defines the interface for the external identity provider.
type IdentityGateway interface {
	// SignInWithPassword authenticates with email and password.
	SignInWithPassword(ctx context.Context, email, password string) (*AuthResult, error)

	// SignInWithIDToken exchanges an external provider ID token (e.g. Google) for a session.
	SignInWithIDToken(ctx context.Context, idToken string) (*AuthResult, error)

	// SignUp registers a new email/password account.
	SignUp(ctx context.Context, email, password, displayName string) (*AuthResult, error)

	// SignOut ends the provider session of the identity.
	SignOut(ctx context.Context, uid string) error

	// SendPasswordReset dispatches a password reset email.
	SendPasswordReset(ctx context.Context, email string) error
}
