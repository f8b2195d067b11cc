// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Identity is the profile record of an authenticated account.
// Role is fixed at registration and is never changed by the client.
type Identity struct {
	ID        string    // Subject ID from the identity provider.
	Email     string    // Sign-in email.
	Name      string    // Display name.
	Role      Role      // Account kind chosen at registration.
	PhotoURL  string    // Optional avatar URL.
	Phone     string    // Optional phone number.
	CreatedAt time.Time // Creation timestamp.
	UpdatedAt time.Time // Last modification timestamp.
}

// Clone returns a copy of the identity.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i

	return &c
}

// ProfilePatch is a partial profile edit. Role is deliberately absent.
type ProfilePatch struct {
	Email    *string
	Name     *string
	PhotoURL *string
	Phone    *string
}

// Apply returns a copy of i with the patch merged in.
func (p *ProfilePatch) Apply(i *Identity, updatedAt time.Time) *Identity {
	out := i.Clone()
	if p == nil || out == nil {
		return out
	}

	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.PhotoURL != nil {
		out.PhotoURL = *p.PhotoURL
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	out.UpdatedAt = updatedAt

	return out
}

// DefaultDisplayName picks the provider display name, falling back to the
// local part of the email.
func DefaultDisplayName(displayName, email string) string {
	if name := strings.TrimSpace(displayName); name != "" {
		return name
	}

	local, _, _ := strings.Cut(email, "@")

	return local
}

// AuthState is the phase of the session state machine.
type AuthState string

const (
	AuthStateUnauthenticated AuthState = "unauthenticated"
	AuthStateAuthenticating  AuthState = "authenticating"
	AuthStateAuthenticated   AuthState = "authenticated"
)

// Session is a snapshot of the current authentication state.
type Session struct {
	State     AuthState // Current phase.
	Identity  *Identity // Set only when authenticated.
	ExpiresAt time.Time // ID token expiry, zero when unknown.
}
