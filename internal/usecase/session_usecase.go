// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"spotshare/internal/domain/entity"
)

// SignUpInput represents the input for registering an account
type SignUpInput struct {
	Email    string      `validate:"required,email"`
	Password string      `validate:"required,min=6"`
	Name     string      `validate:"required,max=100"`
	Role     entity.Role `validate:"required,oneof=user homeowner"`
}

// SessionUsecase defines the interface for the authenticated session
type SessionUsecase interface {
	SignIn(ctx context.Context, email, password string) (*entity.Identity, error)
	SignInWithExternalToken(ctx context.Context, idToken string) (*entity.Identity, error)
	SignUp(ctx context.Context, input *SignUpInput) (*entity.Identity, error)
	// SignOut always clears the local session; remote failures are only logged.
	SignOut(ctx context.Context)
	UpdateProfile(ctx context.Context, patch *entity.ProfilePatch) (*entity.Identity, error)
	ResetPassword(ctx context.Context, email string) error

	Current() *entity.Identity
	State() entity.Session
	// Watch registers fn for state changes and returns a function that removes it.
	Watch(fn func(entity.Session)) func()
}
