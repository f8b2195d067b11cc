// Package identitytoolkit implements the identity gateway on the Identity Toolkit REST API.
package identitytoolkit

import (
	"context"
	"log/slog"
	"net/url"

	"spotshare/config"
	domainerrors "spotshare/internal/domain/errors"
	"spotshare/internal/domain/service"
	"spotshare/internal/errors"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
	toolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

const (
	passwordProviderID = "password"
	googleProviderID   = "google.com"
	// requestURI is required by verifyAssertion even for ID token exchanges.
	requestURI        = "http://localhost"
	passwordResetType = "PASSWORD_RESET"
)

// tokenRevoker revokes the refresh tokens of an account.
type tokenRevoker interface {
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

type gateway struct {
	relyingParty *toolkit.RelyingpartyService
	revoker      tokenRevoker
	logger       *slog.Logger
}

// Params holds dependencies for the gateway, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Auth   *auth.Client `optional:"true"`
}

// NewGateway creates the identity gateway. Refresh tokens are revoked on sign
// out only when firebase.revokeTokensOnSignOut is set and an admin client exists.
func NewGateway(params Params) (service.IdentityGateway, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("firebase.apiKey is required")
	}

	svc, err := toolkit.NewService(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit service")
	}

	var revoker tokenRevoker
	if cfg.RevokeTokensOnSignOut && params.Auth != nil {
		revoker = params.Auth
	}

	return newGateway(svc, revoker, params.Logger), nil
}

func newGateway(svc *toolkit.Service, revoker tokenRevoker, logger *slog.Logger) *gateway {
	return &gateway{
		relyingParty: svc.Relyingparty,
		revoker:      revoker,
		logger:       logger,
	}
}

// SignInWithPassword authenticates with email and password.
func (g *gateway) SignInWithPassword(ctx context.Context, email, password string) (*service.AuthResult, error) {
	resp, err := g.relyingParty.VerifyPassword(&toolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapError(err, "sign in")
	}

	return g.result(&service.AuthResult{
		UID:          resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		PhotoURL:     resp.PhotoUrl,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ProviderID:   passwordProviderID,
	}), nil
}

// SignInWithIDToken exchanges a Google ID token for a session.
func (g *gateway) SignInWithIDToken(ctx context.Context, idToken string) (*service.AuthResult, error) {
	body := url.Values{}
	body.Set("id_token", idToken)
	body.Set("providerId", googleProviderID)

	resp, err := g.relyingParty.VerifyAssertion(&toolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          body.Encode(),
		RequestUri:        requestURI,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapError(err, "sign in with external token")
	}
	if resp.ErrorMessage != "" {
		return nil, domainerrors.ErrExternalTokenInvalid.WithDetails(resp.ErrorMessage)
	}

	displayName := resp.DisplayName
	if displayName == "" {
		displayName = resp.FullName
	}
	providerID := resp.ProviderId
	if providerID == "" {
		providerID = googleProviderID
	}

	return g.result(&service.AuthResult{
		UID:          resp.LocalId,
		Email:        resp.Email,
		DisplayName:  displayName,
		PhotoURL:     resp.PhotoUrl,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ProviderID:   providerID,
	}), nil
}

// SignUp registers an email/password account and signs it in.
func (g *gateway) SignUp(ctx context.Context, email, password, displayName string) (*service.AuthResult, error) {
	if _, err := g.relyingParty.SignupNewUser(&toolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	}).Context(ctx).Do(); err != nil {
		return nil, mapError(err, "sign up")
	}

	result, err := g.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if result.DisplayName == "" {
		result.DisplayName = displayName
	}

	return result, nil
}

// SignOut revokes the refresh tokens of the identity when configured to.
func (g *gateway) SignOut(ctx context.Context, uid string) error {
	if g.revoker == nil || uid == "" {
		return nil
	}

	if err := g.revoker.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Wrap(err, "revoke refresh tokens")
	}

	return nil
}

// SendPasswordReset dispatches a password reset email.
func (g *gateway) SendPasswordReset(ctx context.Context, email string) error {
	if _, err := g.relyingParty.GetOobConfirmationCode(&toolkit.Relyingparty{
		Email:       email,
		RequestType: passwordResetType,
	}).Context(ctx).Do(); err != nil {
		return mapError(err, "send password reset")
	}

	return nil
}

// result stamps the ID token expiry. A token without a readable exp is still usable.
func (g *gateway) result(r *service.AuthResult) *service.AuthResult {
	exp, err := expiryFromIDToken(r.IDToken)
	if err != nil {
		g.logger.Debug("ID token expiry unavailable", slog.String("uid", r.UID), slog.Any("error", err))

		return r
	}
	r.ExpiresAt = exp

	return r
}
