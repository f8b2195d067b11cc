package identitytoolkit

import (
	"strings"

	domainerrors "spotshare/internal/domain/errors"
	"spotshare/internal/errors"

	"google.golang.org/api/googleapi"
)

// providerErrors maps identity toolkit error codes to user-facing errors.
var providerErrors = map[string]*domainerrors.BaseError{
	"EMAIL_NOT_FOUND":             domainerrors.ErrInvalidCredentials,
	"INVALID_PASSWORD":            domainerrors.ErrInvalidCredentials,
	"INVALID_LOGIN_CREDENTIALS":   domainerrors.ErrInvalidCredentials,
	"MISSING_PASSWORD":            domainerrors.ErrInvalidCredentials,
	"EMAIL_EXISTS":                domainerrors.ErrEmailAlreadyInUse,
	"WEAK_PASSWORD":               domainerrors.ErrWeakPassword,
	"INVALID_EMAIL":               domainerrors.ErrInvalidEmail,
	"MISSING_EMAIL":               domainerrors.ErrInvalidEmail,
	"USER_DISABLED":               domainerrors.ErrAccountDisabled,
	"TOO_MANY_ATTEMPTS_TRY_LATER": domainerrors.ErrTooManyAttempts,
	"INVALID_IDP_RESPONSE":        domainerrors.ErrExternalTokenInvalid,
	"INVALID_ID_TOKEN":            domainerrors.ErrExternalTokenInvalid,
}

// mapError converts an identity toolkit failure into a domain error. Unknown
// codes keep the provider error so its message reaches the caller.
func mapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return errors.Wrap(err, operation)
	}

	if known, ok := providerErrors[providerCode(apiErr)]; ok {
		return known.WrapMessage(operation)
	}

	return errors.Wrap(err, operation)
}

// providerCode extracts the leading code of messages such as
// "WEAK_PASSWORD : Password should be at least 6 characters".
func providerCode(apiErr *googleapi.Error) string {
	msg := apiErr.Message
	if msg == "" && len(apiErr.Errors) > 0 {
		msg = apiErr.Errors[0].Message
	}

	code, _, _ := strings.Cut(msg, " ")

	return strings.TrimSpace(code)
}
