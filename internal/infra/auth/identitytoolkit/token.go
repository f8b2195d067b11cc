package identitytoolkit

import (
	"time"

	"spotshare/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// expiryFromIDToken reads the exp claim of an ID token without verifying
// its signature.
func expiryFromIDToken(idToken string) (time.Time, error) {
	if idToken == "" {
		return time.Time{}, errors.New("empty id token")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return time.Time{}, errors.Wrap(err, "parse id token")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, errors.Wrap(err, "read exp claim")
	}
	if exp == nil {
		return time.Time{}, errors.New("id token has no exp claim")
	}

	return exp.Time, nil
}
