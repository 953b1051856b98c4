package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueJWT signs an HS256 bearer token for subject, valid from now for ttl.
// An empty issuer is left out of the claims.
func IssueJWT(subject, secret, issuer string, ttl time.Duration, now time.Time) (string, error) {
	if subject == "" {
		return "", errors.New("token subject must not be empty")
	}
	if secret == "" {
		return "", errors.New("signing secret must not be empty")
	}
	if ttl <= 0 {
		return "", errors.New("token lifetime must be positive")
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
