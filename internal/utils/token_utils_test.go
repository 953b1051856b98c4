package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/surety_risk_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueJWT_RoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	signed, err := utils.IssueJWT("underwriter-3", "s3cret", "surety-risk", time.Hour, now)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) { return []byte("s3cret"), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer("surety-risk"))
	require.NoError(t, err)
	assert.Equal(t, "underwriter-3", claims.Subject)
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestIssueJWT_InvalidArguments(t *testing.T) {
	now := time.Now()

	_, err := utils.IssueJWT("", "s", "", time.Hour, now)
	assert.ErrorContains(t, err, "subject")
	_, err = utils.IssueJWT("u", "", "", time.Hour, now)
	assert.ErrorContains(t, err, "secret")
	_, err = utils.IssueJWT("u", "s", "", 0, now)
	assert.ErrorContains(t, err, "lifetime")
}
