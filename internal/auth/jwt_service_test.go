package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret: "test-suite-super-secret-key-32-bytes!!",
		Issuer: "volunteer-connect-test",
	})
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(AccessTokenInput{
		UserID:   "user-1",
		Email:    "volunteer@test.com",
		UserType: "volunteer",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "volunteer@test.com", claims.Email)
	require.Equal(t, "volunteer", claims.UserType)
}

func TestJWTServiceRejectsExpiredToken(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	issuer, err := NewJWTService(JWTConfig{
		Secret:         "test-suite-super-secret-key-32-bytes!!",
		AccessTokenTTL: time.Minute,
		Clock:          func() time.Time { return issued },
	})
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(AccessTokenInput{
		UserID: "user-1",
		Email:  "volunteer@test.com",
	})
	require.NoError(t, err)

	verifier, err := NewJWTService(JWTConfig{
		Secret: "test-suite-super-secret-key-32-bytes!!",
	})
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestJWTServiceRejectsWrongIssuer(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{
		Secret: "test-suite-super-secret-key-32-bytes!!",
		Issuer: "someone-else",
	})
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(AccessTokenInput{
		UserID: "user-1",
		Email:  "volunteer@test.com",
	})
	require.NoError(t, err)

	verifier, err := NewJWTService(JWTConfig{
		Secret: "test-suite-super-secret-key-32-bytes!!",
		Issuer: "volunteer-connect",
	})
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	require.Error(t, err)
}
