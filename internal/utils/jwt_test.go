package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken(t *testing.T) {
	const secret = "test-secret"
	const userID = "8f9f2f0a-7b58-4f0e-9a64-2b2f6f8f1a11"

	access, err := NewAccessToken(secret, userID, "user", 24)
	require.NoError(t, err)
	require.NotEmpty(t, access.Token)

	parsed, err := jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID, claims["sub"])
	assert.Equal(t, "user", claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), exp.Time, time.Minute)
	assert.WithinDuration(t, access.Exp, exp.Time, time.Second)
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	access, err := NewAccessToken("right-secret", "some-user", "admin", 1)
	require.NoError(t, err)

	_, err = jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}
