package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCode(t *testing.T) {
	const configured = "FETHINK-EMAIL-02"

	assert.True(t, ValidateCode("FETHINK-EMAIL-02", configured))
	assert.False(t, ValidateCode("FETHINK-EMAIL-01", configured), "equal-length wrong code")
	assert.False(t, ValidateCode("WRONG", configured))
	assert.False(t, ValidateCode("", configured))
	assert.False(t, ValidateCode("FETHINK-EMAIL-02X", configured))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	now := time.Now()

	token, err := MintSessionToken(secret, 2*time.Hour, now)
	require.NoError(t, err)

	assert.True(t, IsSessionTokenValid(secret, token, now))
	assert.True(t, IsSessionTokenValid(secret, token, now.Add(time.Hour)))
	assert.False(t, IsSessionTokenValid(secret, token, now.Add(3*time.Hour)), "past expiry")
}

func TestSessionTokenFailsClosed(t *testing.T) {
	secret := []byte("test-secret")
	now := time.Now()

	t.Run("empty token", func(t *testing.T) {
		assert.False(t, IsSessionTokenValid(secret, "", now))
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.False(t, IsSessionTokenValid(secret, "not-a-token", now))
		assert.False(t, IsSessionTokenValid(secret, "aaa.bbb.ccc", now))
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := MintSessionToken([]byte("other-secret"), time.Hour, now)
		require.NoError(t, err)
		assert.False(t, IsSessionTokenValid(secret, token, now))
	})

	t.Run("missing expiry claim", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).SignedString(secret)
		require.NoError(t, err)
		assert.False(t, IsSessionTokenValid(secret, token, now))
	})

	t.Run("expiry equal to now", func(t *testing.T) {
		// Strictly now < exp: a token expiring exactly now is invalid.
		issued := now.Truncate(time.Second)
		token, err := MintSessionToken(secret, 0, issued)
		require.NoError(t, err)
		assert.False(t, IsSessionTokenValid(secret, token, issued))
	})

	t.Run("unsigned algorithm rejected", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		assert.False(t, IsSessionTokenValid(secret, token, now))
	})
}
