package utils

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the signed session claim.
const SessionCookieName = "fethink_email2_session"

// ValidateCode reports whether the submitted code matches the configured
// access code. Lengths are compared first, then the bytes in constant time so
// the comparison cannot leak the position of the first mismatch.
func ValidateCode(submitted, configured string) bool {
	if len(submitted) != len(configured) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(configured)) == 1
}

// MintSessionToken signs a claim that expires lifetime after now. The token
// carries nothing but the expiry; the server keeps no record of it.
func MintSessionToken(secret []byte, lifetime time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// IsSessionTokenValid fails closed: a missing token, bad signature, malformed
// payload, absent expiry or an expiry at or before now all count as invalid.
func IsSessionTokenValid(secret []byte, raw string, now time.Time) bool {
	if raw == "" {
		return false
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	token, err := parser.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	return err == nil && token.Valid
}

// SetSessionCookie attaches the signed session cookie to the response.
func SetSessionCookie(c *gin.Context, token string, lifetime time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(lifetime.Seconds()), "/", "", true, true)
}

// ClearSessionCookie expires the session cookie client-side. Issued tokens
// cannot be revoked server-side; they simply age out.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", true, true)
}
