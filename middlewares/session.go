package middlewares

import (
	"net/http"
	"time"

	"fethink/utils"

	"github.com/gin-gonic/gin"
)

// RequireSession rejects requests whose session cookie is missing, tampered
// with or expired.
func RequireSession(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(utils.SessionCookieName)
		if err != nil || !utils.IsSessionTokenValid(secret, raw, time.Now()) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
