package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WithSession attaches the authenticated user to the Gin context when the
// request carries a valid session cookie. It never aborts: suggestion and
// gallery routes stay public.
func WithSession(store *Store, opts CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(opts.name())
		if err != nil || sid == "" {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			// Expired or unknown cookie: treat as anonymous.
			c.Next()
			return
		}

		c.Set("session_id", sess.ID)
		c.Set("user_id", sess.UserID)
		c.Set("username", sess.Username)
		c.Next()
	}
}

// RequireUser aborts with 401 unless WithSession attached a user.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_id") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "authentication required"})
			return
		}
		c.Next()
	}
}
