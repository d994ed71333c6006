package middleware

import (
	"net/http"

	"user-service/internal/logger"
	"user-service/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionIDKey = "sessionID"

// SessionID returns the session identifier resolved for this request.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

// ResolveSession makes sure every request carries a session identifier:
// a valid cookie is reused, otherwise a fresh ID is generated and issued
// to the client. No store entry is created here; the store materializes a
// session on first write.
func ResolveSession(opts session.CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err == nil && cookie.Value != "" {
			c.Set(sessionIDKey, cookie.Value)
			c.Next()
			return
		}

		sessionID, err := session.GenerateID()
		if err != nil {
			logger.Error("failed to generate session id", map[string]any{
				"error": err.Error(),
			})
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		session.SetCookie(c.Writer, sessionID, opts)
		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}
