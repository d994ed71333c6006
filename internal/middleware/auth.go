package middleware

import (
	"context"
	"net/http"

	"user-service/internal/session"
	"user-service/internal/token"

	"github.com/gin-gonic/gin"
)

// unexported, collision-proof context key
type userContextKeyType struct{}

var userKey = userContextKeyType{}

// UserFromContext extracts the decoded token claims attached by the auth
// gate.
func UserFromContext(ctx context.Context) (map[string]any, bool) {
	claims, ok := ctx.Value(userKey).(map[string]any)
	return claims, ok
}

type AuthMiddleware struct {
	store  session.Store
	tokens *token.Service
}

func NewAuthMiddleware(store session.Store, tokens *token.Service) *AuthMiddleware {
	return &AuthMiddleware{
		store:  store,
		tokens: tokens,
	}
}

// RequireAuth gates a route group on a logged-in session holding a valid
// access token. It reads only the session cookie, never the request body,
// so it is safe to run before any body parsing.
func (a *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Resolve session
		sessionID := SessionID(c)

		var sess *session.Session
		if sessionID != "" {
			var err error
			sess, err = a.store.Get(c.Request.Context(), sessionID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"message": "Session store unavailable",
				})
				return
			}
		}

		// 2. No session, or never logged in
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "User not logged in",
			})
			return
		}

		accessToken, ok := sess.AccessToken()
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "User not logged in",
			})
			return
		}

		// 3. Verify the stored token
		claims, err := a.tokens.Verify(accessToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "User not authenticated",
			})
			return
		}

		// 4. Attach decoded claims for downstream handlers
		ctx := context.WithValue(c.Request.Context(), userKey, map[string]any(claims))
		c.Request = c.Request.WithContext(ctx)
		c.Set("user", map[string]any(claims))

		c.Next()
	}
}
