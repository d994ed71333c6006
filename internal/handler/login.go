package handler

import (
	"net/http"

	"user-service/internal/logger"
	"user-service/internal/middleware"
	"user-service/internal/session"
	"user-service/internal/token"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	sessions session.Store
	tokens   *token.Service
}

func NewLoginHandler(sessions session.Store, tokens *token.Service) *LoginHandler {
	return &LoginHandler{
		sessions: sessions,
		tokens:   tokens,
	}
}

func (h *LoginHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", h.Login)
}

type loginRequest struct {
	User any `json:"user"`
}

// Login mints an access token for the submitted user payload and binds it
// into the caller's session. The payload is not validated or matched
// against anything; possession of the resulting session is the only
// credential. Repeated logins overwrite the stored token.
func (h *LoginHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || isEmpty(req.User) {
		// Historical quirk: a missing user payload answers 404, not 400.
		c.JSON(http.StatusNotFound, gin.H{"message": "Body Empty"})
		return
	}

	accessToken, err := h.tokens.Issue(req.User)
	if err != nil {
		logger.Error("failed to issue token", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	sessionID := middleware.SessionID(c)
	err = h.sessions.Set(
		c.Request.Context(),
		sessionID,
		session.AuthorizationKey,
		session.Authorization{AccessToken: accessToken},
	)
	if err != nil {
		logger.Error("failed to persist session", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	c.String(http.StatusOK, "User successfully logged in")
}

// isEmpty mirrors the truthiness check the original applied to the user
// payload: absent, null, "", 0 and false all count as an empty body.
func isEmpty(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case bool:
		return !value
	case float64:
		return value == 0
	default:
		return false
	}
}
