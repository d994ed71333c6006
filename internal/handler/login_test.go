package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"user-service/internal/middleware"
	"user-service/internal/session"
	"user-service/internal/token"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLoginRouter(store session.Store, tokens *token.Service) *gin.Engine {
	router := gin.New()
	router.Use(middleware.ResolveSession(session.CookieOptions{}))
	NewLoginHandler(store, tokens).RegisterRoutes(router)
	return router
}

func TestLoginRejectsEmptyBody(t *testing.T) {
	store := session.NewMemoryStore(0)
	tokens := token.NewService("access", time.Hour)
	router := newLoginRouter(store, tokens)

	tests := []struct {
		name string
		body string
	}{
		{name: "noBody", body: ""},
		{name: "emptyObject", body: "{}"},
		{name: "nullUser", body: `{"user":null}`},
		{name: "emptyStringUser", body: `{"user":""}`},
		{name: "zeroUser", body: `{"user":0}`},
		{name: "falseUser", body: `{"user":false}`},
		{name: "notJSON", body: "not json"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d: %s", rr.Code, rr.Body.String())
			}
			if !strings.Contains(rr.Body.String(), "Body Empty") {
				t.Fatalf("unexpected body %q", rr.Body.String())
			}
		})
	}
}

func TestLoginEstablishesSession(t *testing.T) {
	store := session.NewMemoryStore(0)
	tokens := token.NewService("access", time.Hour)
	router := newLoginRouter(store, tokens)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"user":{"name":"x"}}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if rr.Body.String() != "User successfully logged in" {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != session.CookieName {
		t.Fatalf("expected a session cookie, got %+v", cookies)
	}

	sess, err := store.Get(context.Background(), cookies[0].Value)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if sess == nil {
		t.Fatalf("expected session persisted in the store")
	}

	accessToken, ok := sess.AccessToken()
	if !ok || accessToken == "" {
		t.Fatalf("expected an access token bound into the session")
	}

	claims, err := tokens.Verify(accessToken)
	if err != nil {
		t.Fatalf("stored token must verify: %v", err)
	}
	data, ok := claims["data"].(map[string]any)
	if !ok || data["name"] != "x" {
		t.Fatalf("payload not preserved in token: %+v", claims)
	}
}

func TestRepeatedLoginOverwritesToken(t *testing.T) {
	store := session.NewMemoryStore(0)
	tokens := token.NewService("access", time.Hour)
	router := newLoginRouter(store, tokens)

	first := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"user":"first"}`))
	first.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, first)

	cookie := rr.Result().Cookies()[0]
	sess, _ := store.Get(context.Background(), cookie.Value)
	firstToken, _ := sess.AccessToken()

	second := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"user":"second"}`))
	second.Header.Set("Content-Type", "application/json")
	second.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie.Value})
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, second)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	sess, _ = store.Get(context.Background(), cookie.Value)
	secondToken, _ := sess.AccessToken()
	if secondToken == firstToken {
		t.Fatalf("expected the second login to overwrite the stored token")
	}

	claims, err := tokens.Verify(secondToken)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims["data"] != "second" {
		t.Fatalf("expected the latest payload, got %+v", claims["data"])
	}
}
