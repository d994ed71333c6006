package session

import (
	"context"
	"time"
)

// AuthorizationKey is the session key holding the caller's Authorization
// entry once it has logged in.
const AuthorizationKey = "authorization"

// Authorization is the value bound under AuthorizationKey.
type Authorization struct {
	AccessToken string `json:"accessToken"`
}

// Session is a snapshot of one client's server-side state, keyed by the
// opaque identifier carried in the session cookie.
type Session struct {
	ID        string         `json:"id"`
	Values    map[string]any `json:"values"`
	ExpiresAt time.Time      `json:"expiresAt"` // zero means no expiry
}

// AccessToken returns the token bound under the session's authorization
// entry. ok reports whether the entry exists at all; the token may still
// be empty for a malformed entry, in which case verification fails
// downstream.
func (s *Session) AccessToken() (token string, ok bool) {
	v, present := s.Values[AuthorizationKey]
	if !present {
		return "", false
	}

	switch a := v.(type) {
	case Authorization:
		return a.AccessToken, true
	case map[string]any:
		// Redis round-trips values through JSON, so the typed entry
		// comes back as a plain map.
		t, _ := a["accessToken"].(string)
		return t, true
	default:
		return "", true
	}
}

// Store defines how session data is stored and retrieved. Implementations
// must be safe for concurrent use; a Session returned by Get is a snapshot
// and never reflects concurrent writes.
type Store interface {
	// Get returns the session for sessionID, or nil when it is unknown
	// or expired.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Set upserts a single key in the session's values, creating the
	// session if it does not exist yet.
	Set(ctx context.Context, sessionID, key string, value any) error

	// Delete removes the session.
	Delete(ctx context.Context, sessionID string) error
}
