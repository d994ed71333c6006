package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, unexpected algorithm, or expiry.
var ErrInvalidToken = errors.New("token: invalid token")

// Service issues and verifies signed access tokens. The user payload is
// opaque to the service; it is carried under the "data" claim.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token embedding payload, valid for the configured TTL.
func (s *Service) Issue(payload any) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"data": payload,
		"iat":  jwt.NewNumericDate(now),
		"exp":  jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: failed to sign: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token, returning the decoded claims.
// The embedded payload is available under claims["data"].
func (s *Service) Verify(tokenString string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(
		tokenString,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
