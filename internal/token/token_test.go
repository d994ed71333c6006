package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService("access", time.Hour)

	payload := map[string]any{"name": "x", "id": float64(7)}

	signed, err := svc.Issue(payload)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	data, ok := claims["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data claim to be an object, got %T", claims["data"])
	}
	if data["name"] != "x" {
		t.Fatalf("payload not preserved: %+v", data)
	}
	if data["id"] != float64(7) {
		t.Fatalf("payload not preserved: %+v", data)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim: %+v", claims)
	}
	if _, ok := claims["iat"]; !ok {
		t.Fatalf("expected iat claim: %+v", claims)
	}
}

func TestRoundTripScalarPayloads(t *testing.T) {
	svc := NewService("access", time.Hour)

	tests := []struct {
		name    string
		payload any
	}{
		{name: "string", payload: "alice"},
		{name: "number", payload: float64(42)},
		{name: "array", payload: []any{"a", "b"}},
		{name: "nested", payload: map[string]any{"user": map[string]any{"name": "abc"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			signed, err := svc.Issue(tc.payload)
			if err != nil {
				t.Fatalf("issue: %v", err)
			}
			claims, err := svc.Verify(signed)
			if err != nil {
				t.Fatalf("verify: %v", err)
			}
			if claims["data"] == nil {
				t.Fatalf("payload lost: %+v", claims)
			}
		})
	}
}

func TestVerifyRejectsInvalidTokens(t *testing.T) {
	svc := NewService("access", time.Hour)

	otherSecret, err := NewService("not-access", time.Hour).Issue("payload")
	if err != nil {
		t.Fatalf("issue with other secret: %v", err)
	}

	expired, err := NewService("access", -time.Minute).Issue("payload")
	if err != nil {
		t.Fatalf("issue expired: %v", err)
	}

	valid, err := svc.Issue("payload")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name        string
		tokenString string
	}{
		{name: "empty", tokenString: ""},
		{name: "garbage", tokenString: "not.a.jwt"},
		{name: "wrongSecret", tokenString: otherSecret},
		{name: "expired", tokenString: expired},
		{name: "tamperedSignature", tokenString: valid + "x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Verify(tc.tokenString)
			if err == nil {
				t.Fatalf("expected verification to fail")
			}
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
