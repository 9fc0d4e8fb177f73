package middleware

import (
	"strings"
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 48*time.Hour)

	token, err := svc.Issue(Claims{Email: "jane@bistro.test", Name: "Jane"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Email != "jane@bistro.test" {
		t.Errorf("Expected email jane@bistro.test, got %q", claims.Email)
	}
	if claims.Name != "Jane" {
		t.Errorf("Expected name Jane, got %q", claims.Name)
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != 48*time.Hour {
		t.Errorf("Expected 48h expiry, got %v", ttl)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	good, err := svc.Issue(Claims{Email: "jane@bistro.test"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	expired, err := NewTokenService("test-secret", -time.Minute).Issue(Claims{Email: "jane@bistro.test"})
	if err != nil {
		t.Fatalf("Issue expired failed: %v", err)
	}

	foreign, err := NewTokenService("other-secret", time.Hour).Issue(Claims{Email: "jane@bistro.test"})
	if err != nil {
		t.Fatalf("Issue foreign failed: %v", err)
	}

	parts := strings.Split(good, ".")
	tamperedPayload := parts[0] + "." + parts[1] + "x." + parts[2]
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tamperedSig := parts[0] + "." + parts[1] + "." + string(sig)

	tests := map[string]string{
		"empty":            "",
		"garbage":          "not-a-token",
		"expired":          expired,
		"wrong secret":     foreign,
		"tampered payload": tamperedPayload,
		"tampered sig":     tamperedSig,
	}
	for name, tok := range tests {
		if _, err := svc.Verify(tok); err != ErrInvalidToken {
			t.Errorf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestVerifyRequiresEmail(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	token, err := svc.Issue(Claims{Name: "no email"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := svc.Verify(token); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for claims without email, got %v", err)
	}
}
