package auth

import (
	"testing"
	"time"
)

func TestManager_RoundTrip(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret"), AccessTTL: time.Hour, Issuer: "test"}

	token, err := m.NewAccessToken(7, "admin@clinica.com", "ADMIN")
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID() != 7 {
		t.Fatalf("expected user 7, got %d", claims.UserID())
	}
	if claims.Email != "admin@clinica.com" || claims.Role != "ADMIN" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatal("expected jti")
	}
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	m := &Manager{Secret: []byte("secret-a"), AccessTTL: time.Hour}
	token, err := m.NewAccessToken(1, "a@b.com", "OWNER")
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	other := &Manager{Secret: []byte("secret-b"), AccessTTL: time.Hour}
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestManager_RejectsExpired(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret"), AccessTTL: -time.Minute}
	token, err := m.NewAccessToken(1, "a@b.com", "OWNER")
	if err != nil {
		t.Fatalf("new token: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}
