package utils

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", "watsee-test", time.Hour)

	token, err := m.GenerateForUser(42)
	if err != nil {
		t.Fatalf("GenerateForUser: %v", err)
	}
	subject, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if subject != "42" {
		t.Fatalf("expected subject 42, got %q", subject)
	}
}

func TestAdminTokenSubject(t *testing.T) {
	m := NewTokenManager("test-secret", "watsee-test", time.Hour)

	token, err := m.Generate(AdminSubject)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	subject, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if subject != AdminSubject {
		t.Fatalf("expected the admin subject, got %q", subject)
	}
}

func TestParseRejectsForeignSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", "watsee-test", time.Hour)
	verifier := NewTokenManager("secret-two", "watsee-test", time.Hour)

	token, err := issuer.GenerateForUser(7)
	if err != nil {
		t.Fatalf("GenerateForUser: %v", err)
	}
	if _, err := verifier.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", "watsee-test", time.Hour)

	if _, err := m.Parse("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("test-secret", "watsee-test", -time.Minute)

	token, err := m.GenerateForUser(7)
	if err != nil {
		t.Fatalf("GenerateForUser: %v", err)
	}
	if _, err := m.Parse(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}
