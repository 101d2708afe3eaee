package auth

import (
	"testing"
	"time"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate("user-123")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	userID, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("expected user-123, got %s", userID)
	}
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Generate("user-123")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := tm.Parse(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Generate("user-123")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := NewTokenManager("secret-b", time.Hour).Parse(token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	if _, err := tm.Parse("not.a.token"); err == nil {
		t.Error("expected garbage token to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "secret123" {
		t.Error("hash equals plaintext")
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
