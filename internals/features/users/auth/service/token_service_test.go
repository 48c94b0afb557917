package service

import (
	"testing"

	"github.com/google/uuid"

	"scolaria_backend/internals/configs"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	defer func() { configs.JWTSecret = prev }()

	userID := uuid.New()
	token, err := CreateAccessToken(userID, "user@school.test", "admin")
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims["id"] != userID.String() {
		t.Fatalf("id claim = %v, want %s", claims["id"], userID)
	}
	if claims["email"] != "user@school.test" {
		t.Fatalf("email claim = %v", claims["email"])
	}
	if claims["role"] != "admin" {
		t.Fatalf("role claim = %v", claims["role"])
	}
}

func TestParseAccessTokenRejectsWrongKey(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "first-secret"
	token, err := CreateAccessToken(uuid.New(), "a@b.test", "student")
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	configs.JWTSecret = "other-secret"
	defer func() { configs.JWTSecret = prev }()

	if _, err := ParseAccessToken(token); err == nil {
		t.Fatal("expected signature error with a different key")
	}
}

func TestCreateAccessTokenRequiresSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	defer func() { configs.JWTSecret = prev }()

	if _, err := CreateAccessToken(uuid.New(), "a@b.test", "admin"); err == nil {
		t.Fatal("expected error when JWT secret is unset")
	}
}
