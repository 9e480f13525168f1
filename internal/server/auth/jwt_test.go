package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/jobinow/jobinow/internal/common"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	value, err := GenerateToken("u-1", "a@x.com", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if value == "" {
		t.Fatalf("empty token value")
	}

	claims, err := ParseToken(value, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != "u-1" || claims.Email != "a@x.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("expected non-empty token id claim")
	}
}

func TestGenerateToken_UniqueValues(t *testing.T) {
	secret := []byte("test-secret")

	a, err := GenerateToken("u-1", "a@x.com", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	b, err := GenerateToken("u-1", "a@x.com", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if a == b {
		t.Fatalf("two issued values must differ")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	value, err := GenerateToken("u-1", "a@x.com", []byte("right"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken(value, []byte("wrong")); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	value, err := GenerateToken("u-1", "a@x.com", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken(value, secret); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken for expired token, got %v", err)
	}
}
