package auth

import (
	"strings"
	"testing"
)

func TestBcryptHasher_VerifyMatch(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "s3cret" || hash == "" {
		t.Fatalf("hash must be a non-empty one-way encoding, got %q", hash)
	}
	if !h.Verify("s3cret", hash) {
		t.Fatalf("Verify must accept the original secret")
	}
}

func TestBcryptHasher_VerifyMismatch(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h.Verify("other", hash) {
		t.Fatalf("Verify must reject a wrong secret")
	}
	if h.Verify("s3cret", "not-a-hash") {
		t.Fatalf("Verify must reject a malformed stored hash")
	}
}

func TestBcryptHasher_SaltedHashes(t *testing.T) {
	h := NewBcryptHasher(4)

	a, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if a == b {
		t.Fatalf("hashes of the same secret must differ (random salt)")
	}
	if !strings.HasPrefix(a, "$2") {
		t.Fatalf("expected bcrypt encoding, got %q", a)
	}
}

func TestPrincipal_Anonymous(t *testing.T) {
	var p *Principal
	if !p.Anonymous() {
		t.Fatalf("nil principal must be anonymous")
	}
	if !(&Principal{Email: "a@x.com"}).Anonymous() {
		t.Fatalf("unauthenticated principal must be anonymous")
	}
	if (&Principal{Email: "a@x.com", Authenticated: true}).Anonymous() {
		t.Fatalf("authenticated principal with email must not be anonymous")
	}
}
