package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher is the credential verifier. It wraps a one-way salted
// hashing primitive; plaintext secrets are never stored or logged.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext secret.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches the stored hash. Side-effect free.
	Verify(secret, storedHash string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost; a non-positive cost
// falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(secret, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(secret)) == nil
}
