package models

import "time"

// TokenType tags the kind of an issued token. Only bearer tokens exist.
type TokenType string

const TokenTypeBearer TokenType = "BEARER"

// Token is the audit record of an issued bearer token. Expired and Revoked
// are monotonic: once set to true they never revert. Tokens are never
// physically deleted; revocation flips both flags.
type Token struct {
	ID        string
	UserID    string
	Value     string
	Type      TokenType
	Expired   bool
	Revoked   bool
	CreatedAt time.Time
}

// Valid reports whether the token can still authenticate requests.
func (t *Token) Valid() bool {
	return !t.Expired && !t.Revoked
}
