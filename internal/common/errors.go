// Package common defines shared constants and sentinel errors used across
// the jobinow backend. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrPersistence   = errors.New("persistence error")

	// Authentication and session errors.
	// ErrInvalidCredentials deliberately covers both "unknown email" and
	// "wrong password" so responses cannot be used for account enumeration.
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrNoAuthenticatedUser = errors.New("no authenticated user")
	ErrPasswordMismatch    = errors.New("passwords are not the same")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token expired or revoked")

	// Generic service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors surfaced to clients field-by-field.
	ErrInvalidApplyStatus = errors.New("please enter a valid application status ['ACCEPTED', 'REFUSED', 'SEEN']")
	ErrInvalidUUID        = errors.New("please enter a valid UUID format")
)
