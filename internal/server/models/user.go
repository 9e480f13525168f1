// Package models contains the persistent entities of the job board.
package models

import "time"

// Role classifies what a user can do on the platform.
type Role string

const (
	RoleJobSeeker Role = "JOB_SEEKER"
	RoleRecruiter Role = "RECRUITER"
	RoleAgent     Role = "AGENT"
	RoleManager   Role = "MANAGER"
	RoleAdmin     Role = "ADMIN"
)

// UserStatus reflects the user's connection state. Transitions are driven
// only by login/logout events, never by direct client mutation.
type UserStatus string

const (
	StatusOnline  UserStatus = "ONLINE"
	StatusOffline UserStatus = "OFFLINE"
)

// User is an account record. Email is unique and doubles as the login
// handle. PasswordHash holds a bcrypt hash and is never compared in
// plaintext.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	Status       UserStatus
	CreatedAt    time.Time
}
