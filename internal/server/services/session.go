// Package services contains server-side business logic. This file implements
// SessionService, the session/token lifecycle core: issuing bearer tokens at
// login, revoking prior tokens, resolving the current user from an explicit
// principal, and enforcing password-change rules.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jobinow/jobinow/internal/common"
	"github.com/jobinow/jobinow/internal/dbx"
	"github.com/jobinow/jobinow/internal/logging"
	"github.com/jobinow/jobinow/internal/server/auth"
	"github.com/jobinow/jobinow/internal/server/config"
	"github.com/jobinow/jobinow/internal/server/models"
	"github.com/jobinow/jobinow/internal/server/repositories/repomanager"
)

// SessionService provides authentication-related operations:
//   - Register: create users and issue their first token
//   - Authenticate: verify credentials, revoke prior tokens, mint a new one
//   - ResolveCurrentUser: map a request principal to its user record
//   - ChangePassword / RevokeAllUserTokens / Logout / Disconnect
//
// The service holds no mutable state of its own; all state lives in the
// token store and the user directory.
type SessionService struct {
	db            *sql.DB
	repos         repomanager.RepositoryManager
	hasher        auth.PasswordHasher
	logger        logging.Logger
	secretKey     []byte
	tokenValidity time.Duration
}

// NewSessionService constructs a SessionService using repositories and server config.
func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, logger logging.Logger, cfg *config.Config) *SessionService {
	return &SessionService{
		db:            db,
		repos:         m,
		hasher:        hasher,
		logger:        logger.With("module", "session"),
		secretKey:     []byte(cfg.SecretKey),
		tokenValidity: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user with a hashed credential and issues the first
// bearer token, exactly as a successful login would.
func (s *SessionService) Register(ctx context.Context, email, password string, role models.Role) (*models.User, *models.Token, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: hashing credential: %v", common.ErrInternal, err)
	}

	user := &models.User{Email: email, PasswordHash: hash, Role: role, Status: models.StatusOffline}

	var token *models.Token
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repos.Users(tx).Create(ctx, user)
		if err != nil {
			if errors.Is(err, common.ErrAlreadyExists) {
				return common.ErrAlreadyExists
			}
			return fmt.Errorf("%w: creating user: %v", common.ErrPersistence, err)
		}
		user = created

		token, err = s.issueToken(ctx, tx, user)
		return err
	}); err != nil {
		return nil, nil, err
	}

	return user, token, nil
}

// Authenticate verifies email/password and, on success, revokes every prior
// live token of the user and issues a fresh one. An unknown email and a
// wrong password are indistinguishable from the outside (both yield
// common.ErrInvalidCredentials), so responses cannot enumerate accounts.
func (s *SessionService) Authenticate(ctx context.Context, email, password string) (*models.User, *models.Token, error) {
	user, err := s.repos.Users(s.db).FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("%w: looking up user: %v", common.ErrPersistence, err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, nil, common.ErrInvalidCredentials
	}

	// Revocation and issuance run in one transaction so two racing logins
	// cannot both observe zero prior tokens and leave each other alive.
	var token *models.Token
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.revokeAll(ctx, tx, user.ID); err != nil {
			return err
		}
		if token, err = s.issueToken(ctx, tx, user); err != nil {
			return err
		}
		if err := s.repos.Users(tx).UpdateStatus(ctx, user.ID, models.StatusOnline); err != nil {
			return fmt.Errorf("%w: updating status: %v", common.ErrPersistence, err)
		}
		return nil
	}); err != nil {
		return nil, nil, err
	}

	user.Status = models.StatusOnline
	s.logger.Info(ctx, "user authenticated", "user_id", user.ID)
	return user, token, nil
}

// ResolveCurrentUser maps the request principal to its user record. A nil,
// unauthenticated or anonymous principal yields common.ErrNoAuthenticatedUser.
// A principal whose email has no backing user is a data-integrity anomaly
// and yields common.ErrNotFound. No token-validity check happens here: the
// principal is only constructed after the request filter has verified the
// presented token against the token store.
func (s *SessionService) ResolveCurrentUser(ctx context.Context, principal *auth.Principal) (*models.User, error) {
	if principal.Anonymous() {
		return nil, common.ErrNoAuthenticatedUser
	}

	user, err := s.repos.Users(s.db).FindByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Error(ctx, "authenticated principal has no user record", "email", principal.Email)
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: looking up user: %v", common.ErrPersistence, err)
	}

	return user, nil
}

// ChangePassword replaces the stored hash after verifying the current secret
// and the confirmation. All outstanding tokens are revoked together with the
// credential swap, so a bearer stolen before the change dies with it.
func (s *SessionService) ChangePassword(ctx context.Context, currentPassword, newPassword, confirmationPassword string, user *models.User) error {
	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return common.ErrInvalidCredentials
	}

	if newPassword != confirmationPassword {
		return common.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("%w: hashing credential: %v", common.ErrInternal, err)
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.Users(tx).UpdatePassword(ctx, user.ID, hash); err != nil {
			return fmt.Errorf("%w: updating credential: %v", common.ErrPersistence, err)
		}
		_, err := s.revokeAll(ctx, tx, user.ID)
		return err
	}); err != nil {
		return err
	}

	user.PasswordHash = hash
	s.logger.Info(ctx, "password changed", "user_id", user.ID)
	return nil
}

// RevokeAllUserTokens marks every live token of the user as expired and
// revoked, atomically for the batch, and returns how many were revoked.
// Idempotent: a second consecutive call finds no valid tokens and returns 0.
func (s *SessionService) RevokeAllUserTokens(ctx context.Context, user *models.User) (int, error) {
	var count int
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		count, err = s.revokeAll(ctx, tx, user.ID)
		return err
	})
	return count, err
}

// Logout revokes every live token of the user and marks them OFFLINE.
func (s *SessionService) Logout(ctx context.Context, user *models.User) error {
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.revokeAll(ctx, tx, user.ID); err != nil {
			return err
		}
		if err := s.repos.Users(tx).UpdateStatus(ctx, user.ID, models.StatusOffline); err != nil {
			return fmt.Errorf("%w: updating status: %v", common.ErrPersistence, err)
		}
		return nil
	}); err != nil {
		return err
	}
	user.Status = models.StatusOffline
	return nil
}

// Disconnect marks the user OFFLINE. A nil user is a no-op: there is nothing
// to disconnect.
func (s *SessionService) Disconnect(ctx context.Context, user *models.User) error {
	if user == nil {
		return nil
	}
	if err := s.repos.Users(s.db).UpdateStatus(ctx, user.ID, models.StatusOffline); err != nil {
		return fmt.Errorf("%w: updating status: %v", common.ErrPersistence, err)
	}
	user.Status = models.StatusOffline
	return nil
}

// CheckToken is the validity check the request-authentication filter runs
// before constructing a principal: the presented value must exist in the
// store and still carry expired=false, revoked=false.
func (s *SessionService) CheckToken(ctx context.Context, value string) (*models.Token, error) {
	token, err := s.repos.Tokens(s.db).FindByValue(ctx, value)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("%w: looking up token: %v", common.ErrPersistence, err)
	}
	if !token.Valid() {
		return nil, common.ErrTokenRevoked
	}
	return token, nil
}

// --- helpers below ---

// issueToken mints a fresh bearer value and persists its record with
// expired=false, revoked=false.
func (s *SessionService) issueToken(ctx context.Context, tx dbx.DBTX, user *models.User) (*models.Token, error) {
	value, err := auth.GenerateToken(user.ID, user.Email, s.secretKey, s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("%w: generating token: %v", common.ErrInternal, err)
	}

	token := &models.Token{
		UserID: user.ID,
		Value:  value,
		Type:   models.TokenTypeBearer,
	}
	saved, err := s.repos.Tokens(tx).Save(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: saving token: %v", common.ErrPersistence, err)
	}
	return saved, nil
}

// revokeAll fetches the user's live tokens, flips expired and revoked on
// each, and writes the batch back through the same handle.
func (s *SessionService) revokeAll(ctx context.Context, tx dbx.DBTX, userID string) (int, error) {
	repo := s.repos.Tokens(tx)

	valid, err := repo.FindAllValid(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: fetching valid tokens: %v", common.ErrPersistence, err)
	}
	if len(valid) == 0 {
		return 0, nil
	}

	for _, token := range valid {
		token.Expired = true
		token.Revoked = true
	}
	if err := repo.SaveAll(ctx, valid); err != nil {
		return 0, fmt.Errorf("%w: revoking tokens: %v", common.ErrPersistence, err)
	}
	return len(valid), nil
}
