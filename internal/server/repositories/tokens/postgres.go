package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jobinow/jobinow/internal/common"
	"github.com/jobinow/jobinow/internal/dbx"
	"github.com/jobinow/jobinow/internal/server/models"
)

// PostgresRepository implements the token store over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save inserts a new token record. A dangling user reference surfaces as
// common.ErrPersistence.
func (r *PostgresRepository) Save(ctx context.Context, token *models.Token) (*models.Token, error) {
	query := `
		INSERT INTO tokens (user_id, token, token_type, expired, revoked)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		token.UserID, token.Value, token.Type, token.Expired, token.Revoked).Scan(&token.ID, &token.CreatedAt)
	if err != nil {
		// foreign_key_violation on user_id
		if strings.Contains(err.Error(), "23503") || strings.Contains(err.Error(), "foreign key") {
			return nil, fmt.Errorf("%w: invalid user reference", common.ErrPersistence)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return token, nil
}

// FindAllValid returns all live tokens (expired=false, revoked=false) of userID.
func (r *PostgresRepository) FindAllValid(ctx context.Context, userID string) ([]*models.Token, error) {
	query := `
		SELECT id, user_id, token, token_type, expired, revoked, created_at FROM tokens
		WHERE user_id = $1 AND NOT expired AND NOT revoked
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Token
	for rows.Next() {
		token := &models.Token{}
		if err := rows.Scan(&token.ID, &token.UserID, &token.Value, &token.Type,
			&token.Expired, &token.Revoked, &token.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, token)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SaveAll writes back the validity flags of every token in the batch. When
// bound to a *sql.Tx, the whole batch commits or rolls back together.
func (r *PostgresRepository) SaveAll(ctx context.Context, batch []*models.Token) error {
	query := `
		UPDATE tokens SET expired = $1, revoked = $2
		WHERE id = $3
	`
	for _, token := range batch {
		if _, err := r.db.ExecContext(ctx, query, token.Expired, token.Revoked, token.ID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

// FindByValue returns the token row with the given bearer value, or
// common.ErrNotFound.
func (r *PostgresRepository) FindByValue(ctx context.Context, value string) (*models.Token, error) {
	query := `
		SELECT id, user_id, token, token_type, expired, revoked, created_at FROM tokens
		WHERE token = $1
	`
	token := &models.Token{}
	err := r.db.QueryRowContext(ctx, query, value).Scan(&token.ID, &token.UserID, &token.Value,
		&token.Type, &token.Expired, &token.Revoked, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return token, nil
}
