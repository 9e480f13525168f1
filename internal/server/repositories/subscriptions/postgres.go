package subscriptions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jobinow/jobinow/internal/common"
	"github.com/jobinow/jobinow/internal/dbx"
	"github.com/jobinow/jobinow/internal/server/models"
)

// PostgresRepository implements pack/subscription storage over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, sub *models.Subscription) (*models.Subscription, error) {
	query := `
		INSERT INTO subscriptions (job_seeker_id, pack_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, sub.JobSeekerID, sub.PackID).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return sub, nil
}

func (r *PostgresRepository) FindAllByJobSeeker(ctx context.Context, jobSeekerID string) ([]*models.Subscription, error) {
	query := `
		SELECT id, job_seeker_id, pack_id, created_at FROM subscriptions
		WHERE job_seeker_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, jobSeekerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Subscription
	for rows.Next() {
		sub := &models.Subscription{}
		if err := rows.Scan(&sub.ID, &sub.JobSeekerID, &sub.PackID, &sub.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) ListPacks(ctx context.Context) ([]*models.Pack, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, price FROM packs ORDER BY price`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Pack
	for rows.Next() {
		pack := &models.Pack{}
		if err := rows.Scan(&pack.ID, &pack.Title, &pack.Price); err != nil {
			return nil, err
		}
		result = append(result, pack)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) FindPackByID(ctx context.Context, id string) (*models.Pack, error) {
	pack := &models.Pack{}
	err := r.db.QueryRowContext(ctx, `SELECT id, title, price FROM packs WHERE id = $1`, id).
		Scan(&pack.ID, &pack.Title, &pack.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return pack, nil
}
