package applies

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jobinow/jobinow/internal/common"
	"github.com/jobinow/jobinow/internal/dbx"
	"github.com/jobinow/jobinow/internal/server/models"
)

const applyColumns = `id, offer_id, job_seeker_id, status, apply_type, resume_key, created_at`

// PostgresRepository implements application storage over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, apply *models.Apply) (*models.Apply, error) {
	query := `
		INSERT INTO applies (offer_id, job_seeker_id, status, apply_type, resume_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		apply.OfferID, apply.JobSeekerID, apply.Status, apply.Type, apply.ResumeKey).Scan(&apply.ID, &apply.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return apply, nil
}

func (r *PostgresRepository) FindAllByJobSeeker(ctx context.Context, jobSeekerID string, page models.PageRequest) (*models.Page[*models.Apply], error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM applies WHERE job_seeker_id = $1`, jobSeekerID).Scan(&total); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM applies
		WHERE job_seeker_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, applyColumns)

	rows, err := r.db.QueryContext(ctx, query, jobSeekerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items, err := scanApplies(rows)
	if err != nil {
		return nil, err
	}
	return &models.Page[*models.Apply]{Items: items, Page: page.Page, Size: page.Limit(), Total: total}, nil
}

func (r *PostgresRepository) FindAllByOffer(ctx context.Context, offerID string) ([]*models.Apply, error) {
	query := fmt.Sprintf(`SELECT %s FROM applies WHERE offer_id = $1`, applyColumns)

	rows, err := r.db.QueryContext(ctx, query, offerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanApplies(rows)
}

func (r *PostgresRepository) FindAllByOfferAndType(ctx context.Context, offerID string, applyType models.ApplyType) ([]*models.Apply, error) {
	query := fmt.Sprintf(`SELECT %s FROM applies WHERE offer_id = $1 AND apply_type = $2`, applyColumns)

	rows, err := r.db.QueryContext(ctx, query, offerID, applyType)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanApplies(rows)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, status models.ApplyStatus, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE applies SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func scanApplies(rows *sql.Rows) ([]*models.Apply, error) {
	var result []*models.Apply
	for rows.Next() {
		apply := &models.Apply{}
		if err := rows.Scan(&apply.ID, &apply.OfferID, &apply.JobSeekerID,
			&apply.Status, &apply.Type, &apply.ResumeKey, &apply.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, apply)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
