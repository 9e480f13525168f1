package offers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jobinow/jobinow/internal/common"
	"github.com/jobinow/jobinow/internal/dbx"
	"github.com/jobinow/jobinow/internal/server/models"
)

const offerColumns = `id, title, description, company, location, salary, recruiter_id, status, created_at`

// PostgresRepository implements offer storage over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	query := `
		INSERT INTO offers (title, description, company, location, salary, recruiter_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		offer.Title, offer.Description, offer.Company, offer.Location,
		offer.Salary, offer.RecruiterID, offer.Status).Scan(&offer.ID, &offer.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return offer, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Offer, error) {
	query := fmt.Sprintf(`SELECT %s FROM offers WHERE id = $1`, offerColumns)

	offer := &models.Offer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&offer.ID, &offer.Title, &offer.Description, &offer.Company, &offer.Location,
		&offer.Salary, &offer.RecruiterID, &offer.Status, &offer.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return offer, nil
}

func (r *PostgresRepository) Update(ctx context.Context, offer *models.Offer) error {
	query := `
		UPDATE offers SET title = $1, description = $2, company = $3, location = $4, salary = $5, status = $6
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		offer.Title, offer.Description, offer.Company, offer.Location, offer.Salary, offer.Status, offer.ID)
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

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM offers WHERE id = $1`, id)
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

func (r *PostgresRepository) FindAll(ctx context.Context, page models.PageRequest) (*models.Page[*models.Offer], error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM offers`).Scan(&total); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM offers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, offerColumns)

	rows, err := r.db.QueryContext(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items, err := scanOffers(rows)
	if err != nil {
		return nil, err
	}
	return &models.Page[*models.Offer]{Items: items, Page: page.Page, Size: page.Limit(), Total: total}, nil
}

func (r *PostgresRepository) FindAppliedByJobSeeker(ctx context.Context, jobSeekerID string) ([]*models.Offer, error) {
	query := `
		SELECT o.id, o.title, o.description, o.company, o.location, o.salary, o.recruiter_id, o.status, o.created_at
		FROM offers o
		JOIN applies a ON a.offer_id = o.id
		WHERE a.job_seeker_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, jobSeekerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanOffers(rows)
}

func scanOffers(rows *sql.Rows) ([]*models.Offer, error) {
	var result []*models.Offer
	for rows.Next() {
		offer := &models.Offer{}
		if err := rows.Scan(&offer.ID, &offer.Title, &offer.Description, &offer.Company,
			&offer.Location, &offer.Salary, &offer.RecruiterID, &offer.Status, &offer.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
