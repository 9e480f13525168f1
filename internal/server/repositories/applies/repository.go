// Package applies declares the repository contract for job applications.
package applies

import (
	"context"

	"github.com/jobinow/jobinow/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, apply *models.Apply) (*models.Apply, error)
	FindAllByJobSeeker(ctx context.Context, jobSeekerID string, page models.PageRequest) (*models.Page[*models.Apply], error)
	FindAllByOffer(ctx context.Context, offerID string) ([]*models.Apply, error)
	FindAllByOfferAndType(ctx context.Context, offerID string, applyType models.ApplyType) ([]*models.Apply, error)

	// UpdateStatus moves an application to a new review state. Missing rows
	// yield common.ErrNotFound.
	UpdateStatus(ctx context.Context, status models.ApplyStatus, id string) error
}
