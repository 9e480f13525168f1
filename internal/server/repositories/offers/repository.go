// Package offers declares the repository contract for job offers.
package offers

import (
	"context"

	"github.com/jobinow/jobinow/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, offer *models.Offer) (*models.Offer, error)
	FindByID(ctx context.Context, id string) (*models.Offer, error)
	Update(ctx context.Context, offer *models.Offer) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context, page models.PageRequest) (*models.Page[*models.Offer], error)

	// FindAppliedByJobSeeker returns the offers the given job seeker has
	// applied to (join through applies).
	FindAppliedByJobSeeker(ctx context.Context, jobSeekerID string) ([]*models.Offer, error)
}
