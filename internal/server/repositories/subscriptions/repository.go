// Package subscriptions declares the repository contract for packs and the
// subscriptions that bind job seekers to them.
package subscriptions

import (
	"context"

	"github.com/jobinow/jobinow/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, sub *models.Subscription) (*models.Subscription, error)
	FindAllByJobSeeker(ctx context.Context, jobSeekerID string) ([]*models.Subscription, error)
	ListPacks(ctx context.Context) ([]*models.Pack, error)
	FindPackByID(ctx context.Context, id string) (*models.Pack, error)
}
