// Package tags declares the repository contract for offer tags.
package tags

import (
	"context"

	"github.com/jobinow/jobinow/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, tag *models.Tag) (*models.Tag, error)
	List(ctx context.Context) ([]*models.Tag, error)
}
