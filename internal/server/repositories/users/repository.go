// Package users declares the user directory contract: lookups by email, id,
// role and status, plus the narrow writes the session core needs (status and
// credential updates).
package users

import (
	"context"

	"github.com/jobinow/jobinow/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	UpdateStatus(ctx context.Context, userID string, status models.UserStatus) error
	FindAll(ctx context.Context, page models.PageRequest) (*models.Page[*models.User], error)
	FindAllByRole(ctx context.Context, role models.Role, page models.PageRequest) (*models.Page[*models.User], error)
	FindAllByStatus(ctx context.Context, status models.UserStatus, page models.PageRequest) (*models.Page[*models.User], error)
}
