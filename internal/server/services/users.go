package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jobinow/jobinow/internal/common"
	"github.com/jobinow/jobinow/internal/server/models"
	"github.com/jobinow/jobinow/internal/server/repositories/repomanager"
)

// UserService exposes read access to the user directory: paginated listings
// by role and connection status, plus single-record lookups.
type UserService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repos: m}
}

// GetAllUsers returns a page of all users.
func (s *UserService) GetAllUsers(ctx context.Context, page models.PageRequest) (*models.Page[*models.User], error) {
	result, err := s.repos.Users(s.db).FindAll(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("%w: listing users: %v", common.ErrPersistence, err)
	}
	return result, nil
}

// GetAllManagers returns a page of manager users.
func (s *UserService) GetAllManagers(ctx context.Context, page models.PageRequest) (*models.Page[*models.User], error) {
	return s.byRole(ctx, models.RoleManager, page)
}

// GetAllAgents returns a page of agent users.
func (s *UserService) GetAllAgents(ctx context.Context, page models.PageRequest) (*models.Page[*models.User], error) {
	return s.byRole(ctx, models.RoleAgent, page)
}

// GetAllJobSeekers returns a page of job seeker users.
func (s *UserService) GetAllJobSeekers(ctx context.Context, page models.PageRequest) (*models.Page[*models.User], error) {
	return s.byRole(ctx, models.RoleJobSeeker, page)
}

// GetAllRecruiters returns a page of recruiter users.
func (s *UserService) GetAllRecruiters(ctx context.Context, page models.PageRequest) (*models.Page[*models.User], error) {
	return s.byRole(ctx, models.RoleRecruiter, page)
}

// FindConnectedUsers returns a page of users currently ONLINE.
func (s *UserService) FindConnectedUsers(ctx context.Context, page models.PageRequest) (*models.Page[*models.User], error) {
	result, err := s.repos.Users(s.db).FindAllByStatus(ctx, models.StatusOnline, page)
	if err != nil {
		return nil, fmt.Errorf("%w: listing connected users: %v", common.ErrPersistence, err)
	}
	return result, nil
}

// FindByEmail looks up a single user by email.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repos.Users(s.db).FindByEmail(ctx, email)
}

// FindByID looks up a single user by id.
func (s *UserService) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.repos.Users(s.db).FindByID(ctx, id)
}

func (s *UserService) byRole(ctx context.Context, role models.Role, page models.PageRequest) (*models.Page[*models.User], error) {
	result, err := s.repos.Users(s.db).FindAllByRole(ctx, role, page)
	if err != nil {
		return nil, fmt.Errorf("%w: listing users by role: %v", common.ErrPersistence, err)
	}
	return result, nil
}
