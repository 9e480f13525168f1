package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jobinow/jobinow/internal/common"
	"github.com/jobinow/jobinow/internal/server/models"
	"github.com/jobinow/jobinow/internal/server/repositories/repomanager"
)

// SubscriptionService manages pack subscriptions for job seekers.
type SubscriptionService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewSubscriptionService(db *sql.DB, m repomanager.RepositoryManager) *SubscriptionService {
	return &SubscriptionService{db: db, repos: m}
}

// Subscribe binds a job seeker to a pack. The pack must exist.
func (s *SubscriptionService) Subscribe(ctx context.Context, jobSeeker *models.User, packID string) (*models.Subscription, error) {
	if _, err := s.repos.Subscriptions(s.db).FindPackByID(ctx, packID); err != nil {
		return nil, err
	}

	sub := &models.Subscription{JobSeekerID: jobSeeker.ID, PackID: packID}
	created, err := s.repos.Subscriptions(s.db).Create(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("%w: creating subscription: %v", common.ErrPersistence, err)
	}
	return created, nil
}

// GetSubscriptions lists the job seeker's subscriptions.
func (s *SubscriptionService) GetSubscriptions(ctx context.Context, jobSeeker *models.User) ([]*models.Subscription, error) {
	result, err := s.repos.Subscriptions(s.db).FindAllByJobSeeker(ctx, jobSeeker.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing subscriptions: %v", common.ErrPersistence, err)
	}
	return result, nil
}

// ListPacks returns all purchasable packs.
func (s *SubscriptionService) ListPacks(ctx context.Context) ([]*models.Pack, error) {
	result, err := s.repos.Subscriptions(s.db).ListPacks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing packs: %v", common.ErrPersistence, err)
	}
	return result, nil
}
