package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jobinow/jobinow/internal/common"
	"github.com/jobinow/jobinow/internal/server/models"
	"github.com/jobinow/jobinow/internal/server/repositories/repomanager"
)

// OfferService manages job offers and the queries job seekers run over them.
type OfferService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewOfferService(db *sql.DB, m repomanager.RepositoryManager) *OfferService {
	return &OfferService{db: db, repos: m}
}

// CreateOffer publishes a new offer on behalf of a recruiter.
func (s *OfferService) CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	if offer.Status == "" {
		offer.Status = models.OfferOpen
	}
	created, err := s.repos.Offers(s.db).Create(ctx, offer)
	if err != nil {
		return nil, fmt.Errorf("%w: creating offer: %v", common.ErrPersistence, err)
	}
	return created, nil
}

// GetOffer returns a single offer by id.
func (s *OfferService) GetOffer(ctx context.Context, id string) (*models.Offer, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrInvalidUUID
	}
	return s.repos.Offers(s.db).FindByID(ctx, id)
}

// UpdateOffer rewrites the mutable fields of an offer.
func (s *OfferService) UpdateOffer(ctx context.Context, offer *models.Offer) error {
	return s.repos.Offers(s.db).Update(ctx, offer)
}

// DeleteOffer removes an offer.
func (s *OfferService) DeleteOffer(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrInvalidUUID
	}
	return s.repos.Offers(s.db).Delete(ctx, id)
}

// GetAllOffers returns a page of offers, newest first.
func (s *OfferService) GetAllOffers(ctx context.Context, page models.PageRequest) (*models.Page[*models.Offer], error) {
	result, err := s.repos.Offers(s.db).FindAll(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("%w: listing offers: %v", common.ErrPersistence, err)
	}
	return result, nil
}

// GetAppliedJobs returns the offers the job seeker has applied to.
func (s *OfferService) GetAppliedJobs(ctx context.Context, jobSeeker *models.User) ([]*models.Offer, error) {
	applied, err := s.repos.Offers(s.db).FindAppliedByJobSeeker(ctx, jobSeeker.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing applied offers: %v", common.ErrPersistence, err)
	}
	if len(applied) == 0 {
		return nil, common.ErrNotFound
	}
	return applied, nil
}
