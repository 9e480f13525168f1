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

// ApplyService manages job applications: submission, recruiter-side listing
// and review-status updates.
type ApplyService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewApplyService(db *sql.DB, m repomanager.RepositoryManager) *ApplyService {
	return &ApplyService{db: db, repos: m}
}

// Submit records a job seeker's application to an offer. The offer must
// exist and be open.
func (s *ApplyService) Submit(ctx context.Context, apply *models.Apply) (*models.Apply, error) {
	offer, err := s.repos.Offers(s.db).FindByID(ctx, apply.OfferID)
	if err != nil {
		return nil, err
	}
	if offer.Status != models.OfferOpen {
		return nil, fmt.Errorf("%w: offer is closed", common.ErrUnauthorized)
	}

	apply.Status = models.ApplyPending
	if apply.Type == "" {
		apply.Type = models.ApplyInternal
	}

	created, err := s.repos.Applies(s.db).Create(ctx, apply)
	if err != nil {
		return nil, fmt.Errorf("%w: creating application: %v", common.ErrPersistence, err)
	}
	return created, nil
}

// GetAllApplies returns a page of the job seeker's applications.
func (s *ApplyService) GetAllApplies(ctx context.Context, jobSeeker *models.User, page models.PageRequest) (*models.Page[*models.Apply], error) {
	result, err := s.repos.Applies(s.db).FindAllByJobSeeker(ctx, jobSeeker.ID, page)
	if err != nil {
		return nil, fmt.Errorf("%w: listing applications: %v", common.ErrPersistence, err)
	}
	return result, nil
}

// GetOfferApplies returns every application submitted to an offer.
func (s *ApplyService) GetOfferApplies(ctx context.Context, offerID string) ([]*models.Apply, error) {
	if _, err := uuid.Parse(offerID); err != nil {
		return nil, common.ErrInvalidUUID
	}
	result, err := s.repos.Applies(s.db).FindAllByOffer(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing offer applications: %v", common.ErrPersistence, err)
	}
	return result, nil
}

// GetAppliesByApplyType returns an offer's applications filtered by type.
func (s *ApplyService) GetAppliesByApplyType(ctx context.Context, offerID string, applyType models.ApplyType) ([]*models.Apply, error) {
	if _, err := uuid.Parse(offerID); err != nil {
		return nil, common.ErrInvalidUUID
	}
	result, err := s.repos.Applies(s.db).FindAllByOfferAndType(ctx, offerID, applyType)
	if err != nil {
		return nil, fmt.Errorf("%w: listing offer applications: %v", common.ErrPersistence, err)
	}
	return result, nil
}

// UpdateApplyStatus moves an application to SEEN, ACCEPTED or REFUSED. Both
// the status and the application id are validated before touching the store.
func (s *ApplyService) UpdateApplyStatus(ctx context.Context, applyID, status string) error {
	parsed, ok := models.ParseApplyStatus(status)
	if !ok {
		return common.ErrInvalidApplyStatus
	}
	if _, err := uuid.Parse(applyID); err != nil {
		return common.ErrInvalidUUID
	}
	return s.repos.Applies(s.db).UpdateStatus(ctx, parsed, applyID)
}
