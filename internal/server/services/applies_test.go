package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jobinow/jobinow/internal/common"
	"github.com/jobinow/jobinow/internal/dbx"
	"github.com/jobinow/jobinow/internal/server/models"
	appliesrepo "github.com/jobinow/jobinow/internal/server/repositories/applies"
	offersrepo "github.com/jobinow/jobinow/internal/server/repositories/offers"
	subscriptionsrepo "github.com/jobinow/jobinow/internal/server/repositories/subscriptions"
	tagsrepo "github.com/jobinow/jobinow/internal/server/repositories/tags"
	tokensrepo "github.com/jobinow/jobinow/internal/server/repositories/tokens"
	usersrepo "github.com/jobinow/jobinow/internal/server/repositories/users"
)

type fakeOffersRepo struct {
	byID map[string]*models.Offer
}

func (f *fakeOffersRepo) Create(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	return offer, nil
}
func (f *fakeOffersRepo) FindByID(ctx context.Context, id string) (*models.Offer, error) {
	offer, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return offer, nil
}
func (f *fakeOffersRepo) Update(context.Context, *models.Offer) error { return nil }
func (f *fakeOffersRepo) Delete(context.Context, string) error        { return nil }
func (f *fakeOffersRepo) FindAll(context.Context, models.PageRequest) (*models.Page[*models.Offer], error) {
	return nil, nil
}
func (f *fakeOffersRepo) FindAppliedByJobSeeker(context.Context, string) ([]*models.Offer, error) {
	return nil, nil
}

type fakeAppliesRepo struct {
	created       []*models.Apply
	statusUpdates []models.ApplyStatus
	updateErr     error
}

func (f *fakeAppliesRepo) Create(ctx context.Context, apply *models.Apply) (*models.Apply, error) {
	apply.ID = uuid.NewString()
	f.created = append(f.created, apply)
	return apply, nil
}
func (f *fakeAppliesRepo) FindAllByJobSeeker(context.Context, string, models.PageRequest) (*models.Page[*models.Apply], error) {
	return &models.Page[*models.Apply]{}, nil
}
func (f *fakeAppliesRepo) FindAllByOffer(context.Context, string) ([]*models.Apply, error) {
	return nil, nil
}
func (f *fakeAppliesRepo) FindAllByOfferAndType(context.Context, string, models.ApplyType) ([]*models.Apply, error) {
	return nil, nil
}
func (f *fakeAppliesRepo) UpdateStatus(ctx context.Context, status models.ApplyStatus, id string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

type applyRepoManager struct {
	offers  *fakeOffersRepo
	applies *fakeAppliesRepo
}

func (m *applyRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *applyRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return nil }
func (m *applyRepoManager) Tokens(dbx.DBTX) tokensrepo.Repository        { return nil }
func (m *applyRepoManager) Offers(dbx.DBTX) offersrepo.Repository        { return m.offers }
func (m *applyRepoManager) Applies(dbx.DBTX) appliesrepo.Repository      { return m.applies }
func (m *applyRepoManager) Subscriptions(dbx.DBTX) subscriptionsrepo.Repository {
	return nil
}
func (m *applyRepoManager) Tags(dbx.DBTX) tagsrepo.Repository { return nil }

func newApplyService(offers *fakeOffersRepo, applies *fakeAppliesRepo) *ApplyService {
	return NewApplyService(nil, &applyRepoManager{offers: offers, applies: applies})
}

func TestSubmit_OpenOffer(t *testing.T) {
	offerID := uuid.NewString()
	offers := &fakeOffersRepo{byID: map[string]*models.Offer{
		offerID: {ID: offerID, Status: models.OfferOpen},
	}}
	applies := &fakeAppliesRepo{}
	s := newApplyService(offers, applies)

	created, err := s.Submit(context.Background(), &models.Apply{OfferID: offerID, JobSeekerID: "u-1"})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if created.Status != models.ApplyPending {
		t.Fatalf("new applications start PENDING, got %s", created.Status)
	}
	if created.Type != models.ApplyInternal {
		t.Fatalf("default type must be INTERNAL, got %s", created.Type)
	}
}

func TestSubmit_ClosedOffer(t *testing.T) {
	offerID := uuid.NewString()
	offers := &fakeOffersRepo{byID: map[string]*models.Offer{
		offerID: {ID: offerID, Status: models.OfferClosed},
	}}
	applies := &fakeAppliesRepo{}
	s := newApplyService(offers, applies)

	_, err := s.Submit(context.Background(), &models.Apply{OfferID: offerID, JobSeekerID: "u-1"})
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized for a closed offer, got %v", err)
	}
	if len(applies.created) != 0 {
		t.Fatalf("nothing may be written for a closed offer")
	}
}

func TestSubmit_UnknownOffer(t *testing.T) {
	s := newApplyService(&fakeOffersRepo{byID: map[string]*models.Offer{}}, &fakeAppliesRepo{})

	_, err := s.Submit(context.Background(), &models.Apply{OfferID: uuid.NewString()})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpdateApplyStatus(t *testing.T) {
	applies := &fakeAppliesRepo{}
	s := newApplyService(&fakeOffersRepo{}, applies)
	id := uuid.NewString()

	tests := []struct {
		name    string
		applyID string
		status  string
		wantErr error
	}{
		{"accepted", id, "ACCEPTED", nil},
		{"seen", id, "SEEN", nil},
		{"refused", id, "REFUSED", nil},
		{"back to pending rejected", id, "PENDING", common.ErrInvalidApplyStatus},
		{"unknown status", id, "ARCHIVED", common.ErrInvalidApplyStatus},
		{"bad id", "not-a-uuid", "ACCEPTED", common.ErrInvalidUUID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.UpdateApplyStatus(context.Background(), tt.applyID, tt.status)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGetOfferApplies_BadID(t *testing.T) {
	s := newApplyService(&fakeOffersRepo{}, &fakeAppliesRepo{})

	if _, err := s.GetOfferApplies(context.Background(), "42"); !errors.Is(err, common.ErrInvalidUUID) {
		t.Fatalf("want ErrInvalidUUID, got %v", err)
	}
}
