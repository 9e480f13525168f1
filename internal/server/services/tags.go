package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jobinow/jobinow/internal/common"
	"github.com/jobinow/jobinow/internal/server/models"
	"github.com/jobinow/jobinow/internal/server/repositories/repomanager"
)

// TagService manages the offer tag catalog.
type TagService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewTagService(db *sql.DB, m repomanager.RepositoryManager) *TagService {
	return &TagService{db: db, repos: m}
}

// CreateTag adds a tag to the catalog. Duplicate names are rejected.
func (s *TagService) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	created, err := s.repos.Tags(s.db).Create(ctx, &models.Tag{Name: name})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("%w: creating tag: %v", common.ErrPersistence, err)
	}
	return created, nil
}

// ListTags returns the full tag catalog.
func (s *TagService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	result, err := s.repos.Tags(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing tags: %v", common.ErrPersistence, err)
	}
	return result, nil
}
