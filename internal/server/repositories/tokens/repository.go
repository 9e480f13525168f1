// Package tokens declares the token store contract: persisting issued bearer
// tokens and querying/updating their validity flags. Tokens are never
// deleted; revocation is a bulk flag update.
package tokens

import (
	"context"

	"github.com/jobinow/jobinow/internal/server/models"
)

type Repository interface {
	// Save persists a new token record and returns it with the generated id.
	Save(ctx context.Context, token *models.Token) (*models.Token, error)

	// FindAllValid returns the tokens of userID with expired=false and
	// revoked=false. Ordering is not significant; absent tokens yield an
	// empty slice.
	FindAllValid(ctx context.Context, userID string) ([]*models.Token, error)

	// SaveAll persists updated validity flags for the batch. Run it on a
	// transactional handle to make the batch atomic.
	SaveAll(ctx context.Context, tokens []*models.Token) error

	// FindByValue looks up a token by its opaque bearer value.
	FindByValue(ctx context.Context, value string) (*models.Token, error)
}
