package repomanager

import (
	"context"
	"database/sql"

	"github.com/jobinow/jobinow/internal/dbx"
	"github.com/jobinow/jobinow/internal/server/repositories/applies"
	"github.com/jobinow/jobinow/internal/server/repositories/offers"
	"github.com/jobinow/jobinow/internal/server/repositories/subscriptions"
	"github.com/jobinow/jobinow/internal/server/repositories/tags"
	"github.com/jobinow/jobinow/internal/server/repositories/tokens"
	"github.com/jobinow/jobinow/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX (a *sql.DB for
// standalone calls or a *sql.Tx inside dbx.WithTx) and exposes a schema
// migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tokens(db dbx.DBTX) tokens.Repository
	Offers(db dbx.DBTX) offers.Repository
	Applies(db dbx.DBTX) applies.Repository
	Subscriptions(db dbx.DBTX) subscriptions.Repository
	Tags(db dbx.DBTX) tags.Repository
}
