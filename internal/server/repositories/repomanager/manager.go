package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/greeter/internal/dbx"
	"github.com/dmitrijs2005/greeter/internal/server/repositories/greetings"
	"github.com/dmitrijs2005/greeter/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to either a *sql.DB or a *sql.Tx,
// so services can run the same repository code inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Greetings(db dbx.DBTX) greetings.Repository
}
