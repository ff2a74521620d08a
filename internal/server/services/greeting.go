package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/greeter/internal/dbx"
	"github.com/dmitrijs2005/greeter/internal/server/models"
	"github.com/dmitrijs2005/greeter/internal/server/repositories/repomanager"
)

// GreetingService serves greetings and seeds the default one on startup.
type GreetingService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	defaultMessage string
}

func NewGreetingService(db *sql.DB, m repomanager.RepositoryManager, defaultMessage string) *GreetingService {
	return &GreetingService{db: db, repomanager: m, defaultMessage: defaultMessage}
}

func (s *GreetingService) List(ctx context.Context) ([]*models.Greeting, error) {
	items, err := s.repomanager.Greetings(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing greetings: %w", err)
	}
	return items, nil
}

// Seed inserts the default greeting when the table is empty. The check and
// the insert share one transaction. It reports whether a row was inserted.
func (s *GreetingService) Seed(ctx context.Context) (bool, error) {
	seeded := false
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Greetings(tx)

		items, err := repo.List(ctx)
		if err != nil {
			return err
		}
		if len(items) > 0 {
			return nil
		}

		if _, err := repo.Create(ctx, s.defaultMessage); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("error seeding greetings: %w", err)
	}
	return seeded, nil
}
