package greetings

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/greeter/internal/dbx"
	"github.com/dmitrijs2005/greeter/internal/server/models"
)

// PostgresRepository implements greeting storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Greeting, error) {
	query := `SELECT id, message FROM greetings ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Greeting, 0)
	for rows.Next() {
		var item models.Greeting
		if err := rows.Scan(&item.ID, &item.Message); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, message string) (*models.Greeting, error) {
	query :=
		`INSERT INTO greetings (message)
		 VALUES ($1)
		 RETURNING id
		 `

	g := &models.Greeting{Message: message}
	if err := r.db.QueryRowContext(ctx, query, message).Scan(&g.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return g, nil
}
