// Package greetings provides PostgreSQL-backed storage for greeting messages.
package greetings

import (
	"context"

	"github.com/dmitrijs2005/greeter/internal/server/models"
)

type Repository interface {
	// List returns all greetings ordered by id. It never returns nil on success.
	List(ctx context.Context) ([]*models.Greeting, error)
	Create(ctx context.Context, message string) (*models.Greeting, error)
}
