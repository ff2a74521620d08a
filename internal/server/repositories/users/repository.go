// Package users persists user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/greeter/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills in the server-assigned ID and CreatedAt.
	// A duplicate username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByLogin returns common.ErrorNotFound when no such user exists.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
