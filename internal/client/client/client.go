package client

import (
	"context"

	"github.com/dmitrijs2005/greeter/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Greetings(ctx context.Context) ([]*models.Greeting, error)
	Ping(ctx context.Context) error
}
