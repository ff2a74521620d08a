// Package memory provides an in-memory RepositoryManager. Repositories ignore
// the DBTX they are bound to, so transactions are not isolated; it exists for
// tests and local experiments.
package memory

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/greeter/internal/common"
	"github.com/dmitrijs2005/greeter/internal/dbx"
	"github.com/dmitrijs2005/greeter/internal/server/models"
	"github.com/dmitrijs2005/greeter/internal/server/repositories/greetings"
	"github.com/dmitrijs2005/greeter/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/greeter/internal/server/repositories/users"
)

type InMemoryRepositoryManager struct {
	users     *UsersRepository
	greetings *GreetingsRepository
}

var _ repomanager.RepositoryManager = (*InMemoryRepositoryManager)(nil)

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:     &UsersRepository{byName: map[string]*models.User{}},
		greetings: &GreetingsRepository{},
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Greetings(dbx.DBTX) greetings.Repository {
	return m.greetings
}

// UsersRepository keeps users keyed by username; ids start at 1.
type UsersRepository struct {
	mu     sync.Mutex
	byName map[string]*models.User
	nextID int64
}

func (r *UsersRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.nextID++
	stored := *user
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().UTC()
	r.byName[stored.UserName] = &stored

	out := stored
	return &out, nil
}

func (r *UsersRepository) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byName[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

type GreetingsRepository struct {
	mu    sync.Mutex
	items []models.Greeting
}

func (r *GreetingsRepository) List(context.Context) ([]*models.Greeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*models.Greeting, 0, len(r.items))
	for i := range r.items {
		g := r.items[i]
		result = append(result, &g)
	}
	return result, nil
}

func (r *GreetingsRepository) Create(_ context.Context, message string) (*models.Greeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := models.Greeting{ID: int64(len(r.items)) + 1, Message: message}
	r.items = append(r.items, g)
	out := g
	return &out, nil
}
