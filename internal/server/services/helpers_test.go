package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/greeter/internal/dbx"
	"github.com/dmitrijs2005/greeter/internal/server/models"
	"github.com/dmitrijs2005/greeter/internal/server/repositories/greetings"
	"github.com/dmitrijs2005/greeter/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	createCalls int
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeGreetingsRepo struct {
	listOut   []*models.Greeting
	listErr   error
	createErr error

	created []string
}

func (f *fakeGreetingsRepo) List(ctx context.Context) ([]*models.Greeting, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeGreetingsRepo) Create(ctx context.Context, message string) (*models.Greeting, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, message)
	g := &models.Greeting{ID: int64(len(f.listOut) + 1), Message: message}
	f.listOut = append(f.listOut, g)
	return g, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	g *fakeGreetingsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository          { return m.u }
func (m *fakeRepoManager) Greetings(db dbx.DBTX) greetings.Repository  { return m.g }
