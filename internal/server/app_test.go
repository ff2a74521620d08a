package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/greeter/internal/logging"
	"github.com/dmitrijs2005/greeter/internal/server/config"
	"github.com/dmitrijs2005/greeter/internal/server/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingMigrations struct {
	*memory.InMemoryRepositoryManager
}

func (failingMigrations) RunMigrations(context.Context, *sql.DB) error {
	return errors.New("bad migration")
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.HTTPAddr = "127.0.0.1:0"
	c.GRPCAddr = "127.0.0.1:0"
	c.ShutdownTimeout = time.Second
	return c
}

func TestApp_RunSeedsAndStopsOnCancel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectClose()

	rm := memory.NewInMemoryRepositoryManager()
	app := newApp(testConfig(), logging.Nop(), db, rm)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		items, _ := rm.Greetings(nil).List(context.Background())
		return len(items) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}

	items, err := rm.Greetings(nil).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", items[0].Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_RunFailsWhenMigrationsFail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	rm := failingMigrations{memory.NewInMemoryRepositoryManager()}
	app := newApp(testConfig(), logging.Nop(), db, rm)

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad migration")

	items, _ := rm.Greetings(nil).List(context.Background())
	assert.Empty(t, items)
}

func TestNewApp_LazyDatabase(t *testing.T) {
	c := testConfig()
	c.DatabaseDSN = "postgres://nobody@127.0.0.1:1/none?sslmode=disable"

	app, err := NewApp(c)
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.NoError(t, app.db.Close())
}
