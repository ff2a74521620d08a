package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/greeter/internal/client/client"
	"github.com/dmitrijs2005/greeter/internal/client/config"
	"github.com/dmitrijs2005/greeter/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/greeter/internal/client/services"
	"github.com/dmitrijs2005/greeter/internal/client/session"
	"github.com/dmitrijs2005/greeter/internal/filex"
	"github.com/dmitrijs2005/greeter/internal/logging"
	"github.com/pressly/goose/v3"
)

// pingTimeout bounds a single reachability probe.
const pingTimeout = 3 * time.Second

// Connectivity is the last observed reachability of the server.
type Connectivity string

const (
	ConnUnknown Connectivity = ""
	ConnOnline  Connectivity = "online"
	ConnOffline Connectivity = "offline"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	authService     services.AuthService
	greetingService services.GreetingService
	reader          *bufio.Reader
	out             io.Writer

	mu      sync.RWMutex
	session *session.Session
	conn    Connectivity
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)
	goose.SetLogger(logging.NewGooseLogger(logger))

	if err := filex.EnsureParentDir(c.DatabaseFile); err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabaseFile)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewAPIClient(c.APIBaseURL, c.HealthAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewStore(metadata.NewSQLiteRepository(db), logger)

	return &App{
		config:          c,
		logger:          logger.With("module", "cli"),
		db:              db,
		authService:     services.NewAuthService(apiClient, store),
		greetingService: services.NewGreetingService(apiClient),
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
	}, nil
}

// Run blocks until the REPL exits and releases the client and database.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.authService.Close(ctx); err != nil {
			a.logger.Warn(ctx, "closing api client", "error", err)
		}
		if a.db != nil {
			_ = a.db.Close()
		}
	}()
	a.Root(ctx)
}

func (a *App) currentSession() *session.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

func (a *App) setSession(s *session.Session) {
	a.mu.Lock()
	a.session = s
	a.mu.Unlock()
}

func (a *App) isLoggedIn() bool {
	return session.ModeOf(a.currentSession()) == session.ModeAuthenticated
}

func (a *App) connectivity() Connectivity {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.conn
}

func (a *App) setConnectivity(c Connectivity) {
	a.mu.Lock()
	changed := a.conn != c
	a.conn = c
	a.mu.Unlock()

	if changed {
		fmt.Fprintf(a.out, "Server is %s\n", c)
	}
}

// checkOnline probes the server once and records the result.
func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.authService.Ping(pingCtx)
	cancel()

	if ctx.Err() != nil {
		return
	}
	if err != nil {
		a.logger.Debug(ctx, "server ping failed", "error", err)
		a.setConnectivity(ConnOffline)
		return
	}
	a.setConnectivity(ConnOnline)
}

// StartOnlineStatusWatcher probes the server immediately and then every
// interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
