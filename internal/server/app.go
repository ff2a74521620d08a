// Package server wires the greeter server together: storage, migrations,
// the greeting seeder, the HTTP API and the gRPC health endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/greeter/internal/logging"
	"github.com/dmitrijs2005/greeter/internal/server/api"
	"github.com/dmitrijs2005/greeter/internal/server/config"
	"github.com/dmitrijs2005/greeter/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/greeter/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/greeter/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	greetings   *services.GreetingService
	httpServer  *api.HTTPServer
	grpcServer  *gs.GRPCServer
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	goose.SetLogger(logging.NewGooseLogger(logger))

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return newApp(c, logger, db, repomanager.NewPostgresRepositoryManager()), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) *App {
	us := services.NewUserService(db, rm)
	gsvc := services.NewGreetingService(db, rm, c.SeedMessage)

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: rm,
		greetings:   gsvc,
		httpServer:  api.NewHTTPServer(c.HTTPAddr, c.ShutdownTimeout, logger, us, gsvc),
		grpcServer:  gs.NewGRPCServer(c.GRPCAddr, logger),
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// prepare runs migrations and the seeder. Nothing serves traffic until it
// has succeeded.
func (app *App) prepare(ctx context.Context) error {
	if err := app.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping error: %w", err)
	}

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}

	seeded, err := app.greetings.Seed(ctx)
	if err != nil {
		return err
	}
	if seeded {
		app.logger.Info(ctx, "Seeded default greeting", "message", app.config.SeedMessage)
	}
	return nil
}

// Run starts the servers and blocks until ctx is cancelled, a termination
// signal arrives or one of the servers fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)

	// health answers NOT_SERVING while the database is being prepared
	g.Go(func() error {
		return app.grpcServer.Run(gctx)
	})

	if err := app.prepare(gctx); err != nil {
		app.logger.Error(ctx, "Startup failed", "error", err)
		cancelFunc()
		_ = g.Wait()
		return err
	}

	app.grpcServer.SetServing(true)

	g.Go(func() error {
		return app.httpServer.Run(gctx)
	})

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "Server stopped with error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
	return err
}
