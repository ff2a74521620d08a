// Package api serves the greeter JSON API over HTTP using echo.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/greeter/internal/logging"
	"github.com/dmitrijs2005/greeter/internal/server/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

// Server timeouts.
const (
	ReadHeaderTimeout = 1 * time.Second
	ReadTimeout       = 5 * time.Second
	WriteTimeout      = 5 * time.Second
)

// maxBodySize caps request bodies; credentials are tiny.
const maxBodySize = "64K"

type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
}

type GreetingService interface {
	List(ctx context.Context) ([]*models.Greeting, error)
}

type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	logger          logging.Logger
	echo            *echo.Echo
}

func NewHTTPServer(address string, shutdownTimeout time.Duration, l logging.Logger, us UserService, gs GreetingService) *HTTPServer {
	s := &HTTPServer{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "http_server"),
	}
	s.echo = s.newEcho(handler{users: us, greetings: gs})
	return s
}

func (s *HTTPServer) newEcho(h handler) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.HTTPErrorHandler = s.handleError

	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		s.logRequests,
		middleware.Recover(),
		middleware.BodyLimit(maxBodySize),
	)

	h.register(e)
	return e
}

// Handler exposes the configured router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.echo
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down, giving in-flight requests up to shutdownTimeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: ReadHeaderTimeout,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
	}

	s.logger.Info(ctx, "Starting HTTP server", "address", listener.Addr().String())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
