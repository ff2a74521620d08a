// Package services contains application services for the greeter client.
// This file defines the authentication service: register, login, logout and
// restoring the persisted session on startup.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dmitrijs2005/greeter/internal/client/client"
	"github.com/dmitrijs2005/greeter/internal/client/models"
	"github.com/dmitrijs2005/greeter/internal/client/session"
)

// ErrSubmissionInProgress is returned when register or login is attempted
// while another one is still waiting for the server.
var ErrSubmissionInProgress = errors.New("a request is already in progress")

// AuthService defines authentication operations for the CLI.
//
// Register and Login persist the returned session; Logout removes it.
// Restore reads whatever session survived the previous run.
type AuthService interface {
	Restore(ctx context.Context) (*session.Session, error)
	Register(ctx context.Context, username, password string) (*session.Session, error)
	Login(ctx context.Context, username, password string) (*session.Session, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client   client.Client
	store    *session.Store
	inFlight atomic.Bool
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(c client.Client, store *session.Store) AuthService {
	return &authService{client: c, store: store}
}

func (a *authService) Restore(ctx context.Context) (*session.Session, error) {
	return a.store.Load(ctx)
}

func (a *authService) Register(ctx context.Context, username, password string) (*session.Session, error) {
	return a.submit(ctx, username, password, a.client.Register)
}

func (a *authService) Login(ctx context.Context, username, password string) (*session.Session, error) {
	return a.submit(ctx, username, password, a.client.Login)
}

// submit runs one credential exchange at a time and stores the resulting
// session on success.
func (a *authService) submit(
	ctx context.Context,
	username, password string,
	call func(context.Context, string, string) (*models.User, error),
) (*session.Session, error) {
	if !a.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInProgress
	}
	defer a.inFlight.Store(false)

	u, err := call(ctx, username, password)
	if err != nil {
		return nil, err
	}

	sess := &session.Session{ID: u.ID, Username: u.Username}
	if err := a.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return sess, nil
}

// Logout forgets the stored session. It does not contact the server.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
