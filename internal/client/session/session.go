// Package session keeps the CLI's authenticated identity in the local
// metadata store, so a login survives restarts.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/greeter/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/greeter/internal/logging"
)

// storageKey is the metadata key the session is stored under.
const storageKey = "session"

// Session is the client-side identity after a successful register or login.
// It carries no credential; the server never issues one.
type Session struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Mode is the client's authentication state.
type Mode string

const (
	ModeAnonymous     Mode = "anonymous"
	ModeAuthenticated Mode = "authenticated"
)

// ModeOf derives the mode from whether a session is held.
func ModeOf(s *Session) Mode {
	if s == nil {
		return ModeAnonymous
	}
	return ModeAuthenticated
}

type Store struct {
	repo   metadata.Repository
	logger logging.Logger
}

func NewStore(repo metadata.Repository, l logging.Logger) *Store {
	return &Store{repo: repo, logger: l.With("module", "session")}
}

// Load returns the stored session or (nil, nil) when none is stored. A value
// that does not decode into a usable session is removed and reported as absent.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	raw, err := s.repo.Get(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Username == "" {
		s.logger.Warn(ctx, "discarding unreadable stored session", "error", err)
		if err := s.repo.Delete(ctx, storageKey); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &sess, nil
}

func (s *Store) Save(ctx context.Context, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.repo.Set(ctx, storageKey, raw)
}

func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, storageKey)
}
