package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/partsync/internal/securestore"
)

// Storage keys for the persisted admin session.
const (
	TokenKey = "adminToken"
	EmailKey = "adminEmail"
)

// Session is a persisted admin login.
type Session struct {
	Email string
	Token string
}

// Valid reports whether the session carries a token.
func (s Session) Valid() bool {
	return s.Token != ""
}

// SessionStore persists the admin session across runs.
type SessionStore interface {
	// Load returns the stored session. A missing session is not an error;
	// it returns a Session without a token.
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// Secrets is a string key/value store such as *securestore.Store.
type Secrets interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// NewSessionStore keeps the session under TokenKey and EmailKey.
func NewSessionStore(secrets Secrets) SessionStore {
	return &secretSessionStore{secrets: secrets}
}

type secretSessionStore struct {
	secrets Secrets
}

func (s *secretSessionStore) Load(ctx context.Context) (Session, error) {
	token, err := s.get(ctx, TokenKey)
	if err != nil {
		return Session{}, err
	}
	email, err := s.get(ctx, EmailKey)
	if err != nil {
		return Session{}, err
	}
	return Session{Email: email, Token: token}, nil
}

func (s *secretSessionStore) get(ctx context.Context, key string) (string, error) {
	v, err := s.secrets.Get(ctx, key)
	if errors.Is(err, securestore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", key, err)
	}
	return v, nil
}

func (s *secretSessionStore) Save(ctx context.Context, sess Session) error {
	if err := s.secrets.Put(ctx, TokenKey, sess.Token); err != nil {
		return fmt.Errorf("saving %s: %w", TokenKey, err)
	}
	if err := s.secrets.Put(ctx, EmailKey, sess.Email); err != nil {
		return fmt.Errorf("saving %s: %w", EmailKey, err)
	}
	return nil
}

func (s *secretSessionStore) Clear(ctx context.Context) error {
	for _, key := range []string{TokenKey, EmailKey} {
		if err := s.secrets.Delete(ctx, key); err != nil && !errors.Is(err, securestore.ErrNotFound) {
			return fmt.Errorf("clearing %s: %w", key, err)
		}
	}
	return nil
}
