// Package auth implements the login gate: a configured credential check and
// in-memory session tokens. The logged-in username is also persisted under
// the store's user key, which is the durable logged-in flag the dashboard
// checks on load.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/store"
)

// ErrInvalidCredentials is returned when the username or password does not
// match the configured pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Manager validates credentials and tracks session tokens.
type Manager struct {
	username string
	password string
	sessions *cache.Cache
	store    store.Store
}

// NewManager creates a session manager. Tokens expire after ttl of no
// renewal.
func NewManager(username, password string, ttl time.Duration, st store.Store) *Manager {
	return &Manager{
		username: username,
		password: password,
		sessions: cache.New(ttl, 2*ttl),
		store:    st,
	}
}

// Login checks the credentials, records the user in the store and returns a
// fresh session token.
func (m *Manager) Login(ctx context.Context, username, password string) (string, error) {
	if username != m.username || password != m.password {
		return "", ErrInvalidCredentials
	}
	if err := m.store.SetCurrentUser(ctx, username); err != nil {
		return "", err
	}
	token := uuid.NewString()
	m.sessions.SetDefault(token, username)
	return token, nil
}

// Logout invalidates the token and clears the persisted user.
func (m *Manager) Logout(ctx context.Context, token string) error {
	m.sessions.Delete(token)
	return m.store.ClearCurrentUser(ctx)
}

// UserForToken resolves a session token to its username.
func (m *Manager) UserForToken(token string) (string, bool) {
	v, ok := m.sessions.Get(token)
	if !ok {
		return "", false
	}
	return v.(string), true
}
