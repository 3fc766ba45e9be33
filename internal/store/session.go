package store

import (
	"context"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/kv"
)

// CurrentUser returns the logged-in username, or an empty string when the
// user key is absent (logged out).
func (s *kvStore) CurrentUser(ctx context.Context) (string, error) {
	s.userMu.Lock()
	defer s.userMu.Unlock()

	var name string
	if err := s.kv.Get(ctx, kv.KeyUser, &name); err != nil {
		return "", err
	}
	return name, nil
}

// SetCurrentUser records the logged-in username.
func (s *kvStore) SetCurrentUser(ctx context.Context, name string) error {
	s.userMu.Lock()
	defer s.userMu.Unlock()
	return s.kv.Set(ctx, kv.KeyUser, name)
}

// ClearCurrentUser removes the user key, which is the logged-out state.
func (s *kvStore) ClearCurrentUser(ctx context.Context) error {
	s.userMu.Lock()
	defer s.userMu.Unlock()
	return s.kv.Delete(ctx, kv.KeyUser)
}
