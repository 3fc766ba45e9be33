package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/kv"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/model"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/store"
)

func newTestManager(t *testing.T) (*Manager, store.Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Collection{}, &model.PushSubscription{}))
	st := store.New(kv.New(db), db)
	return NewManager("admin", "admin", time.Minute, st), st
}

func TestLoginSuccess(t *testing.T) {
	m, st := newTestManager(t)
	ctx := context.Background()

	token, err := m.Login(ctx, "admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, ok := m.UserForToken(token)
	assert.True(t, ok)
	assert.Equal(t, "admin", user)

	persisted, err := st.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", persisted)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	m, st := newTestManager(t)
	ctx := context.Background()

	_, err := m.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = m.Login(ctx, "root", "admin")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	persisted, err := st.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", persisted, "failed login must not persist a user")
}

func TestLogoutInvalidatesTokenAndClearsUser(t *testing.T) {
	m, st := newTestManager(t)
	ctx := context.Background()

	token, err := m.Login(ctx, "admin", "admin")
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx, token))

	_, ok := m.UserForToken(token)
	assert.False(t, ok)

	persisted, err := st.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", persisted)
}

func TestUnknownTokenIsRejected(t *testing.T) {
	m, _ := newTestManager(t)
	_, ok := m.UserForToken("nope")
	assert.False(t, ok)
}
