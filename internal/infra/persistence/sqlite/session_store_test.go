package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"planner/config"
	"planner/internal/domain/entity"
	"planner/internal/domain/repository"
	"planner/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(memoryPath, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func newTestStore(t *testing.T, db *gorm.DB, key string) repository.SessionStore {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.EncryptionKey = key

	return NewSessionStore(db, auth.NewTokenSealer(cfg), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSessionStore_LoadEmpty(t *testing.T) {
	store := newTestStore(t, newTestDB(t), "")

	session, err := store.Load(context.Background())

	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	assert.Nil(t, session)
}

func TestSessionStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newTestDB(t), "")
	cachedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	err := store.Save(ctx, &entity.CachedSession{
		Token:           "tok-1",
		Profile:         &entity.User{ID: "u1", Email: "a@b.co", Name: "Ana"},
		ProfileCachedAt: cachedAt,
	})
	require.NoError(t, err)

	session, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.Token)
	require.NotNil(t, session.Profile)
	assert.Equal(t, "Ana", session.Profile.Name)
	assert.True(t, cachedAt.Equal(session.ProfileCachedAt))
}

func TestSessionStore_SaveReplacesAndDropsProfile(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newTestDB(t), "")

	require.NoError(t, store.Save(ctx, &entity.CachedSession{
		Token:           "old",
		Profile:         &entity.User{ID: "u1"},
		ProfileCachedAt: time.Now(),
	}))
	require.NoError(t, store.Save(ctx, &entity.CachedSession{Token: "new"}))

	session, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", session.Token)
	assert.Nil(t, session.Profile)
	assert.True(t, session.ProfileCachedAt.IsZero())
}

func TestSessionStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newTestDB(t), "")

	require.NoError(t, store.Save(ctx, &entity.CachedSession{Token: "tok"}))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionStore_SaveEmptyTokenClears(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newTestDB(t), "")

	require.NoError(t, store.Save(ctx, &entity.CachedSession{Token: "tok"}))
	require.NoError(t, store.Save(ctx, &entity.CachedSession{}))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionStore_TokenIsSealedAtRest(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := newTestStore(t, db, "correct horse battery staple")

	require.NoError(t, store.Save(ctx, &entity.CachedSession{Token: "secret-token"}))

	var row sessionModel
	require.NoError(t, db.First(&row, sessionRowID).Error)
	assert.NotContains(t, row.SealedToken, "secret-token")

	session, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", session.Token)
}

func TestSessionStore_KeyChangeDiscardsSession(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	require.NoError(t, newTestStore(t, db, "first key").Save(ctx, &entity.CachedSession{Token: "tok"}))

	other := newTestStore(t, db, "second key")
	_, err := other.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	var count int64
	require.NoError(t, db.Model(&sessionModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	db, err := Open(path, nil, nil)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Close())
	assert.FileExists(t, path)
}
