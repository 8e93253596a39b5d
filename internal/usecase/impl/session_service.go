package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	"planner/internal/domain/repository"
	"planner/internal/errors"
	"planner/internal/usecase"
)

// sessionService implements usecase.SessionProvider over a SessionStore,
// keeping the loaded session in memory so every API call does not hit the disk.
type sessionService struct {
	store  repository.SessionStore
	logger *slog.Logger
	now    func() time.Time

	mu     sync.Mutex
	loaded bool
	cached *entity.CachedSession
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(store repository.SessionStore, logger *slog.Logger) usecase.SessionProvider {
	return &sessionService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// load fills the in-memory copy on first use. Callers hold mu.
func (srv *sessionService) load(ctx context.Context) error {
	if srv.loaded {
		return nil
	}

	session, err := srv.store.Load(ctx)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to load cached session")
	}
	srv.cached = session
	srv.loaded = true

	return nil
}

// Token returns the cached bearer token.
func (srv *sessionService) Token(ctx context.Context) (string, bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.load(ctx); err != nil {
		srv.log(ctx).Warn("Session cache unreadable, sending request without token", slog.Any("error", err))

		return "", false
	}
	if srv.cached == nil || srv.cached.Token == "" {
		return "", false
	}

	return srv.cached.Token, true
}

// Invalidate clears the cached token and profile.
func (srv *sessionService) Invalidate(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.cached = nil
	srv.loaded = true
	if err := srv.store.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}
	srv.log(ctx).Info("Session cleared")

	return nil
}

// Cached returns a copy of the cached session.
func (srv *sessionService) Cached(ctx context.Context) (*entity.CachedSession, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.load(ctx); err != nil {
		return nil, err
	}
	if srv.cached == nil {
		return nil, repository.ErrSessionNotFound
	}
	session := *srv.cached

	return &session, nil
}

// Store replaces the cached session.
func (srv *sessionService) Store(ctx context.Context, token string, profile *entity.User) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	now := srv.now()
	session := &entity.CachedSession{
		Token:     token,
		Profile:   profile,
		UpdatedAt: now,
	}
	if profile != nil {
		session.ProfileCachedAt = now
	}

	return srv.save(ctx, session)
}

// StoreProfile refreshes the cached profile, keeping the token.
func (srv *sessionService) StoreProfile(ctx context.Context, profile *entity.User) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.load(ctx); err != nil {
		return err
	}
	if srv.cached == nil {
		return repository.ErrSessionNotFound
	}

	now := srv.now()
	session := *srv.cached
	session.Profile = profile
	session.ProfileCachedAt = now
	session.UpdatedAt = now

	return srv.save(ctx, &session)
}

func (srv *sessionService) save(ctx context.Context, session *entity.CachedSession) error {
	if err := srv.store.Save(ctx, session); err != nil {
		return errors.Wrap(err, "failed to save session")
	}
	srv.cached = session
	srv.loaded = true

	return nil
}
