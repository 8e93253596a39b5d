package sqlite

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"planner/internal/domain/entity"
	"planner/internal/domain/repository"
	"planner/internal/domain/service"
	"planner/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionStore struct {
	db     *gorm.DB
	sealer service.TokenSealer
	logger *slog.Logger
}

// NewSessionStore is the constructor for the SQLite SessionStore.
func NewSessionStore(db *gorm.DB, sealer service.TokenSealer, logger *slog.Logger) repository.SessionStore {
	return &sessionStore{
		db:     db,
		sealer: sealer,
		logger: logger,
	}
}

func (s *sessionStore) Load(ctx context.Context) (*entity.CachedSession, error) {
	var row sessionModel
	err := s.db.WithContext(ctx).First(&row, sessionRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}

	token, err := s.sealer.Open(row.SealedToken)
	if err != nil {
		// A token sealed under another key is as good as no token.
		s.logger.Warn("Discarding cached session that cannot be opened", slog.Any("error", err))
		if clearErr := s.Clear(ctx); clearErr != nil {
			return nil, clearErr
		}

		return nil, repository.ErrSessionNotFound
	}

	session := &entity.CachedSession{
		Token:     token,
		UpdatedAt: row.UpdatedAt,
	}
	if len(row.Profile) > 0 && row.ProfileCachedAt != nil {
		var profile entity.User
		if err := json.Unmarshal(row.Profile, &profile); err != nil {
			s.logger.Warn("Ignoring unreadable cached profile", slog.Any("error", err))

			return session, nil
		}
		session.Profile = &profile
		session.ProfileCachedAt = *row.ProfileCachedAt
	}

	return session, nil
}

func (s *sessionStore) Save(ctx context.Context, session *entity.CachedSession) error {
	if session == nil || session.Token == "" {
		return s.Clear(ctx)
	}

	sealed, err := s.sealer.Seal(session.Token)
	if err != nil {
		return errors.Wrap(err, "failed to seal token")
	}

	row := sessionModel{
		ID:          sessionRowID,
		SealedToken: sealed,
		UpdatedAt:   session.UpdatedAt,
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = time.Now()
	}
	if session.Profile != nil {
		profile, err := json.Marshal(session.Profile)
		if err != nil {
			return errors.Wrap(err, "failed to encode profile")
		}
		cachedAt := session.ProfileCachedAt
		row.Profile = profile
		row.ProfileCachedAt = &cachedAt
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

func (s *sessionStore) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Delete(&sessionModel{}, sessionRowID).Error; err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}
