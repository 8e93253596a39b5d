// Package sqlite keeps the local session cache in a single-file SQLite database through GORM.
package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"planner/config"
	"planner/internal/domain/lifecycle"
	"planner/internal/errors"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const memoryPath = ":memory:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the session database, migrates it and closes it when the app stops.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config.Session.Path, params.Logger, params.Config)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open creates the parent directory of path when needed, opens the database and migrates the session table.
// Use ":memory:" for a throwaway database.
func Open(path string, logger *slog.Logger, cfg *config.Config) (*gorm.DB, error) {
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, errors.Wrapf(err, "failed to create session directory for %s", path)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite session store")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// A single connection keeps an in-memory database alive and serializes file writes.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&sessionModel{}); err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrap(err, "failed to migrate session table")
	}

	return db, nil
}
