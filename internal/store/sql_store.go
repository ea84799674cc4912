// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-notes/internal/logger"
)

// sqlStore is the SQLite-backed [SecureStore]. Each key is one row of the
// secure_items table.
type sqlStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLStore returns a [SecureStore] over an already migrated database.
func NewSQLStore(db *DB, log *logger.Logger) SecureStore {
	return &sqlStore{
		db:     db,
		logger: log,
		now:    time.Now,
	}
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetItemQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sqlStore.Get").Str("key", key).Msg("error building select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqlStore.Get").Str("key", key).Msg("error executing select query")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertItemQuery(key, value, s.now())
	if err != nil {
		log.Err(err).Str("func", "sqlStore.Set").Str("key", key).Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqlStore.Set").Str("key", key).Msg("error executing upsert statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sqlStore.Delete").Str("key", key).Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqlStore.Delete").Str("key", key).Msg("error executing delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
