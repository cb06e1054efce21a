// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-activity-signup/internal/config"
	"github.com/MKhiriev/go-activity-signup/internal/logger"
)

// Backend names reported by [Storages.Backend].
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Storages groups the repositories used by the server.
type Storages struct {
	ActivityRepository ActivityRepository

	backend string
	db      *DB
}

// NewStorages selects a backend from cfg.DB.DSN: empty keeps activities in
// memory, a postgres:// or postgresql:// URI uses PostgreSQL and any other
// value is a SQLite file. SQL backends are migrated and seeded on start.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	backend := backendFor(cfg.DB.DSN)

	var (
		db  *DB
		err error
	)
	switch backend {
	case BackendMemory:
		return &Storages{
			ActivityRepository: NewMemoryActivityRepository(DefaultCatalog(), log),
			backend:            backend,
		}, nil
	case BackendPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case BackendSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info().Str("backend", backend).Msg("database migrated")

	return &Storages{
		ActivityRepository: NewActivityRepository(db, log),
		backend:            backend,
		db:                 db,
	}, nil
}

// Backend returns the name of the selected backend.
func (s *Storages) Backend() string {
	return s.backend
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func backendFor(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return BackendMemory
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres
	default:
		return BackendSQLite
	}
}
