// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/movie-catalog/internal/logger"
)

// Storages groups the repositories built on one database connection.
type Storages struct {
	UserRepository  UserRepository
	MovieRepository MovieRepository
	ActorRepository ActorRepository
	CastRepository  CastRepository

	db     *DB
	logger *logger.Logger
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		MovieRepository: NewMovieRepository(db, log),
		ActorRepository: NewActorRepository(db, log),
		CastRepository:  NewCastRepository(db, log),
		db:              db,
		logger:          log,
	}
}

// WithinTx runs fn with repositories that share one transaction; see [DB.InTx].
func (s *Storages) WithinTx(ctx context.Context, fn func(tx *Storages) error) error {
	return s.db.InTx(ctx, func(tx *DB) error {
		return fn(NewStorages(tx, s.logger))
	})
}

// ExecContext runs a statement on the storages' connection or transaction.
func (s *Storages) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}

// Ping reports whether the underlying database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Storages) Close() error {
	return s.db.Close()
}
