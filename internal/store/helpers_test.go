// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	db := NewDB(conn, logger.Nop())
	db.retryDelays = []time.Duration{0, 0}
	return db, mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgConstraintError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

var (
	userCols  = []string{"id", "email", "password", "first_name", "last_name", "role", "created_at", "updated_at"}
	movieCols = []string{"id", "title", "release_date", "genres", "duration", "trending", "rating", "image_url", "description", "clasification", "tmdb_id", "created_at", "updated_at"}
	actorCols = []string{"id", "first_name", "last_name", "nick_name", "birthdate", "popularity", "profile_image", "character", "tmdb_id", "created_at", "updated_at"}
	castCols  = []string{"id", "movie_id", "actor_id", "role", "characters", "created_at", "updated_at"}
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func inceptionRow(rows *sqlmock.Rows) *sqlmock.Rows {
	return rows.AddRow(1, "Inception", time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC), "{Action,Sci-Fi}", 148, true, 8.8, "", "A thief", "PG-13", nil, testNow, testNow)
}

