// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the catalog database and
// applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned when no database handle is given.
var ErrNilDB = errors.New("db is nil")

func setup() error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}
	return nil
}

// Migrate applies all pending migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return ErrNilDB
	}
	if err := setup(); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Rollback reverts the most recently applied migration.
func Rollback(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return ErrNilDB
	}
	if err := setup(); err != nil {
		return err
	}

	if err := goose.DownContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration rollback error: %w", err)
	}

	return nil
}

// Status writes the applied/pending state of every migration to out.
func Status(ctx context.Context, db *sql.DB, out io.Writer) error {
	if db == nil {
		return ErrNilDB
	}
	if err := setup(); err != nil {
		return err
	}

	goose.SetLogger(&writerLogger{out: out})

	if err := goose.StatusContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration status error: %w", err)
	}

	return nil
}

type writerLogger struct {
	out io.Writer
}

func (l *writerLogger) Fatalf(format string, v ...any) {
	_, _ = fmt.Fprintf(l.out, format+"\n", v...)
}

func (l *writerLogger) Printf(format string, v ...any) {
	_, _ = fmt.Fprintf(l.out, format, v...)
}
