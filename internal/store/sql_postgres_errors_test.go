// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "no rows", err: sql.ErrNoRows, want: NonRetryable},
		{name: "bad connection", err: fmt.Errorf("query: %w", driver.ErrBadConn), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "wrapped serialization failure", err: fmt.Errorf("%w: %w", ErrExecutingQuery, pgError(pgerrcode.SerializationFailure)), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "foreign key violation", err: pgError(pgerrcode.ForeignKeyViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
		{name: "unknown code", err: pgError("XX999"), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestDB_withRetry(t *testing.T) {
	db, _ := newTestDB(t)

	t.Run("stops after the last delay", func(t *testing.T) {
		calls := 0
		err := db.withRetry(context.Background(), func() error {
			calls++
			return pgError(pgerrcode.DeadlockDetected)
		})
		assert.Error(t, err)
		assert.Equal(t, len(db.retryDelays)+1, calls)
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		calls := 0
		err := db.withRetry(context.Background(), func() error {
			calls++
			return pgError(pgerrcode.UniqueViolation)
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("returns once an attempt succeeds", func(t *testing.T) {
		calls := 0
		err := db.withRetry(context.Background(), func() error {
			calls++
			if calls == 1 {
				return driver.ErrBadConn
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		slow, _ := newTestDB(t)
		slow.retryDelays = []time.Duration{time.Hour}

		err := slow.withRetry(ctx, func() error { return driver.ErrBadConn })
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, driver.ErrBadConn)
	})
}
