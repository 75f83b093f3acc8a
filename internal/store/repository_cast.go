// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/jackc/pgerrcode"
)

type castRepository struct {
	*DB
	logger *logger.Logger
}

func NewCastRepository(db *DB, logger *logger.Logger) CastRepository {
	logger.Debug().Msg("creating cast repository")
	return &castRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCastEntry links an actor to a movie.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrReferencedEntityNotFound].
//   - unique_violation (23505) on the (movie_id, actor_id) pair → [ErrCastEntryExists].
func (c *castRepository) CreateCastEntry(ctx context.Context, entry models.CastEntry) (models.CastEntry, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, createCastEntry, entry.MovieID, entry.ActorID, entry.Role, entry.Characters)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "castRepository.CreateCastEntry").
			Int64("movie_id", entry.MovieID).
			Int64("actor_id", entry.ActorID).
			Msg("failed to insert cast entry")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.CastEntry{}, ErrReferencedEntityNotFound
		case pgerrcode.UniqueViolation:
			return models.CastEntry{}, ErrCastEntryExists
		default:
			return models.CastEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	created, err := scanCastEntry(row)
	if err != nil {
		log.Err(err).Str("func", "castRepository.CreateCastEntry").Msg("failed to scan cast entry")
		return models.CastEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

func (c *castRepository) ListMovieCast(ctx context.Context, movieID int64) ([]models.CastEntry, error) {
	log := logger.FromContext(ctx)

	var entries []models.CastEntry
	err := c.withRetry(ctx, func() error {
		rows, err := c.DB.QueryContext(ctx, listMovieCast, movieID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		entries = make([]models.CastEntry, 0, 16)
		for rows.Next() {
			var (
				entry models.CastEntry
				actor models.Actor
			)
			scanErr := rows.Scan(
				&entry.ID,
				&entry.MovieID,
				&entry.ActorID,
				&entry.Role,
				&entry.Characters,
				&entry.CreatedAt,
				&entry.UpdatedAt,
				&actor.ID,
				&actor.FirstName,
				&actor.LastName,
				&actor.NickName,
				&actor.Birthdate,
				&actor.Popularity,
				&actor.ProfileImage,
				&actor.Character,
				&actor.TmdbID,
				&actor.CreatedAt,
				&actor.UpdatedAt,
			)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			entry.Actor = &actor
			entries = append(entries, entry)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "castRepository.ListMovieCast").Int64("movie_id", movieID).Msg("failed to list cast")
		return nil, err
	}

	return entries, nil
}

func (c *castRepository) DeleteCastEntry(ctx context.Context, entryID int64) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, deleteCastEntry, entryID)
	if err != nil {
		log.Err(err).Str("func", "castRepository.DeleteCastEntry").Int64("cast_id", entryID).Msg("failed to delete cast entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCastEntryNotFound
	}

	return nil
}

func scanCastEntry(row rowScanner) (models.CastEntry, error) {
	var entry models.CastEntry
	err := row.Scan(
		&entry.ID,
		&entry.MovieID,
		&entry.ActorID,
		&entry.Role,
		&entry.Characters,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	return entry, err
}
