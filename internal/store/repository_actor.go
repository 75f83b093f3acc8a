// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/jackc/pgerrcode"
)

type actorRepository struct {
	*DB
	logger *logger.Logger
}

func NewActorRepository(db *DB, logger *logger.Logger) ActorRepository {
	logger.Debug().Msg("creating actor repository")
	return &actorRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *actorRepository) CreateActor(ctx context.Context, actor models.Actor) (models.Actor, error) {
	log := logger.FromContext(ctx)

	row := a.DB.QueryRowContext(ctx, createActor,
		nullString(actor.FirstName),
		nullString(actor.LastName),
		nullString(actor.NickName),
		actor.Birthdate,
		actor.Popularity,
		nullString(actor.ProfileImage),
		nullString(actor.Character),
		actor.TmdbID,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "actorRepository.CreateActor").Msg("failed to insert actor")
		return models.Actor{}, actorWriteError(err)
	}

	created, err := scanActor(row)
	if err != nil {
		log.Err(err).Str("func", "actorRepository.CreateActor").Msg("failed to scan created actor")
		return models.Actor{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

func (a *actorRepository) ListActors(ctx context.Context) ([]models.Actor, error) {
	log := logger.FromContext(ctx)

	var actors []models.Actor
	err := a.withRetry(ctx, func() error {
		rows, err := a.DB.QueryContext(ctx, listActors)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		actors = make([]models.Actor, 0, 16)
		for rows.Next() {
			actor, scanErr := scanActor(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			actors = append(actors, actor)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "actorRepository.ListActors").Msg("failed to list actors")
		return nil, err
	}

	return actors, nil
}

func (a *actorRepository) FindActorByID(ctx context.Context, actorID int64) (models.Actor, error) {
	log := logger.FromContext(ctx)

	var actor models.Actor
	err := a.withRetry(ctx, func() error {
		var scanErr error
		actor, scanErr = scanActor(a.DB.QueryRowContext(ctx, findActorByID, actorID))
		return scanErr
	})

	switch {
	case err == nil:
		return actor, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Actor{}, ErrActorNotFound
	default:
		log.Err(err).Str("func", "actorRepository.FindActorByID").Int64("actor_id", actorID).Msg("failed to find actor")
		return models.Actor{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (a *actorRepository) UpdateActor(ctx context.Context, actorID int64, update models.UpdateActorRequest) (models.Actor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateActorQuery(actorID, update)
	if err != nil {
		log.Err(err).Str("func", "actorRepository.UpdateActor").Int64("actor_id", actorID).Msg("failed to create query")
		return models.Actor{}, err
	}

	row := a.DB.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "actorRepository.UpdateActor").Int64("actor_id", actorID).Msg("failed to update actor")
		return models.Actor{}, actorWriteError(err)
	}

	updated, err := scanActor(row)
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Actor{}, ErrActorNotFound
	default:
		return models.Actor{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
}

// DeleteActor removes the actor and, by cascade, their cast entries.
func (a *actorRepository) DeleteActor(ctx context.Context, actorID int64) error {
	log := logger.FromContext(ctx)

	result, err := a.DB.ExecContext(ctx, deleteActor, actorID)
	if err != nil {
		log.Err(err).Str("func", "actorRepository.DeleteActor").Int64("actor_id", actorID).Msg("failed to delete actor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrActorNotFound
	}

	return nil
}

func actorWriteError(err error) error {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return ErrDuplicateTmdbID
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func scanActor(row rowScanner) (models.Actor, error) {
	var actor models.Actor
	err := row.Scan(
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
	return actor, err
}
