// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/models"
)

type castService struct {
	castRepository  store.CastRepository
	movieRepository store.MovieRepository
	logger          *logger.Logger
}

func NewCastService(castRepository store.CastRepository, movieRepository store.MovieRepository, logger *logger.Logger) CastService {
	return &castService{
		castRepository:  castRepository,
		movieRepository: movieRepository,
		logger:          logger,
	}
}

// AddCastEntry casts an actor in a movie. A missing movie or actor surfaces
// as store.ErrReferencedEntityNotFound, a repeated pair as
// store.ErrCastEntryExists.
func (c *castService) AddCastEntry(ctx context.Context, request models.CreateCastRequest) (models.CastEntry, error) {
	created, err := c.castRepository.CreateCastEntry(ctx, request.CastEntry())
	if err != nil {
		return models.CastEntry{}, fmt.Errorf("cast entry creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("cast_id", created.ID).
		Int64("movie_id", created.MovieID).
		Int64("actor_id", created.ActorID).
		Msg("cast entry created")
	return created, nil
}

func (c *castService) ListMovieCast(ctx context.Context, movieID int64) ([]models.CastEntry, error) {
	if _, err := c.movieRepository.FindMovieByID(ctx, movieID); err != nil {
		return nil, movieError(movieID, err)
	}

	return c.castRepository.ListMovieCast(ctx, movieID)
}

func (c *castService) RemoveCastEntry(ctx context.Context, entryID int64) error {
	err := c.castRepository.DeleteCastEntry(ctx, entryID)
	if errors.Is(err, store.ErrCastEntryNotFound) {
		return &NotFoundError{Entity: "Cast entry", ID: entryID, Err: err}
	}
	return err
}
