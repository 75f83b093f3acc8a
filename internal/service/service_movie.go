// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/models"
)

type movieService struct {
	movieRepository store.MovieRepository
	logger          *logger.Logger
}

func NewMovieService(movieRepository store.MovieRepository, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		logger:          logger,
	}
}

func (m *movieService) CreateMovie(ctx context.Context, request models.CreateMovieRequest) (models.Movie, error) {
	movie, err := request.Movie()
	if err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := m.movieRepository.CreateMovie(ctx, movie)
	if err != nil {
		return models.Movie{}, fmt.Errorf("movie creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("movie_id", created.ID).Msg("movie created")
	return created, nil
}

func (m *movieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return m.movieRepository.ListMovies(ctx)
}

func (m *movieService) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	movie, err := m.movieRepository.FindMovieByID(ctx, movieID)
	if err != nil {
		return models.Movie{}, movieError(movieID, err)
	}
	return movie, nil
}

// UpdateMovie reports a missing movie before complaining about an empty
// request.
func (m *movieService) UpdateMovie(ctx context.Context, movieID int64, request models.UpdateMovieRequest) (models.Movie, error) {
	if _, err := m.movieRepository.FindMovieByID(ctx, movieID); err != nil {
		return models.Movie{}, movieError(movieID, err)
	}

	if request.IsEmpty() {
		return models.Movie{}, ErrEmptyUpdate
	}

	updated, err := m.movieRepository.UpdateMovie(ctx, movieID, request)
	if err != nil {
		return models.Movie{}, movieError(movieID, err)
	}
	return updated, nil
}

func (m *movieService) DeleteMovie(ctx context.Context, movieID int64) error {
	if err := m.movieRepository.DeleteMovie(ctx, movieID); err != nil {
		return movieError(movieID, err)
	}

	logger.FromContext(ctx).Info().Int64("movie_id", movieID).Msg("movie deleted")
	return nil
}

// SearchMovies returns the requested page of movies whose title or
// description contains request.Query. Pages are 1-based.
func (m *movieService) SearchMovies(ctx context.Context, request models.SearchMoviesRequest) (models.SearchMoviesResponse, error) {
	page, limit := request.Paging()
	if page < 1 || limit < 1 {
		return models.SearchMoviesResponse{}, ErrInvalidDataProvided
	}
	// (page-1)*limit must not overflow the offset
	if page-1 > math.MaxInt/limit {
		return models.SearchMoviesResponse{}, ErrInvalidDataProvided
	}

	movies, total, err := m.movieRepository.SearchMovies(ctx, models.MovieSearch{
		Query:  request.Query,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return models.SearchMoviesResponse{}, fmt.Errorf("movie search ended with error: %w", err)
	}

	return models.SearchMoviesResponse{
		Data:       movies,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func totalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func movieError(movieID int64, err error) error {
	if errors.Is(err, store.ErrMovieNotFound) {
		return &NotFoundError{Entity: "Movie", ID: movieID, Err: err}
	}
	return err
}
