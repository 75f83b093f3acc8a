// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/jackc/pgerrcode"
)

// movieRepository is the PostgreSQL-backed implementation of
// [MovieRepository] over the "movies" table.
type movieRepository struct {
	*DB
	logger *logger.Logger
}

func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateMovie inserts movie. A taken title yields [ErrMovieTitleExists],
// a taken TMDB id [ErrDuplicateTmdbID].
func (m *movieRepository) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	row := m.DB.QueryRowContext(ctx, createMovie,
		movie.Title,
		movie.ReleaseDate,
		movie.Genres,
		movie.Duration,
		movie.Trending,
		movie.Rating,
		nullString(movie.ImageURL),
		nullString(movie.Description),
		nullString(movie.Classification),
		movie.TmdbID,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "movieRepository.CreateMovie").Str("title", movie.Title).Msg("failed to insert movie")
		return models.Movie{}, movieWriteError(err)
	}

	created, err := scanMovie(row)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.CreateMovie").Msg("failed to scan created movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// ListMovies returns every movie, newest first.
func (m *movieRepository) ListMovies(ctx context.Context) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	var movies []models.Movie
	err := m.withRetry(ctx, func() error {
		var queryErr error
		movies, queryErr = m.queryMovies(ctx, listMovies)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "movieRepository.ListMovies").Msg("failed to list movies")
		return nil, err
	}

	return movies, nil
}

// FindMovieByID returns [ErrMovieNotFound] when no movie has movieID.
func (m *movieRepository) FindMovieByID(ctx context.Context, movieID int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	var movie models.Movie
	err := m.withRetry(ctx, func() error {
		var scanErr error
		movie, scanErr = scanMovie(m.DB.QueryRowContext(ctx, findMovieByID, movieID))
		return scanErr
	})

	switch {
	case err == nil:
		return movie, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Movie{}, ErrMovieNotFound
	default:
		log.Err(err).Str("func", "movieRepository.FindMovieByID").Int64("movie_id", movieID).Msg("failed to find movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// UpdateMovie applies the non-nil fields of update and returns the stored
// result. [ErrMovieNotFound] when the movie does not exist.
func (m *movieRepository) UpdateMovie(ctx context.Context, movieID int64, update models.UpdateMovieRequest) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMovieQuery(movieID, update)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.UpdateMovie").Int64("movie_id", movieID).Msg("failed to create query")
		return models.Movie{}, err
	}

	row := m.DB.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "movieRepository.UpdateMovie").Int64("movie_id", movieID).Msg("failed to update movie")
		return models.Movie{}, movieWriteError(err)
	}

	updated, err := scanMovie(row)
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Movie{}, ErrMovieNotFound
	default:
		log.Err(err).Str("func", "movieRepository.UpdateMovie").Int64("movie_id", movieID).Msg("failed to scan updated movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
}

// DeleteMovie removes the movie and, by cascade, its cast entries.
func (m *movieRepository) DeleteMovie(ctx context.Context, movieID int64) error {
	log := logger.FromContext(ctx)

	result, err := m.DB.ExecContext(ctx, deleteMovie, movieID)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.DeleteMovie").Int64("movie_id", movieID).Msg("failed to delete movie")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMovieNotFound
	}

	return nil
}

// SearchMovies runs the page query and the count query for search.
func (m *movieRepository) SearchMovies(ctx context.Context, search models.MovieSearch) ([]models.Movie, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchMoviesQuery(search)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.SearchMovies").Msg("failed to create search query")
		return nil, 0, err
	}

	countQuery, countArgs, err := buildCountMoviesQuery(search)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.SearchMovies").Msg("failed to create count query")
		return nil, 0, err
	}

	var (
		movies []models.Movie
		total  int64
	)
	err = m.withRetry(ctx, func() error {
		var queryErr error
		if movies, queryErr = m.queryMovies(ctx, query, args...); queryErr != nil {
			return queryErr
		}

		if queryErr = m.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "movieRepository.SearchMovies").
			Str("query", search.Query).
			Int("limit", search.Limit).
			Int("offset", search.Offset).
			Msg("failed to search movies")
		return nil, 0, err
	}

	return movies, total, nil
}

func (m *movieRepository) queryMovies(ctx context.Context, query string, args ...any) ([]models.Movie, error) {
	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0, 16)
	for rows.Next() {
		movie, scanErr := scanMovie(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		movies = append(movies, movie)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return movies, nil
}

func movieWriteError(err error) error {
	if postgresError(err) == pgerrcode.UniqueViolation {
		if strings.Contains(constraintName(err), "tmdb") {
			return ErrDuplicateTmdbID
		}
		return ErrMovieTitleExists
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func scanMovie(row rowScanner) (models.Movie, error) {
	var movie models.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.ReleaseDate,
		&movie.Genres,
		&movie.Duration,
		&movie.Trending,
		&movie.Rating,
		&movie.ImageURL,
		&movie.Description,
		&movie.Classification,
		&movie.TmdbID,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	return movie, err
}
