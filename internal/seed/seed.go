// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/models"
)

// truncateCatalogQuery empties the catalog tables and resets their ids.
const truncateCatalogQuery = `TRUNCATE TABLE "cast", movies, actors RESTART IDENTITY CASCADE`

// Execer runs a statement without returning rows.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Tx is the set of writers Seed uses inside one transaction.
type Tx struct {
	Exec   Execer
	Movies store.MovieRepository
	Actors store.ActorRepository
	Cast   store.CastRepository
}

// Transactor runs fn in a transaction that commits only when fn returns nil.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

// Summary counts the rows created by Seed.
type Summary struct {
	Movies int
	Actors int
	Cast   int
}

type Seeder struct {
	db     Transactor
	logger *logger.Logger
}

func NewSeeder(db Transactor, logger *logger.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

// storagesTransactor adapts [store.Storages] to [Transactor].
type storagesTransactor struct {
	storages *store.Storages
}

// FromStorages seeds through the given storages' database.
func FromStorages(storages *store.Storages) Transactor {
	return storagesTransactor{storages: storages}
}

func (s storagesTransactor) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	return s.storages.WithinTx(ctx, func(tx *store.Storages) error {
		return fn(Tx{
			Exec:   tx,
			Movies: tx.MovieRepository,
			Actors: tx.ActorRepository,
			Cast:   tx.CastRepository,
		})
	})
}

// Seed replaces the catalog with the sample data set. The truncate and
// every insert share one transaction, so a failure leaves the previous
// catalog in place.
func (s *Seeder) Seed(ctx context.Context) (Summary, error) {
	var summary Summary

	err := s.db.WithinTx(ctx, func(tx Tx) error {
		var err error
		summary, err = s.seed(ctx, tx)
		return err
	})
	if err != nil {
		return Summary{}, err
	}

	s.logger.Info().
		Int("movies", summary.Movies).
		Int("actors", summary.Actors).
		Int("cast", summary.Cast).
		Msg("sample catalog seeded")

	return summary, nil
}

func (s *Seeder) seed(ctx context.Context, tx Tx) (Summary, error) {
	var summary Summary

	s.logger.Info().Msg("truncating catalog tables")
	if _, err := tx.Exec.ExecContext(ctx, truncateCatalogQuery); err != nil {
		return summary, fmt.Errorf("error truncating catalog: %w", err)
	}

	movies := make([]models.Movie, 0, len(sampleMovies()))
	for _, request := range sampleMovies() {
		movie, err := request.Movie()
		if err != nil {
			return summary, fmt.Errorf("invalid sample movie %q: %w", request.Title, err)
		}

		created, err := tx.Movies.CreateMovie(ctx, movie)
		if err != nil {
			return summary, fmt.Errorf("error creating movie %q: %w", request.Title, err)
		}
		movies = append(movies, created)
	}
	summary.Movies = len(movies)

	actors := make([]models.Actor, 0, len(sampleActors))
	for _, sample := range sampleActors {
		actor, err := sample.request().Actor()
		if err != nil {
			return summary, fmt.Errorf("invalid sample actor %s %s: %w", sample.firstName, sample.lastName, err)
		}

		created, err := tx.Actors.CreateActor(ctx, actor)
		if err != nil {
			return summary, fmt.Errorf("error creating actor %s %s: %w", sample.firstName, sample.lastName, err)
		}
		actors = append(actors, created)
	}
	summary.Actors = len(actors)

	for _, sample := range sampleCastEntries {
		entry := models.CastEntry{
			MovieID:    movies[sample.movie].ID,
			ActorID:    actors[sample.actor].ID,
			Role:       sample.role,
			Characters: sample.characters,
		}
		if _, err := tx.Cast.CreateCastEntry(ctx, entry); err != nil {
			return summary, fmt.Errorf("error creating cast entry for movie %d: %w", entry.MovieID, err)
		}
		summary.Cast++
	}

	return summary, nil
}
