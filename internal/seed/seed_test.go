// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package seed

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/mock"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type seedMocks struct {
	sql    sqlmock.Sqlmock
	movies *mock.MockMovieRepository
	actors *mock.MockActorRepository
	cast   *mock.MockCastRepository
	tx     *fakeTransactor
}

// fakeTransactor hands out the mocks and records how the run ended.
type fakeTransactor struct {
	tx         Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTransactor) WithinTx(_ context.Context, fn func(tx Tx) error) error {
	if err := fn(f.tx); err != nil {
		f.rolledBack = true
		return err
	}
	f.committed = true
	return nil
}

func newTestSeeder(t *testing.T) (*Seeder, seedMocks) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctrl := gomock.NewController(t)
	m := seedMocks{
		sql:    sqlMock,
		movies: mock.NewMockMovieRepository(ctrl),
		actors: mock.NewMockActorRepository(ctrl),
		cast:   mock.NewMockCastRepository(ctrl),
	}
	m.tx = &fakeTransactor{tx: Tx{Exec: db, Movies: m.movies, Actors: m.actors, Cast: m.cast}}

	return NewSeeder(m.tx, logger.Nop()), m
}

func TestSeed(t *testing.T) {
	seeder, m := newTestSeeder(t)

	m.sql.ExpectExec(regexp.QuoteMeta(truncateCatalogQuery)).WillReturnResult(sqlmock.NewResult(0, 0))

	var movieID int64
	var titles []string
	m.movies.EXPECT().CreateMovie(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, movie models.Movie) (models.Movie, error) {
			movieID++
			movie.ID = movieID * 10
			titles = append(titles, movie.Title)
			return movie, nil
		})

	var actorID int64
	m.actors.EXPECT().CreateActor(gomock.Any(), gomock.Any()).Times(12).
		DoAndReturn(func(_ context.Context, actor models.Actor) (models.Actor, error) {
			actorID++
			actor.ID = actorID * 100
			return actor, nil
		})

	var entries []models.CastEntry
	m.cast.EXPECT().CreateCastEntry(gomock.Any(), gomock.Any()).Times(12).
		DoAndReturn(func(_ context.Context, entry models.CastEntry) (models.CastEntry, error) {
			entries = append(entries, entry)
			return entry, nil
		})

	summary, err := seeder.Seed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, Summary{Movies: 3, Actors: 12, Cast: 12}, summary)
	assert.Equal(t, []string{"Inception", "The Dark Knight", "Interstellar"}, titles)

	// cast rows use the ids assigned on insert
	require.Len(t, entries, 12)
	assert.Equal(t, int64(10), entries[0].MovieID)
	assert.Equal(t, int64(100), entries[0].ActorID)
	assert.Equal(t, models.StringList{"Dom Cobb"}, entries[0].Characters)
	assert.Equal(t, int64(20), entries[4].MovieID)
	assert.Equal(t, models.StringList{"Bruce Wayne", "Batman"}, entries[4].Characters)
	assert.Equal(t, int64(30), entries[11].MovieID)
	assert.Equal(t, int64(1200), entries[11].ActorID)

	assert.True(t, m.tx.committed)
	assert.NoError(t, m.sql.ExpectationsWereMet())
}

func TestSeed_TruncateFails(t *testing.T) {
	seeder, m := newTestSeeder(t)

	m.sql.ExpectExec(regexp.QuoteMeta(truncateCatalogQuery)).WillReturnError(errors.New("permission denied"))

	_, err := seeder.Seed(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error truncating catalog")
	assert.True(t, m.tx.rolledBack)
}

func TestSeed_StopsOnFirstFailure(t *testing.T) {
	seeder, m := newTestSeeder(t)

	m.sql.ExpectExec(regexp.QuoteMeta(truncateCatalogQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
	m.movies.EXPECT().CreateMovie(gomock.Any(), gomock.Any()).
		Return(models.Movie{}, store.ErrMovieTitleExists)

	summary, err := seeder.Seed(context.Background())

	assert.ErrorIs(t, err, store.ErrMovieTitleExists)
	assert.Zero(t, summary.Movies)
	assert.True(t, m.tx.rolledBack)
	assert.False(t, m.tx.committed)
}

func TestSeed_FromStorages_RollsBack(t *testing.T) {
	conn, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	storages := store.NewStorages(store.NewDB(conn, logger.Nop()), logger.Nop())
	seeder := NewSeeder(FromStorages(storages), logger.Nop())

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(regexp.QuoteMeta(truncateCatalogQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectQuery("INSERT INTO movies").WillReturnError(errors.New("disk full"))
	sqlMock.ExpectRollback()

	summary, err := seeder.Seed(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating movie")
	assert.Equal(t, Summary{}, summary)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSeed_FromStorages_BeginFails(t *testing.T) {
	conn, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	storages := store.NewStorages(store.NewDB(conn, logger.Nop()), logger.Nop())
	seeder := NewSeeder(FromStorages(storages), logger.Nop())

	sqlMock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	_, err = seeder.Seed(context.Background())

	assert.ErrorIs(t, err, store.ErrBeginningTransaction)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSampleData(t *testing.T) {
	for _, request := range sampleMovies() {
		_, err := request.Movie()
		assert.NoError(t, err, request.Title)
	}

	for _, sample := range sampleActors {
		actor, err := sample.request().Actor()
		require.NoError(t, err)
		require.NotNil(t, actor.Birthdate)
	}

	for _, entry := range sampleCastEntries {
		assert.Less(t, entry.movie, len(sampleMovies()))
		assert.Less(t, entry.actor, len(sampleActors))
		assert.NotEmpty(t, entry.characters)
	}
}
