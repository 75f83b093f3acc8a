// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an account with the same email
	// is already stored. The unique constraint on users.email is the
	// authority for this check.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	ErrMovieNotFound    = errors.New("movie was not found")
	ErrMovieTitleExists = errors.New("movie title already exists")

	ErrActorNotFound = errors.New("actor was not found")

	// ErrDuplicateTmdbID is returned when a movie or actor reuses a TMDB id.
	ErrDuplicateTmdbID = errors.New("tmdb id already exists")

	ErrCastEntryNotFound = errors.New("cast entry was not found")

	// ErrCastEntryExists is returned when the actor is already cast in the movie.
	ErrCastEntryExists = errors.New("actor is already cast in this movie")

	// ErrReferencedEntityNotFound is returned on a foreign key violation,
	// e.g. a cast entry pointing at a movie that does not exist.
	ErrReferencedEntityNotFound = errors.New("referenced entity was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when a transaction cannot be
	// committed.
	ErrCommittingTransaction = errors.New("failed to commit transaction")
)
