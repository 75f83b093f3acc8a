// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/movie-catalog/models"
)

// UserRepository persists accounts (the credential store).
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUserRole(ctx context.Context, email string, role models.Role) (models.User, error)
}

type MovieRepository interface {
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	ListMovies(ctx context.Context) ([]models.Movie, error)
	FindMovieByID(ctx context.Context, movieID int64) (models.Movie, error)
	UpdateMovie(ctx context.Context, movieID int64, update models.UpdateMovieRequest) (models.Movie, error)
	DeleteMovie(ctx context.Context, movieID int64) error
	// SearchMovies returns one page of matches and the total number of matches.
	SearchMovies(ctx context.Context, search models.MovieSearch) ([]models.Movie, int64, error)
}

type ActorRepository interface {
	CreateActor(ctx context.Context, actor models.Actor) (models.Actor, error)
	ListActors(ctx context.Context) ([]models.Actor, error)
	FindActorByID(ctx context.Context, actorID int64) (models.Actor, error)
	UpdateActor(ctx context.Context, actorID int64, update models.UpdateActorRequest) (models.Actor, error)
	DeleteActor(ctx context.Context, actorID int64) error
}

type CastRepository interface {
	CreateCastEntry(ctx context.Context, entry models.CastEntry) (models.CastEntry, error)
	// ListMovieCast returns the cast of a movie with actor data attached.
	ListMovieCast(ctx context.Context, movieID int64) ([]models.CastEntry, error)
	DeleteCastEntry(ctx context.Context, entryID int64) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
