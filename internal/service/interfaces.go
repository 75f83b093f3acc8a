// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/movie-catalog/models"
)

// AuthService turns credentials into identities and issues bearer tokens.
type AuthService interface {
	// ValidateUser returns the stored user and true when password matches
	// the account registered under email. An unknown email and a wrong
	// password both yield false with a nil error.
	ValidateUser(ctx context.Context, email, password string) (models.User, bool, error)
	// Login issues an access token for an already validated user.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)
	// Signup creates a `user`-role account and issues its first token.
	Signup(ctx context.Context, request models.SignupRequest) (models.SignupResponse, error)
	// Authenticate verifies a bearer token and resolves the identity of its
	// subject. Every failure is reported as [ErrTokenIsExpiredOrInvalid]
	// except unexpected storage errors.
	Authenticate(ctx context.Context, tokenString string) (models.Identity, error)
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Issue(user models.User) (models.Token, error)
	Parse(tokenString string) (models.Token, error)
}

type MovieService interface {
	CreateMovie(ctx context.Context, request models.CreateMovieRequest) (models.Movie, error)
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)
	UpdateMovie(ctx context.Context, movieID int64, request models.UpdateMovieRequest) (models.Movie, error)
	DeleteMovie(ctx context.Context, movieID int64) error
	SearchMovies(ctx context.Context, request models.SearchMoviesRequest) (models.SearchMoviesResponse, error)
}

type ActorService interface {
	CreateActor(ctx context.Context, request models.CreateActorRequest) (models.Actor, error)
	ListActors(ctx context.Context) ([]models.Actor, error)
	GetActor(ctx context.Context, actorID int64) (models.Actor, error)
	UpdateActor(ctx context.Context, actorID int64, request models.UpdateActorRequest) (models.Actor, error)
	DeleteActor(ctx context.Context, actorID int64) error
}

type CastService interface {
	AddCastEntry(ctx context.Context, request models.CreateCastRequest) (models.CastEntry, error)
	// ListMovieCast returns [NotFoundError] when the movie does not exist.
	ListMovieCast(ctx context.Context, movieID int64) ([]models.CastEntry, error)
	RemoveCastEntry(ctx context.Context, entryID int64) error
}
