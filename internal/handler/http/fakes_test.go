// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/service"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case.
type fakeAuthService struct {
	validateUserFn func(ctx context.Context, email, password string) (models.User, bool, error)
	loginFn        func(ctx context.Context, user models.User) (models.LoginResponse, error)
	signupFn       func(ctx context.Context, request models.SignupRequest) (models.SignupResponse, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.Identity, error)
}

func (f *fakeAuthService) ValidateUser(ctx context.Context, email, password string) (models.User, bool, error) {
	return f.validateUserFn(ctx, email, password)
}

func (f *fakeAuthService) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	return f.loginFn(ctx, user)
}

func (f *fakeAuthService) Signup(ctx context.Context, request models.SignupRequest) (models.SignupResponse, error) {
	return f.signupFn(ctx, request)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, tokenString string) (models.Identity, error) {
	if f.authenticateFn == nil {
		return models.Identity{}, service.ErrTokenIsExpiredOrInvalid
	}
	return f.authenticateFn(ctx, tokenString)
}

// tokensFor authenticates the literal tokens "user-token" and "admin-token".
func tokensFor(ctx context.Context, tokenString string) (models.Identity, error) {
	switch tokenString {
	case "user-token":
		return models.Identity{UserID: 1, Email: "user@b.com", Role: models.RoleUser}, nil
	case "admin-token":
		return models.Identity{UserID: 2, Email: "admin@b.com", Role: models.RoleAdmin}, nil
	}
	return models.Identity{}, service.ErrTokenIsExpiredOrInvalid
}

type fakeMovieService struct {
	createFn func(ctx context.Context, request models.CreateMovieRequest) (models.Movie, error)
	listFn   func(ctx context.Context) ([]models.Movie, error)
	getFn    func(ctx context.Context, movieID int64) (models.Movie, error)
	updateFn func(ctx context.Context, movieID int64, request models.UpdateMovieRequest) (models.Movie, error)
	deleteFn func(ctx context.Context, movieID int64) error
	searchFn func(ctx context.Context, request models.SearchMoviesRequest) (models.SearchMoviesResponse, error)
}

func (f *fakeMovieService) CreateMovie(ctx context.Context, request models.CreateMovieRequest) (models.Movie, error) {
	return f.createFn(ctx, request)
}

func (f *fakeMovieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return f.listFn(ctx)
}

func (f *fakeMovieService) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	return f.getFn(ctx, movieID)
}

func (f *fakeMovieService) UpdateMovie(ctx context.Context, movieID int64, request models.UpdateMovieRequest) (models.Movie, error) {
	return f.updateFn(ctx, movieID, request)
}

func (f *fakeMovieService) DeleteMovie(ctx context.Context, movieID int64) error {
	return f.deleteFn(ctx, movieID)
}

func (f *fakeMovieService) SearchMovies(ctx context.Context, request models.SearchMoviesRequest) (models.SearchMoviesResponse, error) {
	return f.searchFn(ctx, request)
}

type fakeActorService struct {
	createFn func(ctx context.Context, request models.CreateActorRequest) (models.Actor, error)
	listFn   func(ctx context.Context) ([]models.Actor, error)
	getFn    func(ctx context.Context, actorID int64) (models.Actor, error)
	updateFn func(ctx context.Context, actorID int64, request models.UpdateActorRequest) (models.Actor, error)
	deleteFn func(ctx context.Context, actorID int64) error
}

func (f *fakeActorService) CreateActor(ctx context.Context, request models.CreateActorRequest) (models.Actor, error) {
	return f.createFn(ctx, request)
}

func (f *fakeActorService) ListActors(ctx context.Context) ([]models.Actor, error) {
	return f.listFn(ctx)
}

func (f *fakeActorService) GetActor(ctx context.Context, actorID int64) (models.Actor, error) {
	return f.getFn(ctx, actorID)
}

func (f *fakeActorService) UpdateActor(ctx context.Context, actorID int64, request models.UpdateActorRequest) (models.Actor, error) {
	return f.updateFn(ctx, actorID, request)
}

func (f *fakeActorService) DeleteActor(ctx context.Context, actorID int64) error {
	return f.deleteFn(ctx, actorID)
}

type fakeCastService struct {
	addFn    func(ctx context.Context, request models.CreateCastRequest) (models.CastEntry, error)
	listFn   func(ctx context.Context, movieID int64) ([]models.CastEntry, error)
	removeFn func(ctx context.Context, entryID int64) error
}

func (f *fakeCastService) AddCastEntry(ctx context.Context, request models.CreateCastRequest) (models.CastEntry, error) {
	return f.addFn(ctx, request)
}

func (f *fakeCastService) ListMovieCast(ctx context.Context, movieID int64) ([]models.CastEntry, error) {
	return f.listFn(ctx, movieID)
}

func (f *fakeCastService) RemoveCastEntry(ctx context.Context, entryID int64) error {
	return f.removeFn(ctx, entryID)
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler fills missing services with fakes that authenticate the
// "user-token" and "admin-token" bearer tokens.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &fakeAuthService{authenticateFn: tokensFor}
	}
	if svcs.MovieService == nil {
		svcs.MovieService = &fakeMovieService{}
	}
	if svcs.ActorService == nil {
		svcs.ActorService = &fakeActorService{}
	}
	if svcs.CastService == nil {
		svcs.CastService = &fakeCastService{}
	}
	return NewHandler(svcs, fakePinger{}, config.Server{AuthRateLimitRPM: 1000}, logger.Nop())
}

// serve runs one request through the full router.
func serve(t *testing.T, h *Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
