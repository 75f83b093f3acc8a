// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/mock"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMovieService(t *testing.T) (MovieService, *mock.MockMovieRepository) {
	t.Helper()
	repo := mock.NewMockMovieRepository(gomock.NewController(t))
	return NewMovieService(repo, logger.Nop()), repo
}

func TestMovieService_CreateMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("converts the request", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		repo.EXPECT().CreateMovie(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, m models.Movie) (models.Movie, error) {
				assert.Equal(t, "Inception", m.Title)
				assert.Equal(t, "2010-07-16", m.ReleaseDate.String())
				assert.Equal(t, models.StringList{"Sci-Fi"}, m.Genres)
				m.ID = 1
				return m, nil
			})

		movie, err := svc.CreateMovie(ctx, models.CreateMovieRequest{
			Title:       "Inception",
			ReleaseDate: "2010-07-16",
			Genres:      []string{"Sci-Fi"},
			Duration:    148,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), movie.ID)
	})

	t.Run("bad date", func(t *testing.T) {
		svc, _ := newTestMovieService(t)

		_, err := svc.CreateMovie(ctx, models.CreateMovieRequest{Title: "x", ReleaseDate: "yesterday"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("duplicate title", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		repo.EXPECT().CreateMovie(ctx, gomock.Any()).Return(models.Movie{}, store.ErrMovieTitleExists)

		_, err := svc.CreateMovie(ctx, models.CreateMovieRequest{Title: "x", ReleaseDate: "2010-07-16"})
		assert.ErrorIs(t, err, store.ErrMovieTitleExists)
	})
}

func TestMovieService_GetMovie_NotFound(t *testing.T) {
	svc, repo := newTestMovieService(t)
	repo.EXPECT().FindMovieByID(gomock.Any(), int64(12)).Return(models.Movie{}, store.ErrMovieNotFound)

	_, err := svc.GetMovie(context.Background(), 12)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Movie with ID 12 not found", notFound.Error())
	assert.ErrorIs(t, err, store.ErrMovieNotFound)
}

func TestMovieService_UpdateMovie(t *testing.T) {
	ctx := context.Background()
	update := models.UpdateMovieRequest{Trending: ptr(true)}

	t.Run("missing movie wins over empty body", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		repo.EXPECT().FindMovieByID(ctx, int64(3)).Return(models.Movie{}, store.ErrMovieNotFound)

		_, err := svc.UpdateMovie(ctx, 3, models.UpdateMovieRequest{})
		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("empty body", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		repo.EXPECT().FindMovieByID(ctx, int64(3)).Return(models.Movie{ID: 3}, nil)

		_, err := svc.UpdateMovie(ctx, 3, models.UpdateMovieRequest{})
		assert.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestMovieService(t)
		gomock.InOrder(
			repo.EXPECT().FindMovieByID(ctx, int64(3)).Return(models.Movie{ID: 3}, nil),
			repo.EXPECT().UpdateMovie(ctx, int64(3), update).Return(models.Movie{ID: 3, Trending: true}, nil),
		)

		movie, err := svc.UpdateMovie(ctx, 3, update)
		require.NoError(t, err)
		assert.True(t, movie.Trending)
	})
}

func TestMovieService_DeleteMovie(t *testing.T) {
	svc, repo := newTestMovieService(t)
	repo.EXPECT().DeleteMovie(gomock.Any(), int64(1)).Return(nil)
	repo.EXPECT().DeleteMovie(gomock.Any(), int64(2)).Return(store.ErrMovieNotFound)

	assert.NoError(t, svc.DeleteMovie(context.Background(), 1))

	var notFound *NotFoundError
	assert.ErrorAs(t, svc.DeleteMovie(context.Background(), 2), &notFound)
}

func TestMovieService_SearchMovies(t *testing.T) {
	tests := []struct {
		name       string
		request    models.SearchMoviesRequest
		total      int64
		wantSearch models.MovieSearch
		wantPage   int
		wantLimit  int
		wantPages  int
	}{
		{
			name:       "defaults",
			request:    models.SearchMoviesRequest{},
			total:      0,
			wantSearch: models.MovieSearch{Limit: 10, Offset: 0},
			wantPage:   1,
			wantLimit:  10,
			wantPages:  0,
		},
		{
			name:       "third page",
			request:    models.SearchMoviesRequest{Query: "star", Page: ptr(3), Limit: ptr(5)},
			total:      11,
			wantSearch: models.MovieSearch{Query: "star", Limit: 5, Offset: 10},
			wantPage:   3,
			wantLimit:  5,
			wantPages:  3,
		},
		{
			name:       "exact multiple",
			request:    models.SearchMoviesRequest{Limit: ptr(4)},
			total:      8,
			wantSearch: models.MovieSearch{Limit: 4},
			wantPage:   1,
			wantLimit:  4,
			wantPages:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestMovieService(t)
			repo.EXPECT().SearchMovies(gomock.Any(), tt.wantSearch).Return([]models.Movie{}, tt.total, nil)

			resp, err := svc.SearchMovies(context.Background(), tt.request)
			require.NoError(t, err)
			assert.Equal(t, tt.total, resp.Total)
			assert.Equal(t, tt.wantPage, resp.Page)
			assert.Equal(t, tt.wantLimit, resp.Limit)
			assert.Equal(t, tt.wantPages, resp.TotalPages)
			assert.NotNil(t, resp.Data)
		})
	}
}

func TestMovieService_SearchMovies_Errors(t *testing.T) {
	svc, repo := newTestMovieService(t)

	_, err := svc.SearchMovies(context.Background(), models.SearchMoviesRequest{Page: ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	// page*limit past the bigint range never reaches the repository
	_, err = svc.SearchMovies(context.Background(), models.SearchMoviesRequest{
		Page:  ptr(math.MaxInt/50 - 1),
		Limit: ptr(100),
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.SearchMovies(context.Background(), models.SearchMoviesRequest{
		Page:  ptr(math.MaxInt),
		Limit: ptr(1),
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	dbErr := errors.New("boom")
	repo.EXPECT().SearchMovies(gomock.Any(), gomock.Any()).Return(nil, int64(0), dbErr)
	_, err = svc.SearchMovies(context.Background(), models.SearchMoviesRequest{})
	assert.ErrorIs(t, err, dbErr)
}
