// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Movie is a catalog entry. Title is unique across the catalog.
type Movie struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	ReleaseDate Date       `json:"releaseDate"`
	Genres      StringList `json:"genres"`
	// Duration is the running time in minutes.
	Duration int  `json:"duration"`
	Trending bool `json:"trending"`
	// Rating is on a 0..10 scale with one decimal place; nil when unrated.
	Rating      *float64 `json:"rating"`
	ImageURL    string   `json:"imageUrl"`
	Description string   `json:"description"`
	// Classification is the age rating, e.g. "PG-13". The wire name keeps the
	// spelling used by existing API clients.
	Classification string    `json:"clasification"`
	TmdbID         *int64    `json:"tmdbId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Movie model.
func (m Movie) TableName() string {
	return "movies"
}

// CreateMovieRequest is the body of POST /movies.
type CreateMovieRequest struct {
	Title          string   `json:"title" validate:"required,min=1"`
	ReleaseDate    string   `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Genres         []string `json:"genres" validate:"omitempty,dive,required"`
	Duration       int      `json:"duration" validate:"required,min=1"`
	Trending       bool     `json:"trending"`
	Rating         *float64 `json:"rating" validate:"omitnil,min=0,max=10"`
	ImageURL       string   `json:"imageUrl"`
	Description    string   `json:"description"`
	Classification string   `json:"clasification"`
	TmdbID         *int64   `json:"tmdbId" validate:"omitnil,min=1"`
}

// Movie converts a validated request into a [Movie].
func (r CreateMovieRequest) Movie() (Movie, error) {
	releaseDate, err := ParseDate(r.ReleaseDate)
	if err != nil {
		return Movie{}, err
	}

	return Movie{
		Title:          r.Title,
		ReleaseDate:    releaseDate,
		Genres:         r.Genres,
		Duration:       r.Duration,
		Trending:       r.Trending,
		Rating:         r.Rating,
		ImageURL:       r.ImageURL,
		Description:    r.Description,
		Classification: r.Classification,
		TmdbID:         r.TmdbID,
	}, nil
}

// UpdateMovieRequest is the body of PATCH /movies/{id}.
// Only non-nil fields are updated.
type UpdateMovieRequest struct {
	Title          *string   `json:"title" validate:"omitnil,min=1"`
	ReleaseDate    *string   `json:"releaseDate" validate:"omitnil,datetime=2006-01-02"`
	Genres         *[]string `json:"genres" validate:"omitnil,dive,required"`
	Duration       *int      `json:"duration" validate:"omitnil,min=1"`
	Trending       *bool     `json:"trending"`
	Rating         *float64  `json:"rating" validate:"omitnil,min=0,max=10"`
	ImageURL       *string   `json:"imageUrl"`
	Description    *string   `json:"description"`
	Classification *string   `json:"clasification"`
	TmdbID         *int64    `json:"tmdbId" validate:"omitnil,min=1"`
}

// IsEmpty reports whether the request carries no field to update.
func (r UpdateMovieRequest) IsEmpty() bool {
	return r.Title == nil &&
		r.ReleaseDate == nil &&
		r.Genres == nil &&
		r.Duration == nil &&
		r.Trending == nil &&
		r.Rating == nil &&
		r.ImageURL == nil &&
		r.Description == nil &&
		r.Classification == nil &&
		r.TmdbID == nil
}

// SearchMoviesRequest is the body of POST /movies/search.
type SearchMoviesRequest struct {
	Query string `json:"query"`
	Page  *int   `json:"page" validate:"omitnil,min=1"`
	Limit *int   `json:"limit" validate:"omitnil,min=1,max=100"`
}

// Defaults used when a search request omits paging.
const (
	DefaultSearchPage  = 1
	DefaultSearchLimit = 10
)

// Paging returns the requested page and limit with defaults applied.
func (r SearchMoviesRequest) Paging() (page, limit int) {
	page, limit = DefaultSearchPage, DefaultSearchLimit
	if r.Page != nil {
		page = *r.Page
	}
	if r.Limit != nil {
		limit = *r.Limit
	}
	return page, limit
}

// MovieSearch is a normalized search query handed to the store.
type MovieSearch struct {
	Query  string
	Limit  int
	Offset int
}

// SearchMoviesResponse is one page of search results.
type SearchMoviesResponse struct {
	Data       []Movie `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"totalPages"`
}
