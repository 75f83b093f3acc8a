// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/models"
)

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	var request models.CreateMovieRequest
	if err := h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	movie, err := h.services.MovieService.CreateMovie(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, movie, http.StatusCreated)
}

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.services.MovieService.ListMovies(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, movies, http.StatusOK)
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	movie, err := h.services.MovieService.GetMovie(r.Context(), movieID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, movie, http.StatusOK)
}

// updateMovie treats a missing body like an empty object, so an unknown id
// is still reported as 404 before the empty update is rejected.
func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.UpdateMovieRequest
	if err = h.decodeAndValidate(w, r, &request); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
		writeError(w, r, err)
		return
	}

	movie, err := h.services.MovieService.UpdateMovie(r.Context(), movieID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MovieService.DeleteMovie(r.Context(), movieID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// searchMovies accepts an empty body as "first page of everything".
func (h *Handler) searchMovies(w http.ResponseWriter, r *http.Request) {
	var request models.SearchMoviesRequest
	if err := h.decodeAndValidate(w, r, &request); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
		writeError(w, r, err)
		return
	}

	response, err := h.services.MovieService.SearchMovies(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) listMovieCast(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := h.services.CastService.ListMovieCast(r.Context(), movieID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}
