// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.guard(routeHealth, h.health))

	router.Route("/auth", func(r chi.Router) {
		r.Use(h.withRateLimit())

		r.Post("/login", h.guard(routeAuthLogin, h.login))
		r.Post("/signup", h.guard(routeAuthSignup, h.signup))
		r.Get("/me", h.guard(routeAuthMe, h.me))
	})

	router.Route("/movies", func(r chi.Router) {
		r.Post("/", h.guard(routeMovieCreate, h.createMovie))
		r.Get("/", h.guard(routeMovieList, h.listMovies))
		r.Post("/search", h.guard(routeMovieSearch, h.searchMovies))
		r.Get("/{id}", h.guard(routeMovieGet, h.getMovie))
		r.Patch("/{id}", h.guard(routeMovieUpdate, h.updateMovie))
		r.Delete("/{id}", h.guard(routeMovieDelete, h.deleteMovie))
		r.Get("/{id}/cast", h.guard(routeMovieCast, h.listMovieCast))
	})

	router.Route("/actors", func(r chi.Router) {
		r.Post("/", h.guard(routeActorCreate, h.createActor))
		r.Get("/", h.guard(routeActorList, h.listActors))
		r.Get("/{id}", h.guard(routeActorGet, h.getActor))
		r.Patch("/{id}", h.guard(routeActorUpdate, h.updateActor))
		r.Delete("/{id}", h.guard(routeActorDelete, h.deleteActor))
	})

	router.Route("/cast", func(r chi.Router) {
		r.Post("/", h.guard(routeCastCreate, h.addCastEntry))
		r.Delete("/{id}", h.guard(routeCastDelete, h.removeCastEntry))
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}
