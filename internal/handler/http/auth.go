// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/movie-catalog/internal/app"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/models"
)

// errInvalidCredentials is the single rejection for unknown emails and wrong
// passwords alike.
var errInvalidCredentials = errors.New("invalid credentials")

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, ok, err := h.services.AuthService.ValidateUser(ctx, request.Email, request.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		resp := newErrorResponse(http.StatusUnauthorized, app.MsgInvalidCredentials)
		writeErrorResponse(w, r, resp, errInvalidCredentials)
		return
	}

	response, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var request models.SignupRequest
	if err := h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.AuthService.Signup(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, response, http.StatusCreated)
}

// me returns the identity resolved by the guard chain.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrUserNotAuthenticated)
		return
	}

	_, _ = utils.WriteJSON(w, identity, http.StatusOK)
}
