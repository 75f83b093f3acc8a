// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/MKhiriev/movie-catalog/internal/app"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/service"
	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/models"
)

// guard runs the access checks of route id in front of next.
//
// Order:
//  1. Public routes are served immediately, whatever the token.
//  2. authenticate: a missing, malformed, expired or foreign token ends the
//     request with 401.
//  3. authorize: an identity without one of the required roles ends the
//     request with 403.
func (h *Handler) guard(id routeID, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		policy := h.policyFor(id)
		if policy.Public {
			next(w, r)
			return
		}

		identity, err := h.authenticate(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		r = r.WithContext(utils.WithIdentity(r.Context(), identity))

		if err = authorize(r, policy); err != nil {
			if errors.Is(err, ErrAccessDenied) {
				resp := newErrorResponse(http.StatusForbidden, app.MsgAccessDeniedRequiredRoles+models.JoinRoles(policy.Roles))
				writeErrorResponse(w, r, resp, err)
				return
			}
			writeError(w, r, err)
			return
		}

		next(w, r)
	}
}

// authenticate resolves the identity behind the bearer token of r.
func (h *Handler) authenticate(r *http.Request) (models.Identity, error) {
	log := logger.FromRequest(r)

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.Identity{}, ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return models.Identity{}, err
	}

	identity, err := h.services.AuthService.Authenticate(r.Context(), tokenString)
	if err != nil {
		if !errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
			log.Err(err).Str("func", "Handler.authenticate").Msg("unexpected error during authentication")
		}
		return models.Identity{}, err
	}

	return identity, nil
}

// authorize checks the identity stored in the request context against the
// roles of policy. A missing identity is a denial, never an allowance.
func authorize(r *http.Request, policy accessPolicy) error {
	if len(policy.Roles) == 0 {
		return nil
	}

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return ErrUserNotAuthenticated
	}

	if !slices.Contains(policy.Roles, identity.Role) {
		return fmt.Errorf("%w: role %q", ErrAccessDenied, identity.Role)
	}
	return nil
}
