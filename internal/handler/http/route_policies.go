// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "github.com/MKhiriev/movie-catalog/models"

// routeID names a registered endpoint independently of its path.
type routeID string

const (
	routeHealth routeID = "health"

	routeAuthLogin  routeID = "auth.login"
	routeAuthSignup routeID = "auth.signup"
	routeAuthMe     routeID = "auth.me"

	routeMovieCreate routeID = "movies.create"
	routeMovieList   routeID = "movies.list"
	routeMovieGet    routeID = "movies.get"
	routeMovieUpdate routeID = "movies.update"
	routeMovieDelete routeID = "movies.delete"
	routeMovieSearch routeID = "movies.search"
	routeMovieCast   routeID = "movies.cast"

	routeActorCreate routeID = "actors.create"
	routeActorList   routeID = "actors.list"
	routeActorGet    routeID = "actors.get"
	routeActorUpdate routeID = "actors.update"
	routeActorDelete routeID = "actors.delete"

	routeCastCreate routeID = "cast.create"
	routeCastDelete routeID = "cast.delete"
)

// accessPolicy is what the guard chain requires before a route runs.
// Public routes skip both authentication and role checks. Otherwise an
// identity is required, and when Roles is non-empty it must hold one of them.
type accessPolicy struct {
	Public bool
	Roles  []models.Role
}

var (
	public    = accessPolicy{Public: true}
	adminOnly = accessPolicy{Roles: []models.Role{models.RoleAdmin}}
)

// routePolicies is consulted at dispatch time. A route missing from the
// table requires authentication but no particular role.
var routePolicies = map[routeID]accessPolicy{
	routeHealth: public,

	routeAuthLogin:  public,
	routeAuthSignup: public,

	routeMovieCreate: adminOnly,
	routeMovieList:   public,
	routeMovieGet:    public,
	routeMovieUpdate: adminOnly,
	routeMovieDelete: adminOnly,
	routeMovieSearch: public,
	routeMovieCast:   public,

	routeActorCreate: adminOnly,
	routeActorList:   public,
	routeActorGet:    public,
	routeActorUpdate: adminOnly,
	routeActorDelete: adminOnly,

	routeCastCreate: adminOnly,
	routeCastDelete: adminOnly,
}

func (h *Handler) policyFor(id routeID) accessPolicy {
	return h.policies[id]
}
