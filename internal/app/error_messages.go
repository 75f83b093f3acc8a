// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings of the movie
// catalog API.
//
// All Msg* constants are written into the "message" field of JSON error
// bodies. Existing API clients match on some of them, so the wording is
// part of the contract.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidID is returned when an {id} path parameter is not a positive
	// integer.
	MsgInvalidID = "Validation failed (numeric string is expected)"

	// MsgEmptyBody is returned when a create or update request carries no
	// fields at all.
	MsgEmptyBody = "Request body cannot be empty"

	// MsgValidationFailed is returned together with per-field details when a
	// request DTO violates its validation rules.
	MsgValidationFailed = "Validation failed"

	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInvalidCredentials is the single login rejection for an unknown
	// email and a wrong password alike.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUnauthorized is returned when a protected route is called without a
	// usable bearer token.
	MsgUnauthorized = "Unauthorized"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired,
	// forged, or belongs to an account that no longer exists.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUserNotAuthenticated is returned when a role check finds no
	// identity on the request.
	MsgUserNotAuthenticated = "User not authenticated"

	// MsgAccessDeniedRequiredRoles prefixes the comma separated list of
	// roles a route requires.
	MsgAccessDeniedRequiredRoles = "Access denied. Required roles: "

	MsgEmailAlreadyExists = "Email already exists"

	MsgTitleMustBeUnique = "Title must be unique"

	MsgTmdbIDAlreadyExists = "TMDB id already exists"

	MsgActorAlreadyCast = "Actor is already cast in this movie"

	// MsgMovieOrActorNotFound is returned when a cast entry references a
	// movie or actor that does not exist.
	MsgMovieOrActorNotFound = "Movie or actor not found"

	MsgTooManyRequests = "Too many requests"

	// MsgInternalServerError is returned for every unexpected failure. The
	// cause is logged, never sent.
	MsgInternalServerError = "Internal server error"
)
