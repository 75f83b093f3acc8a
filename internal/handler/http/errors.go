// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the guard chain when a
	// protected route is called without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrUserNotAuthenticated is returned when a role check runs without an
	// identity in the request context.
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	// ErrAccessDenied is returned when the identity lacks every required role.
	ErrAccessDenied = errors.New("access denied")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
	ErrInvalidID   = errors.New("id must be a positive integer")
)
