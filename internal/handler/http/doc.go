// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the movie catalog.
//
// It wires routes, the per-route access policy table and the guard chain
// that authenticates and authorizes requests, plus cross-cutting middleware
// (tracing, access logging, CORS, rate limiting, compression). Handlers
// decode and validate request bodies before delegating to the service layer.
package http
