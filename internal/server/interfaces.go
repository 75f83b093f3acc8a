// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the HTTP server managed by this
// package.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives and in-flight
// requests are drained. Shutdown stops the server from another goroutine.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
