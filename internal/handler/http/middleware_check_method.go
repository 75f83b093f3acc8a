// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
)

// routeNotFound answers unknown paths, and known paths called with an
// unregistered method, with a JSON 404 naming the method and path. Known
// paths get 404 rather than 405 so the route table is not revealed.
//
// Usage:
//
//	router.NotFound(routeNotFound)
//	router.MethodNotAllowed(routeNotFound)
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	resp := newErrorResponse(http.StatusNotFound, fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path))
	writeErrorResponse(w, r, resp, nil)
}
