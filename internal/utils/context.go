// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the transport, service and CLI
// layers: context keys for the authenticated identity, JWT generation and
// validation, JSON response writing, trace id generation and the HTTP
// client used by catalogctl.
package utils

import (
	"context"

	"github.com/MKhiriev/movie-catalog/models"
)

// contextKey is a private type for context keys, preventing collisions
// with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the authenticated caller is stored.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the authenticated caller.
// ok is false when the request has not been authenticated.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
