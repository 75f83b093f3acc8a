// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/crypto"
	"github.com/stretchr/testify/require"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "movie-catalog-test",
	TokenDuration:    time.Hour,
	PasswordHashCost: 4,
}

func newTestHasher(t *testing.T) crypto.PasswordHasher {
	t.Helper()
	hasher, err := crypto.NewPasswordHasher(testAppConfig.PasswordHashCost)
	require.NoError(t, err)
	return hasher
}

func ptr[T any](v T) *T { return &v }
