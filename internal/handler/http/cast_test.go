// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/movie-catalog/internal/service"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCastEntry(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		addErr      error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "created",
			body:       `{"movieId":1,"actorId":3,"role":"Lead","characters":["Dom Cobb"]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:        "unknown movie or actor",
			body:        `{"movieId":1,"actorId":99,"role":"Lead","characters":["Dom Cobb"]}`,
			addErr:      fmt.Errorf("error creating cast entry: %w", store.ErrReferencedEntityNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Movie or actor not found",
		},
		{
			name:        "duplicate pair",
			body:        `{"movieId":1,"actorId":3,"role":"Lead","characters":["Dom Cobb"]}`,
			addErr:      store.ErrCastEntryExists,
			wantStatus:  http.StatusConflict,
			wantMessage: "Actor is already cast in this movie",
		},
		{
			name:        "no characters",
			body:        `{"movieId":1,"actorId":3,"role":"Lead","characters":[]}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation failed",
		},
		{
			name:        "missing role",
			body:        `{"movieId":1,"actorId":3,"characters":["Dom Cobb"]}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{
				CastService: &fakeCastService{
					addFn: func(_ context.Context, request models.CreateCastRequest) (models.CastEntry, error) {
						if tt.addErr != nil {
							return models.CastEntry{}, tt.addErr
						}
						entry := request.CastEntry()
						entry.ID = 1
						return entry, nil
					},
				},
			})

			rec := serve(t, h, http.MethodPost, "/cast", tt.body, "admin-token")

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeError(t, rec).Message)
				return
			}
			assert.Contains(t, rec.Body.String(), `"characters":["Dom Cobb"]`)
		})
	}
}

func TestRemoveCastEntry(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		CastService: &fakeCastService{
			removeFn: func(_ context.Context, entryID int64) error {
				if entryID == 1 {
					return nil
				}
				return &service.NotFoundError{Entity: "Cast entry", ID: entryID, Err: store.ErrCastEntryNotFound}
			},
		},
	})

	rec := serve(t, h, http.MethodDelete, "/cast/1", "", "admin-token")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(t, h, http.MethodDelete, "/cast/2", "", "admin-token")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cast entry with ID 2 not found", decodeError(t, rec).Message)

	rec = serve(t, h, http.MethodDelete, "/cast/1", "", "user-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
