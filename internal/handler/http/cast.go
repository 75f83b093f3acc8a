// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/models"
)

func (h *Handler) addCastEntry(w http.ResponseWriter, r *http.Request) {
	var request models.CreateCastRequest
	if err := h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := h.services.CastService.AddCastEntry(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) removeCastEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CastService.RemoveCastEntry(r.Context(), entryID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
