// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/models"
)

func (h *Handler) createActor(w http.ResponseWriter, r *http.Request) {
	var request models.CreateActorRequest
	if err := h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	actor, err := h.services.ActorService.CreateActor(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, actor, http.StatusCreated)
}

func (h *Handler) listActors(w http.ResponseWriter, r *http.Request) {
	actors, err := h.services.ActorService.ListActors(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, actors, http.StatusOK)
}

func (h *Handler) getActor(w http.ResponseWriter, r *http.Request) {
	actorID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	actor, err := h.services.ActorService.GetActor(r.Context(), actorID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, actor, http.StatusOK)
}

func (h *Handler) updateActor(w http.ResponseWriter, r *http.Request) {
	actorID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.UpdateActorRequest
	if err = h.decodeAndValidate(w, r, &request); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
		writeError(w, r, err)
		return
	}

	actor, err := h.services.ActorService.UpdateActor(r.Context(), actorID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, actor, http.StatusOK)
}

func (h *Handler) deleteActor(w http.ResponseWriter, r *http.Request) {
	actorID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ActorService.DeleteActor(r.Context(), actorID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
