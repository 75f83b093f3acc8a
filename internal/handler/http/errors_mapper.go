// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/movie-catalog/internal/app"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/service"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/internal/validators"
	"github.com/MKhiriev/movie-catalog/models"
)

// errorStatus is the status and client-facing message for a known error.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order and the first match wins, so more
// specific errors come before the generic ones they may wrap.
var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidID, http.StatusBadRequest, app.MsgInvalidID},
	{utils.ErrEmptyBody, http.StatusBadRequest, app.MsgEmptyBody},
	{validators.ErrInvalidRequest, http.StatusBadRequest, app.MsgValidationFailed},
	{service.ErrEmptyUpdate, http.StatusBadRequest, app.MsgEmptyBody},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgUnauthorized},
	{ErrUserNotAuthenticated, http.StatusForbidden, app.MsgUserNotAuthenticated},
	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrMovieTitleExists, http.StatusBadRequest, app.MsgTitleMustBeUnique},
	{store.ErrDuplicateTmdbID, http.StatusConflict, app.MsgTmdbIDAlreadyExists},
	{store.ErrCastEntryExists, http.StatusConflict, app.MsgActorAlreadyCast},
	{store.ErrReferencedEntityNotFound, http.StatusNotFound, app.MsgMovieOrActorNotFound},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrCommittingTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
}

// errorResponseFrom builds the response body for err. Unknown errors map
// to 500 without exposing their text.
func errorResponseFrom(err error) models.ErrorResponse {
	var notFound *service.NotFoundError
	if errors.As(err, &notFound) {
		return newErrorResponse(http.StatusNotFound, notFound.Error())
	}

	var invalid *validators.ValidationError
	if errors.As(err, &invalid) {
		resp := newErrorResponse(http.StatusBadRequest, app.MsgValidationFailed)
		resp.Details = invalid.Details
		return resp
	}

	for _, known := range errorStatuses {
		if errors.Is(err, known.target) {
			return newErrorResponse(known.status, known.message)
		}
	}

	return newErrorResponse(http.StatusInternalServerError, app.MsgInternalServerError)
}

func newErrorResponse(status int, message string) models.ErrorResponse {
	return models.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	}
}

// writeError logs err and writes its JSON representation.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponseFrom(err)
	writeErrorResponse(w, r, resp, err)
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, resp models.ErrorResponse, err error) {
	log := logger.FromRequest(r)
	event := log.Warn()
	if resp.StatusCode >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", resp.StatusCode).Str("path", r.URL.Path).Msg(resp.Message)

	_, _ = utils.WriteJSON(w, resp, resp.StatusCode)
}
