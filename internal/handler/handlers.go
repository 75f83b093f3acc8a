// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/handler/http"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, db http.Pinger, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, db, cfg, logger),
	}, nil
}
