// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/netip"
	"time"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/service"
	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/internal/validators"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services  *service.Services
	validator validators.Validator
	db        Pinger
	policies  map[routeID]accessPolicy
	traceIDs  *utils.UUIDGenerator

	corsOrigins      []string
	authRateLimitRPM int
	trustedProxies   []netip.Prefix
	requestTimeout   time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, db Pinger, cfg config.Server, logger *logger.Logger) *Handler {
	trustedProxies, err := config.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		logger.Warn().Err(err).Msg("ignoring trusted proxies, client IPs are taken from the peer address")
		trustedProxies = nil
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		validator:        validators.NewRequestValidator(),
		db:               db,
		policies:         routePolicies,
		traceIDs:         utils.NewUUIDGenerator(),
		corsOrigins:      cfg.CORSOrigins,
		authRateLimitRPM: cfg.AuthRateLimitRPM,
		trustedProxies:   trustedProxies,
		requestTimeout:   cfg.RequestTimeout,
		logger:           logger,
	}
}
