// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/crypto"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/store"
)

type Services struct {
	AuthService  AuthService
	MovieService MovieService
	ActorService ActorService
	CastService  CastService
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, hasher, NewTokenIssuer(cfg.App), logger),
		MovieService: NewMovieService(storages.MovieRepository, logger),
		ActorService: NewActorService(storages.ActorRepository, logger),
		CastService:  NewCastService(storages.CastRepository, storages.MovieRepository, logger),
	}
}
