// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/models"
)

type actorService struct {
	actorRepository store.ActorRepository
	logger          *logger.Logger
}

func NewActorService(actorRepository store.ActorRepository, logger *logger.Logger) ActorService {
	return &actorService{
		actorRepository: actorRepository,
		logger:          logger,
	}
}

func (a *actorService) CreateActor(ctx context.Context, request models.CreateActorRequest) (models.Actor, error) {
	actor, err := request.Actor()
	if err != nil {
		return models.Actor{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := a.actorRepository.CreateActor(ctx, actor)
	if err != nil {
		return models.Actor{}, fmt.Errorf("actor creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("actor_id", created.ID).Msg("actor created")
	return created, nil
}

func (a *actorService) ListActors(ctx context.Context) ([]models.Actor, error) {
	return a.actorRepository.ListActors(ctx)
}

func (a *actorService) GetActor(ctx context.Context, actorID int64) (models.Actor, error) {
	actor, err := a.actorRepository.FindActorByID(ctx, actorID)
	if err != nil {
		return models.Actor{}, actorError(actorID, err)
	}
	return actor, nil
}

func (a *actorService) UpdateActor(ctx context.Context, actorID int64, request models.UpdateActorRequest) (models.Actor, error) {
	if _, err := a.actorRepository.FindActorByID(ctx, actorID); err != nil {
		return models.Actor{}, actorError(actorID, err)
	}

	if request.IsEmpty() {
		return models.Actor{}, ErrEmptyUpdate
	}

	updated, err := a.actorRepository.UpdateActor(ctx, actorID, request)
	if err != nil {
		return models.Actor{}, actorError(actorID, err)
	}
	return updated, nil
}

func (a *actorService) DeleteActor(ctx context.Context, actorID int64) error {
	if err := a.actorRepository.DeleteActor(ctx, actorID); err != nil {
		return actorError(actorID, err)
	}

	logger.FromContext(ctx).Info().Int64("actor_id", actorID).Msg("actor deleted")
	return nil
}

func actorError(actorID int64, err error) error {
	if errors.Is(err, store.ErrActorNotFound) {
		return &NotFoundError{Entity: "Actor", ID: actorID, Err: err}
	}
	return err
}
