// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrEmptyUpdate is returned by partial updates that carry no field.
	ErrEmptyUpdate = errors.New("request body cannot be empty")

	ErrInvalidDataProvided = errors.New("invalid data provided")
)

// NotFoundError reports a catalog entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
	// Err is the storage sentinel, e.g. store.ErrMovieNotFound.
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}
