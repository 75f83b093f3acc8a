// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CastEntry links an actor to a movie together with the part they play.
type CastEntry struct {
	ID      int64 `json:"id"`
	MovieID int64 `json:"movieId"`
	ActorID int64 `json:"actorId"`
	// Role is the billing of the part, e.g. "Lead", "Support", "Antagonist".
	Role       string     `json:"role"`
	Characters StringList `json:"characters"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`

	// Actor is populated when listing the cast of a movie.
	Actor *Actor `json:"actor,omitempty"`
}

// TableName returns the name of the database table
// associated with the CastEntry model.
func (c CastEntry) TableName() string {
	return "cast"
}

// CreateCastRequest is the body of POST /cast.
type CreateCastRequest struct {
	MovieID    int64    `json:"movieId" validate:"required,min=1"`
	ActorID    int64    `json:"actorId" validate:"required,min=1"`
	Role       string   `json:"role" validate:"required"`
	Characters []string `json:"characters" validate:"required,min=1,dive,required"`
}

// CastEntry converts a validated request into a [CastEntry].
func (r CreateCastRequest) CastEntry() CastEntry {
	return CastEntry{
		MovieID:    r.MovieID,
		ActorID:    r.ActorID,
		Role:       r.Role,
		Characters: r.Characters,
	}
}
