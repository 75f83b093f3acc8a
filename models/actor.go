// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Actor is a person who can be cast in movies.
type Actor struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	NickName     string    `json:"nickName"`
	Birthdate    *Date     `json:"birthdate"`
	Popularity   *float64  `json:"popularity"`
	ProfileImage string    `json:"profileImage"`
	Character    string    `json:"character"`
	TmdbID       *int64    `json:"tmdbId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Actor model.
func (a Actor) TableName() string {
	return "actors"
}

// CreateActorRequest is the body of POST /actors.
type CreateActorRequest struct {
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	NickName     string   `json:"nickName"`
	Birthdate    string   `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Popularity   *float64 `json:"popularity" validate:"omitnil,min=0,max=999.99"`
	ProfileImage string   `json:"profileImage"`
	Character    string   `json:"character"`
	TmdbID       *int64   `json:"tmdbId" validate:"omitnil,min=1"`
}

// Actor converts a validated request into an [Actor].
func (r CreateActorRequest) Actor() (Actor, error) {
	actor := Actor{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		NickName:     r.NickName,
		Popularity:   r.Popularity,
		ProfileImage: r.ProfileImage,
		Character:    r.Character,
		TmdbID:       r.TmdbID,
	}

	if r.Birthdate != "" {
		birthdate, err := ParseDate(r.Birthdate)
		if err != nil {
			return Actor{}, err
		}
		actor.Birthdate = &birthdate
	}

	return actor, nil
}

// UpdateActorRequest is the body of PATCH /actors/{id}.
// Only non-nil fields are updated.
type UpdateActorRequest struct {
	FirstName    *string  `json:"firstName"`
	LastName     *string  `json:"lastName"`
	NickName     *string  `json:"nickName"`
	Birthdate    *string  `json:"birthdate" validate:"omitnil,datetime=2006-01-02"`
	Popularity   *float64 `json:"popularity" validate:"omitnil,min=0,max=999.99"`
	ProfileImage *string  `json:"profileImage"`
	Character    *string  `json:"character"`
	TmdbID       *int64   `json:"tmdbId" validate:"omitnil,min=1"`
}

// IsEmpty reports whether the request carries no field to update.
func (r UpdateActorRequest) IsEmpty() bool {
	return r.FirstName == nil &&
		r.LastName == nil &&
		r.NickName == nil &&
		r.Birthdate == nil &&
		r.Popularity == nil &&
		r.ProfileImage == nil &&
		r.Character == nil &&
		r.TmdbID == nil
}
