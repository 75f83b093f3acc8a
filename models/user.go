// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user, assigned by the
	// database on creation.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. Compared case-sensitively, as stored.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// FirstName is the optional given name of the user.
	FirstName string `json:"firstName"`

	// LastName is the optional family name of the user.
	LastName string `json:"lastName"`

	// Role is the coarse-grained permission tag. New accounts get RoleUser.
	Role Role `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the outward-facing projection of the user used in signup
// responses. It never contains the password hash.
func (u User) Public() PublicUser {
	return PublicUser{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// PublicUser is the part of a [User] that may be returned to clients.
type PublicUser struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Identity is the authenticated caller attached to a request context after
// the bearer token has been verified.
type Identity struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}
