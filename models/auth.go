// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SignupResponse is returned by a successful signup. The user projection
// never contains the password or its hash.
type SignupResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}
