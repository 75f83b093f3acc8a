// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/movie-catalog/internal/crypto"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the UserRepository with a PasswordHasher
// and delegates token signing to a TokenIssuer.
type authService struct {
	// userRepository is the credential store used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes new passwords and verifies login attempts.
	hasher crypto.PasswordHasher

	tokenIssuer TokenIssuer

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService from its collaborators.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokenIssuer TokenIssuer, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

// ValidateUser looks the account up by email and compares password against
// its stored hash.
//
// An unknown email still runs one hash comparison, so both rejection paths
// cost about the same time.
func (a *authService) ValidateUser(ctx context.Context, email, password string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			_, _ = a.hasher.Compare("", password)
			log.Debug().Str("func", "authService.ValidateUser").Msg("no user with given email")
			return models.User{}, false, nil
		}

		log.Err(err).Str("func", "authService.ValidateUser").Msg("user search by email failed")
		return models.User{}, false, fmt.Errorf("user search by email failed: %w", err)
	}

	matches, err := a.hasher.Compare(foundUser.PasswordHash, password)
	if err != nil {
		log.Err(err).Str("func", "authService.ValidateUser").Int64("id", foundUser.UserID).Msg("stored password hash is unusable")
		return models.User{}, false, fmt.Errorf("password comparison failed: %w", err)
	}
	if !matches {
		log.Debug().Str("func", "authService.ValidateUser").Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, false, nil
	}

	return foundUser, true, nil
}

// Login issues an access token for user. It has no side effects.
func (a *authService) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	token, err := a.tokenIssuer.Issue(user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.Login").Int64("id", user.UserID).Msg("token issuing failed")
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{AccessToken: token.SignedString}, nil
}

// Signup hashes the password, stores a `user`-role account and issues a token
// for it.
//
// Returns:
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - A wrapped error for any other failure.
func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (models.SignupResponse, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		return models.SignupResponse{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Signup").Msg("password hashing failed")
		return models.SignupResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		PasswordHash: hash,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Role:         models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.SignupResponse{}, store.ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "authService.Signup").Msg("user creation ended with error")
		return models.SignupResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.tokenIssuer.Issue(createdUser)
	if err != nil {
		log.Err(err).Str("func", "authService.Signup").Int64("id", createdUser.UserID).Msg("token issuing failed")
		return models.SignupResponse{}, err
	}

	return models.SignupResponse{
		User:  createdUser.Public(),
		Token: token.SignedString,
	}, nil
}

// Authenticate verifies tokenString and loads the user it was issued for, so
// the identity always carries the role currently stored.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	token, err := a.tokenIssuer.Parse(tokenString)
	if err != nil {
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("func", "authService.Authenticate").Int64("id", token.UserID).Msg("token subject does not exist")
			return models.Identity{}, ErrTokenIsExpiredOrInvalid
		}

		log.Err(err).Str("func", "authService.Authenticate").Int64("id", token.UserID).Msg("user search by id failed")
		return models.Identity{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return models.Identity{
		UserID: user.UserID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}
