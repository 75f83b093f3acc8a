// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/models"
)

// jwtTokenIssuer issues HS256 tokens carrying {sub, email, iss, iat, exp}.
type jwtTokenIssuer struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	issuer string

	// duration controls how long a newly issued token remains valid.
	duration time.Duration
}

func NewTokenIssuer(cfg config.App) TokenIssuer {
	return &jwtTokenIssuer{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
	}
}

// Issue signs a token whose subject is user.UserID.
func (j *jwtTokenIssuer) Issue(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(j.issuer, user.UserID, user.Email, j.duration, j.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Parse verifies signature, issuer and expiry. Any failure is normalised to
// [ErrTokenIsExpiredOrInvalid].
func (j *jwtTokenIssuer) Parse(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, j.signKey, j.issuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
