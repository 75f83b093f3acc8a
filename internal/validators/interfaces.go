// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request DTOs before they reach the services.
//
// Rules are declared as `validate` struct tags on the types in package
// models and evaluated with go-playground/validator. Violations are
// reported as a [*ValidationError] listing one human-readable message per
// offending field, keyed by the field's JSON name.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates obj. When fields are given only those fields
	// (by Go struct field name) are checked.
	Validate(ctx context.Context, obj any, fields ...string) error
}
