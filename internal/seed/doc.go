// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package seed loads the sample catalog: three movies, twelve actors and the
// twelve cast entries linking them. Existing catalog rows are removed first;
// user accounts are left untouched.
package seed
