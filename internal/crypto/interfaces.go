// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way salted hashes and
// verifies candidates against them. Plaintext never leaves the call.
type PasswordHasher interface {
	// Hash returns a salted adaptive hash of password. Two calls with the
	// same input return different hashes.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A mismatch is not an
	// error; a malformed hash is.
	//
	// An empty hash is compared against an internal dummy hash so callers
	// can spend the same time on unknown accounts as on known ones.
	Compare(hash, password string) (bool, error)
}
