//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// Package crypto holds the one-way password hashing used by registration and
// login. Callers treat the produced value as opaque: only this package knows
// how to derive and compare it.
package crypto

// PasswordHasher derives and verifies salted one-way password hashes.
// Implementations must never make the plaintext recoverable from the
// encoded value.
type PasswordHasher interface {
	// Hash derives a salted hash of password and returns it in the
	// package's encoded string form, ready for persistence.
	Hash(password string) (string, error)

	// Verify reports whether password matches the previously encoded hash.
	// A malformed encoded value yields an error, not a mismatch.
	Verify(encodedHash, password string) (bool, error)
}
