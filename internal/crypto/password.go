package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned by [passwordHasher.Verify] when the stored
// value does not decode as salt$hash.
var ErrMalformedHash = errors.New("malformed password hash")

// passwordHasher is the private implementation of [PasswordHasher] built on
// Argon2id with a per-record CSPRNG salt.
type passwordHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// Hash implements [PasswordHasher]. It reads a fresh 16-byte salt from the
// OS CSPRNG, derives the Argon2id key of the password, and encodes both as
// base64url joined with '$'. Returns an error if the random read fails.
func (p *passwordHasher) Hash(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, p.argonTime, p.argonMemory, p.argonThreads, p.argonKeyLen)

	encoded := base64.RawURLEncoding.EncodeToString(salt) + "$" + base64.RawURLEncoding.EncodeToString(key)
	return encoded, nil
}

// Verify implements [PasswordHasher]. It decodes the stored salt, re-derives
// the Argon2id key of the candidate password with the same parameters, and
// compares the two keys in constant time.
func (p *passwordHasher) Verify(encodedHash, password string) (bool, error) {
	saltPart, keyPart, found := strings.Cut(encodedHash, "$")
	if !found {
		return false, ErrMalformedHash
	}

	salt, err := base64.RawURLEncoding.DecodeString(saltPart)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	storedKey, err := base64.RawURLEncoding.DecodeString(keyPart)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	candidateKey := argon2.IDKey([]byte(password), salt, p.argonTime, p.argonMemory, p.argonThreads, p.argonKeyLen)

	return subtle.ConstantTimeCompare(storedKey, candidateKey) == 1, nil
}
