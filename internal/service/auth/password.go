package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// PasswordHasher defines the interface for hashing and verifying passwords.
type PasswordHasher interface {
	// Hash derives a one-way hash of the password with a fresh random salt
	// and returns it as a self-describing string.
	Hash(password string) (string, error)

	// Verify reports whether the password matches the stored hash string.
	// A mismatch is not an error; it returns (false, nil).
	// Returns ErrMalformedHash if the stored string cannot be parsed.
	Verify(encodedHash, password string) (bool, error)
}

// Argon2Hasher implements PasswordHasher using Argon2id. The produced hash
// string carries the algorithm, version, parameters, salt and digest in the
// standard PHC format, so parameter upgrades require no schema change:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<digest>
type Argon2Hasher struct {
	memory  uint32
	time    uint32
	threads uint8
	saltLen uint32
	keyLen  uint32
}

// NewArgon2Hasher creates an Argon2Hasher with the argon2 package's
// recommended defaults (64 MiB memory, 1 pass, 4 lanes, 32-byte key).
func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{
		memory:  64 * 1024,
		time:    1,
		threads: 4,
		saltLen: 16,
		keyLen:  32,
	}
}

// Ensure Argon2Hasher implements PasswordHasher
var _ PasswordHasher = (*Argon2Hasher)(nil)

// Hash implements PasswordHasher.Hash.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashFailure, err)
	}

	digest := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, h.keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory,
		h.time,
		h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)
	return encoded, nil
}

// Verify implements PasswordHasher.Verify. The comparison is constant time.
// Parameters are taken from the stored string, not the hasher, so hashes
// produced with older parameters keep verifying.
func (h *Argon2Hasher) Verify(encodedHash, password string) (bool, error) {
	memory, time, threads, salt, digest, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(digest)))

	return subtle.ConstantTimeCompare(digest, candidate) == 1, nil
}

// decodeHash parses a PHC-format argon2id hash string into its parameters,
// salt and digest.
func decodeHash(encodedHash string) (memory, time uint32, threads uint8, salt, digest []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: expected 6 segments, got %d", ErrMalformedHash, len(parts))
	}

	if parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: algorithm %q", ErrIncompatibleHash, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: version %d", ErrIncompatibleHash, version)
	}

	var p uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &p); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: bad salt: %v", ErrMalformedHash, err)
	}

	digest, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: bad digest: %v", ErrMalformedHash, err)
	}

	return memory, time, p, salt, digest, nil
}
