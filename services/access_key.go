package services

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Constants for Argon2 parameters
const (
	memory      = 64 * 1024
	iterations  = 3
	parallelism = 2
	keyLength   = 32
)

// HashAccessKey derives an argon2id hash for the operator access key. The
// result is stored in ACCESS_KEY_HASH, never the key itself.
func HashAccessKey(key string) (string, error) {
	if len(key) < 8 {
		return "", errors.New("access key must be at least 8 characters")
	}

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.New("failed to generate salt")
	}

	hash := argon2.IDKey([]byte(key), salt, iterations, memory, parallelism, keyLength)

	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHash := base64.RawStdEncoding.EncodeToString(hash)

	return encodedSalt + "$" + encodedHash, nil
}

// VerifyAccessKey checks a provided key against the stored salt$hash pair.
func VerifyAccessKey(storedHash, providedKey string) (bool, error) {
	parts := strings.Split(storedHash, "$")
	if len(parts) != 2 {
		return false, errors.New("invalid stored hash format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false, err
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(providedKey), salt, iterations, memory, parallelism, keyLength)
	return bytes.Equal(computed, expected), nil
}

// CompareAccessKeys reports whether a key matches the stored hash, treating
// malformed hashes as a mismatch.
func CompareAccessKeys(storedHash, providedKey string) bool {
	match, err := VerifyAccessKey(storedHash, providedKey)
	if err != nil {
		return false
	}
	return match
}
