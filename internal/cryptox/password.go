// Package cryptox implements password storage for greeter: per-user random
// salts and a memory-hard key derivation (scrypt) with constant-time
// verification.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/dmitrijs2005/greeter/internal/common"
	"golang.org/x/crypto/scrypt"
)

// Key derivation parameters. They must not change once users are stored,
// otherwise existing hashes stop verifying.
const (
	SaltSize  = 16
	KeyLength = 64

	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// deriveKey runs scrypt over password using the hex text of the salt as the
// salt bytes, which keeps hashes portable between implementations that store
// the salt as text.
func deriveKey(password, salt string) ([]byte, error) {
	return scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, KeyLength)
}

// HashPassword generates a fresh random salt and derives the password hash.
// Both values are returned hex-encoded, ready to be persisted.
func HashPassword(password string) (salt string, hash string, err error) {
	salt, err = common.MakeRandHexString(SaltSize)
	if err != nil {
		return "", "", fmt.Errorf("salt generation: %w", err)
	}

	key, err := deriveKey(password, salt)
	if err != nil {
		return "", "", fmt.Errorf("key derivation: %w", err)
	}

	return salt, hex.EncodeToString(key), nil
}

// VerifyPassword re-derives the key for password with the stored salt and
// compares it with expectedHash in constant time. A stored hash that is not
// valid hex never matches.
func VerifyPassword(password, salt, expectedHash string) (bool, error) {
	expected, err := hex.DecodeString(expectedHash)
	if err != nil {
		return false, nil
	}

	key, err := deriveKey(password, salt)
	if err != nil {
		return false, fmt.Errorf("key derivation: %w", err)
	}
	defer common.WipeByteArray(key)

	return subtle.ConstantTimeCompare(expected, key) == 1, nil
}
