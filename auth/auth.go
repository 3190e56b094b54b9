// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var (
	ErrInvalidPassword   = errors.New("invalid admin password")
	ErrInvalidAdminToken = errors.New("invalid admin token")
)

// HashPassword returns the lowercase SHA-256 hex digest of the password.
// The configured reference digest uses the same format.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword hashes the submitted password and compares it in constant
// time against the configured reference digest.
func VerifyPassword(password, referenceDigest string) error {
	digest := HashPassword(password)
	if !hmac.Equal([]byte(digest), []byte(referenceDigest)) {
		return ErrInvalidPassword
	}
	return nil
}

// ValidateAdminToken checks that the token presented in a request header
// exactly equals the configured shared secret. An empty header never
// matches.
func ValidateAdminToken(provided, secret string) error {
	if provided == "" || !hmac.Equal([]byte(provided), []byte(secret)) {
		return ErrInvalidAdminToken
	}
	return nil
}
