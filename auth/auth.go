// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
)

var ErrInvalidTransportKey = errors.New("invalid transport key")

// ValidateTransportKey checks the shared key presented by the chat
// transport against the configured one. Both sides are hashed before
// comparison so the check is constant-time and length-independent.
func ValidateTransportKey(provided, expected string) error {
	providedSum := sha256.Sum256([]byte(provided))
	expectedSum := sha256.Sum256([]byte(expected))
	if !hmac.Equal(providedSum[:], expectedSum[:]) {
		return ErrInvalidTransportKey
	}
	return nil
}
