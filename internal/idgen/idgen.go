// Package idgen provides entity ID and gate access code generation.
package idgen

import (
	"fmt"

	"github.com/google/uuid"
	nanoid "github.com/matoous/go-nanoid/v2"
)

// AccessCodeAlphabet is the character set for gate access codes. Uppercase
// alphanumerics keep codes easy to read aloud at a venue.
const AccessCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AccessCodeLength is the number of characters in a generated access code.
const AccessCodeLength = 6

// NewID returns a fresh UUID string for entity IDs.
func NewID() string {
	return uuid.NewString()
}

// AccessCodes generates short unguessable gate access codes.
type AccessCodes struct{}

// Generate returns a new random access code, e.g. "A3X9K2".
func (AccessCodes) Generate() (string, error) {
	code, err := nanoid.Generate(AccessCodeAlphabet, AccessCodeLength)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return code, nil
}
