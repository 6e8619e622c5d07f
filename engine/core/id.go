package core

import (
	"fmt"

	"github.com/google/uuid"
)

// ID is the canonical identifier type used across the engine.
type ID string

// NewID generates a new random identifier.
func NewID() (ID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return ID(id.String()), nil
}

// MustNewID generates a new identifier and panics on failure. Intended for
// tests and initialization paths where randomness failure is unrecoverable.
func MustNewID() ID {
	id, err := NewID()
	if err != nil {
		panic(err)
	}
	return id
}

func (i ID) String() string {
	return string(i)
}

func (i ID) IsZero() bool {
	return i == ""
}
