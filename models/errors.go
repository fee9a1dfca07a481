package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotFound is the root of every "referenced entity does not exist" error.
var ErrNotFound = errors.New("not found")

var (
	// ErrGameNotFound is returned when a game is not found.
	ErrGameNotFound = fmt.Errorf("game %w", ErrNotFound)
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = fmt.Errorf("order %w", ErrNotFound)
	// ErrInvalidID is returned for identities that are not well formed.
	// It matches ErrNotFound so callers treat it as an unresolvable reference.
	ErrInvalidID = fmt.Errorf("malformed id: %w", ErrNotFound)
)

// ErrValidation marks a rejected write whose input is missing or out of range.
var ErrValidation = errors.New("validation failed")

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ParseID checks the structure of an identity passed in by a caller.
// It says nothing about whether the entity exists.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
