package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Storage error taxonomy. Repositories translate raw driver errors into
// these so callers can branch with errors.Is instead of matching strings.
var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateUser       = errors.New("username already taken")
	ErrDuplicateName       = errors.New("name already exists for this owner")
	ErrProfileNotFound     = errors.New("no profile for user")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)

// translateError maps sqlite driver failures onto the package taxonomy.
// The pure-Go driver reports constraint failures only through the error
// text, so the matching here is on the stable SQLite message prefixes.
// Constraint violations stay distinguishable through the wrapped detail.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	message := err.Error()
	switch {
	case strings.Contains(message, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: duplicate value: %v", ErrConstraintViolation, err)
	case strings.Contains(message, "CHECK constraint failed"):
		return fmt.Errorf("%w: invalid enum value: %v", ErrConstraintViolation, err)
	case strings.Contains(message, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: missing parent row: %v", ErrConstraintViolation, err)
	case strings.Contains(message, "database is locked"),
		strings.Contains(message, "unable to open database"),
		strings.Contains(message, "disk I/O error"):
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return err
}
