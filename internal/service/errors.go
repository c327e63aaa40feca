package service

import (
	"errors"
	"fmt"
	"strconv"

	"inspoboard/internal/repository"
)

// Entity names used in errors.
const (
	EntityBoard = "board"
	EntityCard  = "card"
)

// Sentinels for classifying service errors with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrConstraintViolation = errors.New("constraint violation")
)

// NotFoundError reports an identifier that does not resolve to a live entity,
// including identifiers that are not valid for the entity at all.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError is a rejected payload. Field is the JSON name of the
// offending field, empty for payload-level problems.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ConstraintViolationError is a write refused by the store's referential rules.
type ConstraintViolationError struct {
	Reason string
}

func (e *ConstraintViolationError) Error() string {
	return e.Reason
}

func (e *ConstraintViolationError) Is(target error) bool { return target == ErrConstraintViolation }

func notFound(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: strconv.FormatInt(id, 10)}
}

// storeError maps repository failures for one entity onto the service taxonomy.
// Anything unrecognised is wrapped with op and left for the caller to treat as
// an infrastructure fault.
func storeError(op, entity string, id int64, err error) error {
	switch {
	case errors.Is(err, repository.ErrBoardNotFound) && entity == EntityBoard,
		errors.Is(err, repository.ErrCardNotFound) && entity == EntityCard:
		return notFound(entity, id)
	case errors.Is(err, repository.ErrConstraintViolation):
		return &ConstraintViolationError{Reason: err.Error()}
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
