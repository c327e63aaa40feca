package repository

import "errors"

// Common repository errors
var (
	// ErrBoardNotFound is returned when a board is not found
	ErrBoardNotFound = errors.New("board not found")

	// ErrCardNotFound is returned when a card is not found
	ErrCardNotFound = errors.New("card not found")

	// ErrConstraintViolation is returned when a write breaks a foreign key
	ErrConstraintViolation = errors.New("constraint violation")
)
