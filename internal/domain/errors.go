package domain

import "errors"

// Domain errors.
var (
	ErrWrongArgumentCount = errors.New("wrong number of arguments")
	ErrInvalidDegrees     = errors.New("invalid degree value")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrInvalidChoice      = errors.New("invalid choice")
	ErrInputRead          = errors.New("failed to read input")
	ErrInterrupted        = errors.New("interrupted")
	ErrConflictingFlags   = errors.New("conflicting flags")
	ErrUnknownFormat      = errors.New("unknown output format")
)
