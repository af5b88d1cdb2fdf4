package cli

import "errors"

var (
	// ErrConflict indicates overlapping patterns were found and the caller
	// asked for a failing exit status.
	ErrConflict = errors.New("overlapping patterns found")

	// ErrInvalidPatterns indicates one or more input patterns failed to parse.
	ErrInvalidPatterns = errors.New("invalid patterns")
)
