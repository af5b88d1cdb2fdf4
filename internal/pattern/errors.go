package pattern

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFragment indicates a segment between delimiters is empty,
	// e.g. "a//b" or a leading or trailing "/" on non-empty input.
	ErrEmptyFragment = errors.New("empty fragment")

	// ErrInvalidWildcard indicates a segment contains "*" but is not exactly
	// "*" or "**", e.g. "a*b" or "***".
	ErrInvalidWildcard = errors.New("invalid wildcard usage")
)

// ParseError describes why a pattern text could not be parsed.
type ParseError struct {
	// Input is the full text passed to Parse
	Input string

	// Index is the zero-based position of the offending segment
	Index int

	// Segment is the offending segment text
	Segment string

	// Err is ErrEmptyFragment or ErrInvalidWildcard
	Err error
}

func (e *ParseError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("parse %q: segment %d: %v", e.Input, e.Index, e.Err)
	}
	return fmt.Sprintf("parse %q: segment %d (%q): %v", e.Input, e.Index, e.Segment, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Kind returns a short name for the error kind, suitable for reports.
func (e *ParseError) Kind() string {
	switch {
	case errors.Is(e.Err, ErrEmptyFragment):
		return "EmptyFragment"
	case errors.Is(e.Err, ErrInvalidWildcard):
		return "InvalidWildcardUsage"
	default:
		return "Unknown"
	}
}
