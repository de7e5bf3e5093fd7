package tokenmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for token map construction and lookup.
var (
	// ErrNotMapped indicates a lookup of a source variable that has no entry.
	ErrNotMapped = errors.New("tokenmap: variable not mapped")

	// ErrDuplicateVariable indicates a source variable defined more than once.
	ErrDuplicateVariable = errors.New("tokenmap: duplicate source variable")

	// ErrInvalidSource indicates a source name outside the source namespace.
	ErrInvalidSource = errors.New("tokenmap: invalid source variable name")

	// ErrInvalidTarget indicates a target token that breaks the naming convention.
	ErrInvalidTarget = errors.New("tokenmap: invalid target token name")

	// ErrNoPlugins indicates a table defined without any plugin.
	ErrNoPlugins = errors.New("tokenmap: plugin list is empty")

	// ErrInvalidData indicates a malformed token map data file.
	ErrInvalidData = errors.New("tokenmap: invalid data file")
)

// UnmappedError reports the name of a variable missing from the table.
type UnmappedError struct {
	Name string
}

// Error implements the error interface.
func (e *UnmappedError) Error() string {
	return fmt.Sprintf("tokenmap: variable %q not mapped", e.Name)
}

// Unwrap returns ErrNotMapped so callers can match with errors.Is.
func (e *UnmappedError) Unwrap() error {
	return ErrNotMapped
}
