package parameter

import "errors"

var (
	// ErrEmptyText is returned when there is nothing to match.
	ErrEmptyText = errors.New("empty parameter text")

	// ErrNoPattern is returned when no Pattern is registered for the leaf.
	ErrNoPattern = errors.New("no parameter pattern for leaf")

	// ErrNoMatch is returned when no combination of fields matches the text.
	// It carries no hint about near misses.
	ErrNoMatch = errors.New("invalid argument")

	// ErrInvalidParameter is returned for malformed Parameter or Pattern definitions.
	ErrInvalidParameter = errors.New("invalid parameter definition")
)
