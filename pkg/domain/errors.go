package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStructure is matched by every structural build failure.
var ErrInvalidStructure = errors.New("invalid menu structure")

// ErrInvalidMenu is returned when a menu cannot be constructed from its parts.
var ErrInvalidMenu = errors.New("invalid menu")

// ErrNoHistory is returned when going back with an empty history.
var ErrNoHistory = errors.New("no previous position")

// ErrUnknownPosition is returned for names or ids that were never interned.
var ErrUnknownPosition = errors.New("unknown position")

// UnknownCommandError is returned when the input names no current option.
type UnknownCommandError struct {
	Command     string
	Suggestions []string
}

func (e *UnknownCommandError) Error() string {
	msg := fmt.Sprintf("unknown command %q", e.Command)
	switch len(e.Suggestions) {
	case 0:
		return msg
	case 1:
		return fmt.Sprintf("%s (did you mean %q?)", msg, e.Suggestions[0])
	default:
		quoted := make([]string, len(e.Suggestions))
		for i, s := range e.Suggestions {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return fmt.Sprintf("%s (did you mean one of %s?)", msg, strings.Join(quoted, ", "))
	}
}

// OrdinalError is returned when an index-mode input is not a valid option index.
type OrdinalError struct {
	Input string
	Len   int
}

func (e *OrdinalError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("invalid ordinal %q: no options", e.Input)
	}
	return fmt.Sprintf("invalid ordinal %q: expected 0..%d", e.Input, e.Len-1)
}

// DecisionError is returned when a Leaf's Decider fails or picks no valid Node.
type DecisionError struct {
	Leaf  string
	Index int
	Len   int
	Err   error
}

func (e *DecisionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decision of %q failed: %v", e.Leaf, e.Err)
	}
	return fmt.Sprintf("decision of %q returned index %d outside 0..%d", e.Leaf, e.Index, e.Len-1)
}

func (e *DecisionError) Unwrap() error { return e.Err }

// ParameterError is returned when the text after a command does not fit the
// selected position: a Leaf's pattern did not match, or a Node got arguments.
type ParameterError struct {
	Position string
	Err      error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameters of %q: %v", e.Position, e.Err)
}

func (e *ParameterError) Unwrap() error { return e.Err }

// InputError wraps every recoverable navigation failure with the offending input.
type InputError struct {
	Input string
	Cause error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("processing %q failed: %v", e.Input, e.Cause)
}

func (e *InputError) Unwrap() error { return e.Cause }

// RejectReason classifies a navigation error for logs and metrics.
func RejectReason(err error) string {
	var (
		unknown  *UnknownCommandError
		ordinal  *OrdinalError
		decision *DecisionError
		params   *ParameterError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &unknown):
		return "unknown_command"
	case errors.As(err, &ordinal):
		return "ordinal"
	case errors.As(err, &params):
		return "parameters"
	case errors.As(err, &decision):
		return "decision"
	case errors.Is(err, ErrNoHistory):
		return "no_history"
	default:
		return "other"
	}
}
