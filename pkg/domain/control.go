package domain

import (
	"fmt"
	"strings"
)

// ControlType is the input style of a menu. It is fixed for a menu's lifetime.
type ControlType string

const (
	// ControlNominal selects an option by its exact name.
	ControlNominal ControlType = "nominal"
	// ControlOrdinal selects an option by its 0-based index.
	ControlOrdinal ControlType = "ordinal"
	// ControlOrdinalTrailingZero is ControlOrdinal displayed as 1..n-1 followed by 0.
	ControlOrdinalTrailingZero ControlType = "ordinal_trailing_zero"
	// ControlParametric reads a command word followed by parameters.
	ControlParametric ControlType = "parametric"
)

// ParseControlType parses s case-insensitively. Hyphens are accepted in place of underscores.
func ParseControlType(s string) (ControlType, error) {
	c := ControlType(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown control type %q", ErrInvalidMenu, s)
	}
	return c, nil
}

// Valid reports whether c is one of the known control types.
func (c ControlType) Valid() bool {
	switch c {
	case ControlNominal, ControlOrdinal, ControlOrdinalTrailingZero, ControlParametric:
		return true
	}
	return false
}

// Ordinal reports whether options are selected by index.
func (c ControlType) Ordinal() bool {
	return c == ControlOrdinal || c == ControlOrdinalTrailingZero
}
