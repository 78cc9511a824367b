package domain

import (
	"sort"

	"github.com/hu-zza/Clim/pkg/parameter"
)

// ProcessedInput is the resolved form of one input line.
// It is immutable; accessors return copies.
type ProcessedInput struct {
	raw      string
	command  string
	position Position
	ordinal  int
	params   map[string]parameter.Parameter
}

// NewProcessedInput creates a ProcessedInput. Pass ordinal -1 outside index modes.
func NewProcessedInput(raw, command string, pos Position, ordinal int, params map[string]parameter.Parameter) ProcessedInput {
	copied := make(map[string]parameter.Parameter, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return ProcessedInput{
		raw:      raw,
		command:  command,
		position: pos,
		ordinal:  ordinal,
		params:   copied,
	}
}

// Raw returns the input line as typed.
func (in ProcessedInput) Raw() string { return in.raw }

// Command returns the token that selected the position.
func (in ProcessedInput) Command() string { return in.command }

// Position returns the selected position.
func (in ProcessedInput) Position() Position { return in.position }

// Ordinal returns the selected index in index modes.
func (in ProcessedInput) Ordinal() (int, bool) {
	return in.ordinal, in.ordinal >= 0
}

// Param returns the named parameter.
func (in ProcessedInput) Param(name string) (parameter.Parameter, bool) {
	p, ok := in.params[name]
	return p, ok
}

// Value returns the value-or-default of the named parameter, or "" if unknown.
func (in ProcessedInput) Value(name string) string {
	return in.params[name].ValueOrDefault()
}

// Has reports whether the named parameter was captured from the input.
func (in ProcessedInput) Has(name string) bool {
	_, ok := in.params[name].Value()
	return ok
}

// Names returns the parameter names, sorted.
func (in ProcessedInput) Names() []string {
	names := make([]string, 0, len(in.params))
	for k := range in.params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Values returns value-or-default for every parameter.
func (in ProcessedInput) Values() map[string]string {
	out := make(map[string]string, len(in.params))
	for k, v := range in.params {
		out[k] = v.ValueOrDefault()
	}
	return out
}
