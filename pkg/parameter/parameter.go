package parameter

import (
	"fmt"
	"regexp"
	"strings"
)

// Transform rewrites captured text before it is stored as a value.
type Transform func(string) string

// Supplier produces the default value of an optional Parameter.
type Supplier func() string

// Parameter is one named field of a Pattern.
// It is a value type: every match attempt works on its own copy.
type Parameter struct {
	regex     string
	groups    int
	transform Transform
	supplier  Supplier

	present  bool
	value    string
	hasValue bool
}

// Option configures a Parameter.
type Option func(*Parameter)

// WithTransform sets the function applied to the captured text.
func WithTransform(fn Transform) Option {
	return func(p *Parameter) {
		p.transform = fn
	}
}

// WithDefault makes the Parameter optional with a constant default.
func WithDefault(value string) Option {
	return WithDefaultFunc(func() string { return value })
}

// WithDefaultFunc makes the Parameter optional; fn is called on every read of a missing value.
func WithDefaultFunc(fn Supplier) Option {
	return func(p *Parameter) {
		p.supplier = fn
	}
}

// New creates a Parameter matching regex.
// The regex must not be blank and must compile. It is not anchored on its own;
// anchoring happens when a Pattern composes its fields.
func New(regex string, opts ...Option) (Parameter, error) {
	if strings.TrimSpace(regex) == "" {
		return Parameter{}, fmt.Errorf("%w: blank regex", ErrInvalidParameter)
	}
	re, err := regexp.Compile(regex)
	if err != nil {
		return Parameter{}, fmt.Errorf("%w: regex %q: %v", ErrInvalidParameter, regex, err)
	}

	p := Parameter{
		regex:   regex,
		groups:  re.NumSubexp(),
		present: true,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p, nil
}

// MustNew is like New but panics on an invalid regex.
func MustNew(regex string, opts ...Option) Parameter {
	p, err := New(regex, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Regex returns the field's extraction regex.
func (p Parameter) Regex() string {
	return p.regex
}

// Optional reports whether the Parameter has a default supplier.
func (p Parameter) Optional() bool {
	return p.supplier != nil
}

// Present reports whether the field took part in the winning match.
func (p Parameter) Present() bool {
	return p.present
}

// Value returns the extracted value, if any.
func (p Parameter) Value() (string, bool) {
	return p.value, p.hasValue
}

// ValueOrDefault returns the extracted value, else the default, else "".
func (p Parameter) ValueOrDefault() string {
	if p.hasValue {
		return p.value
	}
	if p.supplier != nil {
		return p.supplier()
	}
	return ""
}

func (p Parameter) String() string {
	return p.ValueOrDefault()
}

// reset returns a clean copy marked present or absent.
func (p Parameter) reset(present bool) Parameter {
	p.present = present
	p.value = ""
	p.hasValue = false
	return p
}

func (p Parameter) withValue(raw string) Parameter {
	if p.transform != nil {
		raw = p.transform(raw)
	}
	p.value = raw
	p.hasValue = true
	return p
}
