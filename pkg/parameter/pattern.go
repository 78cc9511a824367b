package parameter

import (
	"fmt"
	"regexp"
	"strings"
)

// Field binds a name to a Parameter template.
type Field struct {
	Name  string
	Param Parameter
}

// Pattern is an ordered list of fields joined by a delimiter.
// The delimiter is a regex fragment placed between consecutive present fields.
type Pattern struct {
	delimiter string
	// capture groups declared inside the delimiter
	delimGroups int
	fields      []Field
}

// NewPattern validates and creates a Pattern.
func NewPattern(delimiter string, fields ...Field) (*Pattern, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: pattern has no fields", ErrInvalidParameter)
	}
	delim, err := regexp.Compile(delimiter)
	if err != nil {
		return nil, fmt.Errorf("%w: delimiter %q: %v", ErrInvalidParameter, delimiter, err)
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("%w: blank field name", ErrInvalidParameter)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidParameter, f.Name)
		}
		if f.Param.regex == "" {
			return nil, fmt.Errorf("%w: field %q has no regex", ErrInvalidParameter, f.Name)
		}
		seen[f.Name] = true
	}

	return &Pattern{
		delimiter:   delimiter,
		delimGroups: delim.NumSubexp(),
		fields:      append([]Field(nil), fields...),
	}, nil
}

// Delimiter returns the delimiter fragment.
func (p *Pattern) Delimiter() string {
	return p.delimiter
}

// Names returns the field names in declaration order.
func (p *Pattern) Names() []string {
	names := make([]string, len(p.fields))
	for i, f := range p.fields {
		names[i] = f.Name
	}
	return names
}

// Field returns the template registered under name.
func (p *Pattern) Field(name string) (Parameter, bool) {
	for _, f := range p.fields {
		if f.Name == name {
			return f.Param, true
		}
	}
	return Parameter{}, false
}

// optionals returns the indexes of the optional fields in declaration order.
func (p *Pattern) optionals() []int {
	var idx []int
	for i, f := range p.fields {
		if f.Param.Optional() {
			idx = append(idx, i)
		}
	}
	return idx
}

// attempt is one presence assignment with its composed regex.
type attempt struct {
	params []Parameter
	re     *regexp.Regexp
	// value group per field, -1 when absent
	groups []int
	// wrapper group per field, used when the value group did not participate
	outer []int
}

// compose clones the templates, applies the presence flags and builds the
// anchored regex. Each present field is wrapped in its own capture group; a
// field with inner groups yields its first inner group, otherwise the wrapper.
// Delimiters are wrapped in a non-capturing group.
func (p *Pattern) compose(present []bool) (*attempt, error) {
	a := &attempt{
		params: make([]Parameter, len(p.fields)),
		groups: make([]int, len(p.fields)),
		outer:  make([]int, len(p.fields)),
	}

	var sb strings.Builder
	sb.WriteString("^(?:")
	next := 1
	first := true
	for i, f := range p.fields {
		a.params[i] = f.Param.reset(present[i])
		a.groups[i] = -1
		a.outer[i] = -1
		if !present[i] {
			continue
		}
		if !first {
			sb.WriteString("(?:")
			sb.WriteString(p.delimiter)
			sb.WriteString(")")
			next += p.delimGroups
		}
		first = false

		sb.WriteString("(")
		sb.WriteString(f.Param.regex)
		sb.WriteString(")")

		a.outer[i] = next
		if f.Param.groups > 0 {
			a.groups[i] = next + 1
		} else {
			a.groups[i] = next
		}
		next += 1 + f.Param.groups
	}
	sb.WriteString(")$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	a.re = re
	return a, nil
}

// extract runs the attempt against text and fills the present values.
func (a *attempt) extract(text string) bool {
	loc := a.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return false
	}
	for i, g := range a.groups {
		if g < 0 {
			continue
		}
		if loc[2*g] < 0 {
			g = a.outer[i]
		}
		a.params[i] = a.params[i].withValue(text[loc[2*g]:loc[2*g+1]])
	}
	return true
}
