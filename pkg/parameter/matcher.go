package parameter

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// DefaultCommandRegex captures the first word of the input.
const DefaultCommandRegex = `^\s*(\w+)`

// Matcher resolves the command token of an input line and extracts the
// fields of the leaf it names.
type Matcher struct {
	command  *regexp.Regexp
	patterns map[string]*Pattern
	err      error
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithCommandRegex overrides DefaultCommandRegex.
// The regex must declare at least one capture group; group 1 is the command.
func WithCommandRegex(expr string) MatcherOption {
	return func(m *Matcher) {
		re, err := regexp.Compile(expr)
		if err != nil {
			m.err = fmt.Errorf("%w: command regex %q: %v", ErrInvalidParameter, expr, err)
			return
		}
		if re.NumSubexp() < 1 {
			m.err = fmt.Errorf("%w: command regex %q has no capture group", ErrInvalidParameter, expr)
			return
		}
		m.command = re
	}
}

// WithPattern registers the Pattern used for leaf.
func WithPattern(leaf string, p *Pattern) MatcherOption {
	return func(m *Matcher) {
		if p == nil {
			m.err = fmt.Errorf("%w: nil pattern for %q", ErrInvalidParameter, leaf)
			return
		}
		m.patterns[leaf] = p
	}
}

// NewMatcher creates a Matcher.
func NewMatcher(opts ...MatcherOption) (*Matcher, error) {
	m := &Matcher{
		command:  regexp.MustCompile(DefaultCommandRegex),
		patterns: make(map[string]*Pattern),
	}
	for _, opt := range opts {
		opt(m)
		if m.err != nil {
			return nil, m.err
		}
	}
	return m, nil
}

// CommandRegex returns the compiled command regex.
func (m *Matcher) CommandRegex() *regexp.Regexp {
	return m.command
}

// Command extracts the command token and the text following the command match.
// The remainder is trimmed of surrounding whitespace.
func (m *Matcher) Command(input string) (command, remainder string, ok bool) {
	loc := m.command.FindStringSubmatchIndex(input)
	if loc == nil || loc[2] < 0 {
		return "", "", false
	}
	return input[loc[2]:loc[3]], strings.TrimSpace(input[loc[1]:]), true
}

// HasPattern reports whether a Pattern is registered for leaf.
func (m *Matcher) HasPattern(leaf string) bool {
	_, ok := m.patterns[leaf]
	return ok
}

// Leaves returns the leaf names with a registered Pattern, sorted.
func (m *Matcher) Leaves() []string {
	names := make([]string, 0, len(m.patterns))
	for name := range m.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Absent returns every field of leaf's Pattern as an absent template, so
// defaults apply. It reports false when the Pattern has a mandatory field or
// leaf has no Pattern.
func (m *Matcher) Absent(leaf string) (map[string]Parameter, bool) {
	p, ok := m.patterns[leaf]
	if !ok || len(p.optionals()) != len(p.fields) {
		return nil, false
	}
	result := make(map[string]Parameter, len(p.fields))
	for _, f := range p.fields {
		result[f.Name] = f.Param.reset(false)
	}
	return result, true
}

// MatchAndExtract matches text against the Pattern of leaf.
//
// With k optional fields, subsets of present optionals are tried from size k
// down to 0, each size in lexicographic order; mandatory fields are always
// present. The first subset whose composed regex fully matches wins.
// Every field of the Pattern is returned; absent optionals carry no value.
func (m *Matcher) MatchAndExtract(leaf, text string) (map[string]Parameter, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	p, ok := m.patterns[leaf]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPattern, leaf)
	}

	optionals := p.optionals()
	for count := len(optionals); count >= 0; count-- {
		var (
			found    *attempt
			buildErr error
		)
		combinations(len(optionals), count, func(subset []int) bool {
			present := make([]bool, len(p.fields))
			for i, f := range p.fields {
				present[i] = !f.Param.Optional()
			}
			for _, s := range subset {
				present[optionals[s]] = true
			}

			a, err := p.compose(present)
			if err != nil {
				buildErr = err
				return false
			}
			if a.extract(text) {
				found = a
				return false
			}
			return true
		})
		if buildErr != nil {
			return nil, buildErr
		}
		if found != nil {
			result := make(map[string]Parameter, len(p.fields))
			for i, f := range p.fields {
				result[f.Name] = found.params[i]
			}
			return result, nil
		}
	}
	return nil, ErrNoMatch
}

// combinations calls fn with every r-sized subset of [0, n) in lexicographic
// order until fn returns false. r == 0 yields one empty subset.
func combinations(n, r int, fn func([]int) bool) {
	if r < 0 || r > n {
		return
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		subset := make([]int, r)
		copy(subset, idx)
		if !fn(subset) {
			return
		}
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
