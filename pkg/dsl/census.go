package dsl

import (
	"fmt"
	"sort"
	"strings"
)

// census walks a raw description and records node names, link order and
// every referenced name.
type census struct {
	nodes   []string
	isNode  map[string]bool
	links   map[string][]string
	linked  map[string]map[string]bool
	names   []string
	isNamed map[string]bool

	problems []error
}

func newCensus() *census {
	return &census{
		isNode:  make(map[string]bool),
		links:   make(map[string][]string),
		linked:  make(map[string]map[string]bool),
		isNamed: make(map[string]bool),
	}
}

// leaves returns every referenced name that is never used as a key.
func (c *census) leaves() []string {
	var out []string
	for _, n := range c.names {
		if !c.isNode[n] {
			out = append(out, n)
		}
	}
	return out
}

func (c *census) addNode(name string) {
	if !c.isNode[name] {
		c.isNode[name] = true
		c.nodes = append(c.nodes, name)
	}
}

func (c *census) reference(parent, name string) {
	if !c.isNamed[name] {
		c.isNamed[name] = true
		c.names = append(c.names, name)
	}
	if parent == "" {
		return
	}
	if c.linked[parent] == nil {
		c.linked[parent] = make(map[string]bool)
	}
	if !c.linked[parent][name] {
		c.linked[parent][name] = true
		c.links[parent] = append(c.links[parent], name)
	}
}

func (c *census) fail(path string, format string, args ...any) {
	if path == "" {
		path = "<root>"
	}
	c.problems = append(c.problems, fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...)))
}

func (c *census) name(path, raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		c.fail(path, "blank position name")
		return "", false
	}
	return name, true
}

func (c *census) member(parent, path, key string, value any) {
	name, ok := c.name(path, key)
	if !ok {
		return
	}
	c.addNode(name)
	c.reference(parent, name)
	c.walk(name, join(path, name), value)
}

// walk visits value as the children of parent ("" at the top level).
func (c *census) walk(parent, path string, value any) {
	switch v := value.(type) {
	case nil:
		// A key without children is a Node with no links.
	case Object:
		for _, m := range v {
			c.member(parent, path, m.Key, m.Value)
		}
	case map[string]any:
		for _, k := range sortedKeys(v) {
			c.member(parent, path, k, v[k])
		}
	case map[string][]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			c.member(parent, path, k, v[k])
		}
	case map[string]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			c.member(parent, path, k, v[k])
		}
	case []any:
		for i, item := range v {
			c.walk(parent, fmt.Sprintf("%s[%d]", path, i), item)
		}
	case []string:
		for i, item := range v {
			c.walk(parent, fmt.Sprintf("%s[%d]", path, i), item)
		}
	case string:
		if name, ok := c.name(path, v); ok {
			c.reference(parent, name)
		}
	default:
		c.fail(path, "illegal description element of type %T", value)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
