package file

import (
	"errors"
	"fmt"

	"github.com/hu-zza/Clim/pkg/dsl"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyDocument    = errors.New("menu file is empty")
	ErrNoStructure      = errors.New("menu file has no structure")
	ErrUnsupportedValue = errors.New("unsupported yaml value")
)

// Document is the decoded form of a menu file.
type Document struct {
	Initial      string              `mapstructure:"initial"`
	Control      string              `mapstructure:"control"`
	Header       string              `mapstructure:"header"`
	Back         string              `mapstructure:"back"`
	CommandRegex string              `mapstructure:"command_regex"`
	Leaves       map[string]LeafSpec `mapstructure:"leaves"`

	// Structure is read separately to keep the order of keys.
	Structure dsl.Object `mapstructure:"-"`
}

// LeafSpec describes one Leaf.
type LeafSpec struct {
	Forward    []string        `mapstructure:"forward"`
	Decide     *DecideSpec     `mapstructure:"decide"`
	Parameters *ParametersSpec `mapstructure:"parameters"`
}

// DecideSpec selects a declarative Decider.
type DecideSpec struct {
	Kind    string         `mapstructure:"kind"`
	Index   int            `mapstructure:"index"`
	Param   string         `mapstructure:"param"`
	Values  map[string]int `mapstructure:"values"`
	Default *int           `mapstructure:"default"`
}

// ParametersSpec describes the parameter pattern of a Leaf.
type ParametersSpec struct {
	Delimiter string      `mapstructure:"delimiter"`
	Fields    []FieldSpec `mapstructure:"fields"`
}

// FieldSpec describes one parameter.
type FieldSpec struct {
	Name      string  `mapstructure:"name"`
	Regex     string  `mapstructure:"regex"`
	Default   *string `mapstructure:"default"`
	Transform string  `mapstructure:"transform"`
}

// Decode parses YAML (or JSON) into a Document.
func Decode(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse menu file: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping, got %s", ErrUnsupportedValue, kindName(top))
	}

	doc := &Document{}
	rest := make(map[string]any, len(top.Content)/2)
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i].Value, top.Content[i+1]
		if key != "structure" {
			v, err := toAny(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			rest[key] = v
			continue
		}
		obj, err := toObject(value)
		if err != nil {
			return nil, fmt.Errorf("structure: %w", err)
		}
		doc.Structure = obj
	}
	if doc.Structure == nil {
		return nil, ErrNoStructure
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           doc,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(rest); err != nil {
		return nil, fmt.Errorf("failed to decode menu file: %w", err)
	}
	return doc, nil
}

// toObject converts a mapping node into an ordered dsl.Object.
func toObject(node *yaml.Node) (dsl.Object, error) {
	node = resolve(node)
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping, got %s", ErrUnsupportedValue, kindName(node))
	}
	obj := make(dsl.Object, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		v, err := toDescription(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", node.Content[i].Value, err)
		}
		obj = append(obj, dsl.M(node.Content[i].Value, v))
	}
	return obj, nil
}

// toDescription converts structure values, keeping mappings ordered.
func toDescription(node *yaml.Node) (any, error) {
	node = resolve(node)
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		return node.Value, nil
	case yaml.MappingNode:
		return toObject(node)
	case yaml.SequenceNode:
		items := make([]any, len(node.Content))
		for i, child := range node.Content {
			v, err := toDescription(child)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			items[i] = v
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, kindName(node))
	}
}

// toAny converts a node into plain maps, slices and strings for mapstructure.
func toAny(node *yaml.Node) (any, error) {
	node = resolve(node)
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		return node.Value, nil
	case yaml.MappingNode:
		m := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := toAny(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[node.Content[i].Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		items := make([]any, len(node.Content))
		for i, child := range node.Content {
			v, err := toAny(child)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, kindName(node))
	}
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
