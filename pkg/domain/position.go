package domain

import "fmt"

// PositionKind tells Nodes and Leaves apart.
type PositionKind uint8

const (
	KindNode PositionKind = iota + 1 // Navigable, can be current
	KindLeaf                         // Action, never current
)

func (k PositionKind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k PositionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PositionKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "node":
		*k = KindNode
	case "leaf":
		*k = KindLeaf
	default:
		return fmt.Errorf("unknown position kind %q", text)
	}
	return nil
}

// PositionID indexes the structure arena. IDs are dense and start at 0.
type PositionID int

// Position is an interned menu position.
type Position struct {
	ID   PositionID   `json:"id"`
	Name string       `json:"name"`
	Kind PositionKind `json:"kind"`
}

// IsNode reports whether p is a navigable position.
func (p Position) IsNode() bool { return p.Kind == KindNode }

// IsLeaf reports whether p is an action position.
func (p Position) IsLeaf() bool { return p.Kind == KindLeaf }

// IsZero reports whether p was never interned.
func (p Position) IsZero() bool { return p.Kind == 0 && p.Name == "" }

func (p Position) String() string { return p.Name }

// Names returns the names of positions, preserving order.
func Names(positions []Position) []string {
	names := make([]string, len(positions))
	for i, p := range positions {
		names[i] = p.Name
	}
	return names
}
