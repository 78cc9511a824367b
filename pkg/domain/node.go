package domain

import "fmt"

// Entry is what lives at a Position of the structure.
type Entry interface {
	Position() Position
	// Links returns the outgoing links shown as options. Leaves have none.
	Links() []Position
	// Select returns the position to move to when this entry is chosen.
	Select(in ProcessedInput) (Position, error)
}

// Node is a navigable entry. Selecting it moves to itself.
type Node struct {
	position Position
	links    []Position
}

// NewNode creates a Node. Links may point to Nodes or Leaves.
func NewNode(pos Position, links []Position) (*Node, error) {
	if !pos.IsNode() {
		return nil, fmt.Errorf("%w: %q is not a node", ErrInvalidStructure, pos.Name)
	}
	return &Node{
		position: pos,
		links:    append([]Position(nil), links...),
	}, nil
}

func (n *Node) Position() Position { return n.position }

func (n *Node) Links() []Position {
	return append([]Position(nil), n.links...)
}

func (n *Node) Select(ProcessedInput) (Position, error) {
	return n.position, nil
}

// Leaf is an action entry. Selecting it runs the Decider and forwards to a Node.
type Leaf struct {
	position Position
	decider  Decider
	forward  []Position
}

// NewLeaf creates a Leaf. The forwarding table must be non-empty and hold Nodes only.
func NewLeaf(pos Position, d Decider, forward []Position) (*Leaf, error) {
	if !pos.IsLeaf() {
		return nil, fmt.Errorf("%w: %q is not a leaf", ErrInvalidStructure, pos.Name)
	}
	if d == nil {
		return nil, fmt.Errorf("%w: leaf %q has no decider", ErrInvalidStructure, pos.Name)
	}
	if len(forward) == 0 {
		return nil, fmt.Errorf("%w: leaf %q has an empty forwarding table", ErrInvalidStructure, pos.Name)
	}
	for _, f := range forward {
		if !f.IsNode() {
			return nil, fmt.Errorf("%w: leaf %q forwards to non-node %q", ErrInvalidStructure, pos.Name, f.Name)
		}
	}
	return &Leaf{
		position: pos,
		decider:  d,
		forward:  append([]Position(nil), forward...),
	}, nil
}

func (l *Leaf) Position() Position { return l.position }

func (l *Leaf) Links() []Position { return nil }

// Forward returns the forwarding table.
func (l *Leaf) Forward() []Position {
	return append([]Position(nil), l.forward...)
}

// Select runs the Decider and returns the chosen Node.
func (l *Leaf) Select(in ProcessedInput) (Position, error) {
	_, pos, err := l.Resolve(in)
	return pos, err
}

// Resolve runs the Decider and returns both the index and the Node it picks.
// Errors, panics and out-of-range indexes all surface as *DecisionError.
func (l *Leaf) Resolve(in ProcessedInput) (idx int, pos Position, err error) {
	defer func() {
		if r := recover(); r != nil {
			idx, pos = -1, Position{}
			err = &DecisionError{Leaf: l.position.Name, Index: -1, Len: len(l.forward), Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	idx, err = l.decider.Decide(in)
	if err != nil {
		return idx, Position{}, &DecisionError{Leaf: l.position.Name, Index: idx, Len: len(l.forward), Err: err}
	}
	if 0 <= idx && idx < len(l.forward) {
		return idx, l.forward[idx], nil
	}
	return idx, Position{}, &DecisionError{Leaf: l.position.Name, Index: idx, Len: len(l.forward)}
}
