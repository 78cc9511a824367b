package domain

// Decider picks the forwarding index of a Leaf.
// The returned index must be in [0, len(forward)).
type Decider interface {
	Decide(in ProcessedInput) (int, error)
}

// DecideFunc adapts a plain function to Decider.
type DecideFunc func(in ProcessedInput) (int, error)

// Decide calls f(in).
func (f DecideFunc) Decide(in ProcessedInput) (int, error) {
	return f(in)
}

// Always returns a Decider that always picks index.
func Always(index int) Decider {
	return DecideFunc(func(ProcessedInput) (int, error) {
		return index, nil
	})
}

// LeafBinding attaches a Decider and a forwarding table to a leaf name.
// Forward lists Node names; the Decider indexes into it.
type LeafBinding struct {
	Name    string
	Decider Decider
	Forward []string
}

// Bind is shorthand for a LeafBinding literal.
func Bind(name string, d Decider, forward ...string) LeafBinding {
	return LeafBinding{Name: name, Decider: d, Forward: forward}
}
