package domain

// StateDiff represents the changes between two states.
// It is designed to be serialized to JSON for partial updates on the client.
type StateDiff struct {
	// Current is set when the current position changed.
	Current *Position `json:"current,omitempty"`

	// Pushed contains history entries appended since the old state.
	Pushed []Position `json:"pushed,omitempty"`

	// Popped counts history entries removed since the old state.
	Popped int `json:"popped,omitempty"`
}

// Diff calculates the difference between oldState and newState.
// If oldState is nil, it returns a diff representing the entire newState (initial load).
// It returns nil when nothing changed.
func Diff(oldState, newState *State) *StateDiff {
	if newState == nil {
		return nil
	}

	diff := &StateDiff{}
	if oldState == nil {
		cur := newState.Current
		diff.Current = &cur
		diff.Pushed = append([]Position(nil), newState.History...)
		return diff
	}

	if oldState.Current != newState.Current {
		cur := newState.Current
		diff.Current = &cur
	}

	// Longest common prefix of the two history stacks.
	common := 0
	for common < len(oldState.History) && common < len(newState.History) &&
		oldState.History[common] == newState.History[common] {
		common++
	}
	diff.Popped = len(oldState.History) - common
	if len(newState.History) > common {
		diff.Pushed = append([]Position(nil), newState.History[common:]...)
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *StateDiff) IsEmpty() bool {
	return d.Current == nil && len(d.Pushed) == 0 && d.Popped == 0
}
