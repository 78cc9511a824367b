package domain

// State is the navigation snapshot of one menu.
type State struct {
	// Current is always a Node.
	Current Position `json:"current"`

	// History holds previously current Nodes, oldest first.
	History []Position `json:"history"`
}

// NewState creates a clean state at initial.
func NewState(initial Position) *State {
	return &State{
		Current: initial,
		History: []Position{},
	}
}

// Push records p as the most recent history entry.
func (s *State) Push(p Position) {
	s.History = append(s.History, p)
}

// Pop removes and returns the most recent history entry.
func (s *State) Pop() (Position, bool) {
	if len(s.History) == 0 {
		return Position{}, false
	}
	last := s.History[len(s.History)-1]
	s.History = s.History[:len(s.History)-1]
	return last, true
}

// Depth returns the history length.
func (s *State) Depth() int {
	return len(s.History)
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	return &State{
		Current: s.Current,
		History: append([]Position{}, s.History...),
	}
}

// Trail returns the history names followed by the current name.
func (s *State) Trail() []string {
	trail := make([]string, 0, len(s.History)+1)
	for _, p := range s.History {
		trail = append(trail, p.Name)
	}
	return append(trail, s.Current.Name)
}
