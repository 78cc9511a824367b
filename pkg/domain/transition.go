package domain

// Transition records one successful ChooseOption.
type Transition struct {
	From Position `json:"from"`
	// Via is the selected entry: the target Node itself or the Leaf that forwarded.
	Via   Position `json:"via"`
	To    Position `json:"to"`
	Input string   `json:"input"`
	// Back is set when the move popped the history instead of selecting an option.
	Back bool `json:"back,omitempty"`
}
