package runtime

import "github.com/hu-zza/Clim/pkg/domain"

// OutcomeKind tells what ChooseOption did with an input.
type OutcomeKind int

const (
	OutcomeIgnored  OutcomeKind = iota // Blank input, nothing changed
	OutcomeLicense                     // License phrase, nothing changed
	OutcomeMoved                       // An option was selected
	OutcomeBack                        // History was popped
	OutcomeRejected                    // Input failed, state rolled back
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeLicense:
		return "license"
	case OutcomeMoved:
		return "moved"
	case OutcomeBack:
		return "back"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is the result of one ChooseOption call.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	// Transition is set for OutcomeMoved and OutcomeBack.
	Transition *domain.Transition `json:"transition,omitempty"`
	// Err is a *domain.InputError for OutcomeRejected.
	Err error `json:"-"`
}

// Changed reports whether the current position or history changed.
func (o Outcome) Changed() bool {
	return o.Kind == OutcomeMoved || o.Kind == OutcomeBack
}
