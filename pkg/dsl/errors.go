package dsl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hu-zza/Clim/pkg/domain"
)

// BuildError lists every problem found while building a structure.
// It matches domain.ErrInvalidStructure with errors.Is.
type BuildError struct {
	Problems []error
}

func (e *BuildError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("%v: %v", domain.ErrInvalidStructure, e.Problems[0])
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v: %d problems:\n", domain.ErrInvalidStructure, len(e.Problems))
	for i, p := range e.Problems {
		fmt.Fprintf(&sb, "  %d. %v\n", i+1, p)
	}
	return sb.String()
}

func (e *BuildError) Is(target error) bool {
	return target == domain.ErrInvalidStructure
}

func (e *BuildError) Unwrap() []error {
	return e.Problems
}

// Problems returns the individual problems of the *BuildError in err's chain.
// Otherwise returns nil.
func Problems(err error) []error {
	var be *BuildError
	if errors.As(err, &be) {
		return be.Problems
	}
	return nil
}
