package validator

import (
	"fmt"
	"strings"

	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/hu-zza/Clim/pkg/structure"
)

// Report lists the findings of a structure check. None of them prevents
// navigation; a structure that builds is always usable.
type Report struct {
	// Unreachable positions cannot be visited from the initial Node.
	Unreachable []string
	// DeadEnds are reachable Nodes without options.
	DeadEnds []string
}

// OK reports whether the check found nothing.
func (r Report) OK() bool {
	return len(r.Unreachable) == 0 && len(r.DeadEnds) == 0
}

func (r Report) String() string {
	if r.OK() {
		return "no findings"
	}
	var lines []string
	for _, name := range r.Unreachable {
		lines = append(lines, fmt.Sprintf("unreachable position: '%s'", name))
	}
	for _, name := range r.DeadEnds {
		lines = append(lines, fmt.Sprintf("node without options: '%s'", name))
	}
	return fmt.Sprintf("found %d issues:\n- %s", len(lines), strings.Join(lines, "\n- "))
}

// Check crawls s from its initial Node, following Node links and Leaf
// forwarding tables.
func Check(s *structure.Structure) Report {
	visited := make(map[domain.PositionID]bool)
	queue := []domain.Position{s.Initial()}

	var report Report
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current.ID] {
			continue
		}
		visited[current.ID] = true

		entry, err := s.Entry(current.ID)
		if err != nil {
			continue
		}

		next := entry.Links()
		if leaf, ok := entry.(*domain.Leaf); ok {
			next = leaf.Forward()
		} else if len(next) == 0 {
			report.DeadEnds = append(report.DeadEnds, current.Name)
		}
		for _, p := range next {
			if !visited[p.ID] {
				queue = append(queue, p)
			}
		}
	}

	for _, p := range s.Positions() {
		if !visited[p.ID] {
			report.Unreachable = append(report.Unreachable, p.Name)
		}
	}
	return report
}
