package graph

import (
	"fmt"
	"strings"

	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/hu-zza/Clim/pkg/structure"
)

// Overlay contains navigation state to visualize on the graph.
type Overlay struct {
	Visited []string
	Current string
}

// OverlayFromState builds an Overlay from a navigation state.
func OverlayFromState(s *domain.State) *Overlay {
	if s == nil {
		return nil
	}
	return &Overlay{Visited: domain.Names(s.History), Current: s.Current.Name}
}

// GenerateMermaid produces a Mermaid flowchart of a structure.
//
// Shapes: the initial Node is a ((circle)), other Nodes are [rectangles] and
// Leaves are [[subroutines]]. Node links are solid arrows; a Leaf's forwarding
// table is drawn with dotted arrows labelled by decision index.
func GenerateMermaid(s *structure.Structure, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	initial := s.Initial()
	for _, pos := range s.Positions() {
		safeID := sanitizeMermaidID(pos.Name)

		opener, closer := "[", "]"
		switch {
		case pos.ID == initial.ID:
			opener, closer = "((", "))"
		case pos.IsLeaf():
			opener, closer = "[[", "]]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(pos.Name), closer)

		entry, err := s.Entry(pos.ID)
		if err != nil {
			continue
		}
		for _, link := range entry.Links() {
			fmt.Fprintf(&sb, "    %s --> %s\n", safeID, sanitizeMermaidID(link.Name))
		}
		if leaf, ok := entry.(*domain.Leaf); ok {
			for i, target := range leaf.Forward() {
				fmt.Fprintf(&sb, "    %s -. \"%d\" .-> %s\n", safeID, i, sanitizeMermaidID(target.Name))
			}
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps the labels readable on both light and dark themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visited := make(map[string]bool)
		for _, name := range overlay.Visited {
			safeID := sanitizeMermaidID(name)
			if safeID != "" && !visited[safeID] {
				visited[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}
		if overlay.Current != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.Current))
		}
	}

	return sb.String()
}

// sanitizeMermaidID maps a position name to a Mermaid node id.
func sanitizeMermaidID(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
