package domain

// Option is one entry of a rendered option list.
type Option struct {
	// Ordinal is the index that selects the option in index modes.
	Ordinal int          `json:"ordinal"`
	Name    string       `json:"name"`
	Kind    PositionKind `json:"kind"`
}

// View is what the host renders for the current position.
type View struct {
	Position Position    `json:"position"`
	History  []Position  `json:"history"`
	Control  ControlType `json:"control"`
	// Options are in display order. In ControlOrdinalTrailingZero the option
	// with Ordinal 0 comes last; selection still uses Ordinal.
	Options []Option `json:"options"`
}

// Numbered reports whether options carry their ordinal when displayed.
func (v View) Numbered() bool {
	return v.Control.Ordinal()
}

// NewView lays out links for control. It does not copy history.
func NewView(current Position, history []Position, control ControlType, links []Position) View {
	opts := make([]Option, 0, len(links))
	add := func(i int) {
		opts = append(opts, Option{Ordinal: i, Name: links[i].Name, Kind: links[i].Kind})
	}

	if control == ControlOrdinalTrailingZero && len(links) > 0 {
		for i := 1; i < len(links); i++ {
			add(i)
		}
		add(0)
	} else {
		for i := range links {
			add(i)
		}
	}

	return View{
		Position: current,
		History:  history,
		Control:  control,
		Options:  opts,
	}
}
