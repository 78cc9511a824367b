package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the clim ASCII art banner to w.
func PrintBanner(w io.Writer, profile termenv.Profile) {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	lines := []struct {
		text  string
		color string
	}{
		{`        _ _           `, "#818cf8"},
		{`   ___ | (_)_ __ ___  `, "#a78bfa"},
		{`  / __|| | | '_ ' _ \ `, "#c084fc"},
		{` | (__ | | | | | | | |`, "#e879f9"},
		{`  \___||_|_|_| |_| |_|`, "#f472b6"},
	}

	fmt.Fprintln(out)
	for _, l := range lines {
		fmt.Fprintln(out, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(out)
}
