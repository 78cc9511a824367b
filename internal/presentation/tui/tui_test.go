package tui

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.Ascii)

	assert.Contains(t, buf.String(), `\___||_|_|_| |_| |_|`)
	assert.NotContains(t, buf.String(), "\x1b[", "ascii profile has no escape codes")
}

func TestNewRenderer_Plain(t *testing.T) {
	render := NewRenderer(false)
	out, err := render("# Title\n\nSome **bold** text.")
	require.NoError(t, err)

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
	assert.NotContains(t, out, "\x1b[", "notty style has no escape codes")
}
