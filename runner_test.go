package clim

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	m, out, errOut := newTestMenu(t)

	r := NewRunner(strings.NewReader("settings\nnope\n\nroot\nquit\nabout\n"))
	require.NoError(t, r.Run(context.Background(), m))

	assert.Equal(t, "root", m.Current().Name, "input after quit is not read")
	assert.Equal(t, 2, strings.Count(out.String(), "[root]"))
	assert.Equal(t, 1, strings.Count(out.String(), "[settings]"))
	assert.Contains(t, errOut.String(), "Processing 'nope' failed")
	assert.True(t, strings.HasSuffix(out.String(), "Bye!\n"))
}

func TestRunner_Headless(t *testing.T) {
	m, out, _ := newTestMenu(t)

	r := NewRunner(strings.NewReader("settings"))
	r.Headless = true
	require.NoError(t, r.Run(context.Background(), m))

	assert.Equal(t, "settings", m.Current().Name, "last line without newline is processed")
	assert.NotContains(t, out.String(), "> ")
	assert.NotContains(t, out.String(), "Bye!")
}

func TestRunner_ExitTokens(t *testing.T) {
	m, _, _ := newTestMenu(t)

	r := NewRunner(strings.NewReader("BYE\nsettings\n"))
	r.ExitTokens = []string{"bye"}
	require.NoError(t, r.Run(context.Background(), m))
	assert.Equal(t, "root", m.Current().Name)
}

func TestRunner_SanitizesInput(t *testing.T) {
	m, _, _ := newTestMenu(t)

	r := NewRunner(strings.NewReader("sett\x1bings\r\n"))
	require.NoError(t, r.Run(context.Background(), m))
	assert.Equal(t, "settings", m.Current().Name)
}

func TestRunner_ContextCancelled(t *testing.T) {
	m, _, _ := newTestMenu(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewRunner(strings.NewReader("settings\n")).Run(ctx, m)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "root", m.Current().Name)
}

func TestRunner_Misconfigured(t *testing.T) {
	m, _, _ := newTestMenu(t)
	assert.Error(t, (&Runner{}).Run(context.Background(), m))
	assert.Error(t, NewRunner(strings.NewReader("")).Run(context.Background(), nil))
}
