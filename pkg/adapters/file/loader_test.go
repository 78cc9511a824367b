package file

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	clim "github.com/hu-zza/Clim"
	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
initial: root
control: parametric
header: history
back: ".."
structure:
  root:
    - settings: [volume, theme, root]
    - about
leaves:
  volume:
    forward: [settings, root]
    decide: {kind: lookup, param: level, values: {"0": 1}, default: 0}
    parameters:
      delimiter: '\s+'
      fields:
        - {name: level, regex: '\d+'}
  theme:
    forward: [settings]
    parameters:
      fields:
        - {name: name, regex: '[a-z]+', transform: upper}
        - {name: contrast, regex: 'high|low', default: low}
  about:
    forward: [root]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "demo.yaml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, domain.ControlParametric, cfg.Control)
	assert.Equal(t, clim.HeaderHistory, cfg.Header)
	assert.Equal(t, "..", cfg.Back)
	require.NotNil(t, cfg.Matcher)
	assert.Equal(t, []string{"theme", "volume"}, cfg.Matcher.Leaves())

	s := cfg.Structure
	assert.Equal(t, "root", s.Initial().Name)
	assert.Equal(t, []string{"root", "settings"}, domain.Names(s.Nodes()))

	settings, err := s.EntryByName("settings")
	require.NoError(t, err)
	assert.Equal(t, []string{"volume", "theme", "root"}, domain.Names(settings.Links()), "file order is kept")
}

func TestLoad_JSON(t *testing.T) {
	content := `{
  "initial": "main",
  "control": "ordinal-trailing-zero",
  "structure": {"main": ["b", {"a": ["main"]}]},
  "leaves": {"b": {"forward": ["a"], "decide": {"kind": "const", "index": 0}}}
}`
	cfg, err := Load(writeFile(t, "menu.json", content))
	require.NoError(t, err)

	assert.Equal(t, domain.ControlOrdinalTrailingZero, cfg.Control)
	assert.Equal(t, clim.HeaderStandard, cfg.Header)
	assert.Nil(t, cfg.Matcher)
	assert.Equal(t, "main", cfg.Structure.Initial().Name)

	main, err := cfg.Structure.EntryByName("main")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, domain.Names(main.Links()))
}

func TestConfig_NewMenu(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	m, err := cfg.NewMenu(clim.WithOutput(&out), clim.WithErrorOutput(&errOut))
	require.NoError(t, err)
	ctx := context.Background()

	require.Equal(t, clim.OutcomeMoved, m.ChooseOption(ctx, "settings").Kind)

	got := m.ChooseOption(ctx, "volume 0")
	require.Equal(t, clim.OutcomeMoved, got.Kind, got.Err)
	assert.Equal(t, "root", m.Current().Name, "lookup maps 0 to index 1")

	m.ChooseOption(ctx, "settings")
	got = m.ChooseOption(ctx, "volume 7")
	require.Equal(t, clim.OutcomeMoved, got.Kind, got.Err)
	assert.Equal(t, "settings", m.Current().Name, "lookup falls back to the default")

	require.Equal(t, clim.OutcomeBack, m.ChooseOption(ctx, "..").Kind)
	assert.Equal(t, "settings", m.Current().Name)

	require.NoError(t, m.ListOptions())
	assert.Contains(t, out.String(), "root > settings > root > settings")
}

func TestDecider_Kinds(t *testing.T) {
	in := func(t *testing.T, params string) domain.ProcessedInput {
		t.Helper()
		cfg, err := Parse([]byte(`
control: parametric
structure: {root: [pick]}
leaves:
  pick:
    forward: [root]
    parameters: {fields: [{name: n, regex: '\w+', transform: trim}]}
`))
		require.NoError(t, err)
		p, err := cfg.Matcher.MatchAndExtract("pick", params)
		require.NoError(t, err)
		return domain.NewProcessedInput("pick "+params, "pick", domain.Position{}, -1, p)
	}
	two := 2

	tests := []struct {
		name    string
		spec    *DecideSpec
		input   string
		want    int
		wantErr bool
	}{
		{name: "nil spec", spec: nil, input: "x", want: 0},
		{name: "const", spec: &DecideSpec{Kind: "const", Index: 3}, input: "x", want: 3},
		{name: "param", spec: &DecideSpec{Kind: "param", Param: "n"}, input: "4", want: 4},
		{name: "param not a number", spec: &DecideSpec{Kind: "param", Param: "n"}, input: "four", wantErr: true},
		{name: "lookup hit", spec: &DecideSpec{Kind: "lookup", Param: "n", Values: map[string]int{"yes": 1}}, input: "yes", want: 1},
		{name: "lookup default", spec: &DecideSpec{Kind: "Lookup", Param: "n", Default: &two}, input: "no", want: 2},
		{name: "lookup miss", spec: &DecideSpec{Kind: "lookup", Param: "n"}, input: "no", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decider(tt.spec)
			require.NoError(t, err)
			got, err := d.Decide(in(t, tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := decider(&DecideSpec{Kind: "random"})
	assert.Error(t, err)
	_, err = decider(&DecideSpec{Kind: "param"})
	assert.Error(t, err)
}

func TestWithDecider(t *testing.T) {
	called := false
	cfg, err := Parse([]byte(`
initial: root
structure: {root: [pick, {other: [root]}]}
leaves:
  pick: {forward: [root, other], decide: {kind: const, index: 0}}
`), WithDecider("pick", domain.DecideFunc(func(domain.ProcessedInput) (int, error) {
		called = true
		return 1, nil
	})))
	require.NoError(t, err)

	m, err := cfg.NewMenu(clim.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)
	m.ChooseOption(context.Background(), "pick")
	assert.True(t, called)
	assert.Equal(t, "other", m.Current().Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		is      error
		msg     string
	}{
		{name: "empty", content: "", is: ErrEmptyDocument},
		{name: "no structure", content: "control: nominal", is: ErrNoStructure},
		{name: "top level list", content: "- a\n- b", is: ErrUnsupportedValue},
		{name: "structure not a mapping", content: "structure: [a]", is: ErrUnsupportedValue},
		{name: "unknown key", content: "structure: {root: []}\ncolour: red", msg: "colour"},
		{name: "bad control", content: "structure: {root: []}\ncontrol: spiral", is: domain.ErrInvalidMenu},
		{name: "bad header", content: "structure: {root: []}\nheader: fancy", msg: "fancy"},
		{name: "missing binding", content: "structure: {root: [leaf]}", is: domain.ErrInvalidStructure},
		{name: "bad transform", msg: "shout", content: `
structure: {root: [l]}
leaves: {l: {forward: [root], parameters: {fields: [{name: a, regex: x, transform: shout}]}}}`},
		{name: "bad regex", msg: "field \"a\"", content: `
structure: {root: [l]}
leaves: {l: {forward: [root], parameters: {fields: [{name: a, regex: "("}]}}}`},
		{name: "bad command regex", msg: "command", content: `
control: parametric
command_regex: '\w+'
structure: {root: []}`},
		{name: "broken yaml", content: "structure: {root: [", msg: "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_NullChildIsEmptyNode(t *testing.T) {
	content := "initial: root\nstructure:\n  root:\n    - lonely:\n"
	doc, err := Decode([]byte(content))
	require.NoError(t, err)
	require.Len(t, doc.Structure, 1)

	cfg, err := Parse([]byte(content))
	require.NoError(t, err)
	lonely, err := cfg.Structure.EntryByName("lonely")
	require.NoError(t, err)
	assert.Empty(t, lonely.Links())
}
