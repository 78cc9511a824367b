package runtime

import (
	"context"
	"errors"
	"testing"

	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/hu-zza/Clim/pkg/dsl"
	"github.com/hu-zza/Clim/pkg/parameter"
	"github.com/hu-zza/Clim/pkg/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// root -> [A, B, C, pick]; pick forwards to [A, B, C]; A, B, C link back to root.
func testStructure(t *testing.T, decider domain.Decider) *structure.Structure {
	t.Helper()
	desc := dsl.Obj(
		dsl.M("root", dsl.List("A", "B", "C", "pick")),
		dsl.M("A", dsl.List("root")),
		dsl.M("B", dsl.List("root")),
		dsl.M("C", dsl.List("root", "pick")),
	)
	s, err := dsl.Build(desc, "root", domain.Bind("pick", decider, "A", "B", "C"))
	require.NoError(t, err)
	return s
}

func newTestEngine(t *testing.T, control domain.ControlType, decider domain.Decider, opts ...EngineOption) *Engine {
	t.Helper()
	e, err := NewEngine(testStructure(t, decider), control, opts...)
	require.NoError(t, err)
	return e
}

func TestEngine_ListOptions(t *testing.T) {
	e := newTestEngine(t, domain.ControlNominal, domain.Always(0))

	v := e.ListOptions()
	assert.Equal(t, "root", v.Position.Name)
	require.Len(t, v.Options, 4, "one option per link")
	assert.Equal(t, "pick", v.Options[3].Name)
	assert.Equal(t, domain.KindLeaf, v.Options[3].Kind)
}

func TestEngine_BlankInputIsNoop(t *testing.T) {
	e := newTestEngine(t, domain.ControlOrdinal, domain.Always(0))
	before := e.State()

	for _, in := range []string{"", "   ", "\t"} {
		out := e.ChooseOption(context.Background(), in)
		assert.Equal(t, OutcomeIgnored, out.Kind)
	}
	assert.Equal(t, before, e.State())
}

func TestEngine_SelectNode(t *testing.T) {
	e := newTestEngine(t, domain.ControlNominal, domain.Always(0))

	out := e.ChooseOption(context.Background(), "B")
	require.Equal(t, OutcomeMoved, out.Kind, out.Err)
	assert.Equal(t, "B", e.Current().Name)
	assert.Equal(t, "B", out.Transition.Via.Name)
	assert.Equal(t, []string{"root", "B"}, e.State().Trail())
}

func TestEngine_LeafForwardsByDecision(t *testing.T) {
	e := newTestEngine(t, domain.ControlNominal, domain.Always(1))

	out := e.ChooseOption(context.Background(), "pick")
	require.Equal(t, OutcomeMoved, out.Kind, out.Err)
	assert.Equal(t, "B", e.Current().Name)
	assert.Equal(t, "pick", out.Transition.Via.Name)
	assert.Equal(t, 1, e.State().Depth())
}

func TestEngine_OrdinalOutOfRange(t *testing.T) {
	for _, in := range []string{"99", "4", "-1", "+1", "-0", " 1x", "x", "1.0"} {
		t.Run(in, func(t *testing.T) {
			e := newTestEngine(t, domain.ControlOrdinal, domain.Always(0))
			before := e.State()

			out := e.ChooseOption(context.Background(), in)
			require.Equal(t, OutcomeRejected, out.Kind)

			var oe *domain.OrdinalError
			require.ErrorAs(t, out.Err, &oe)
			assert.Equal(t, 4, oe.Len)
			assert.Equal(t, before, e.State(), "position and history depth unchanged")
		})
	}
}

func TestEngine_OrdinalSelectsByIndex(t *testing.T) {
	e := newTestEngine(t, domain.ControlOrdinal, domain.Always(2))
	var seen domain.ProcessedInput
	e2 := newTestEngine(t, domain.ControlOrdinal, domain.DecideFunc(func(in domain.ProcessedInput) (int, error) {
		seen = in
		return 0, nil
	}))

	out := e.ChooseOption(context.Background(), "3")
	require.Equal(t, OutcomeMoved, out.Kind, out.Err)
	assert.Equal(t, "C", e.Current().Name)
	assert.Equal(t, "pick", out.Transition.Via.Name)

	require.Equal(t, OutcomeMoved, e2.ChooseOption(context.Background(), "3").Kind)
	n, ok := seen.Ordinal()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Empty(t, seen.Names(), "no parameters outside parametric mode")
}

func TestEngine_TrailingZero(t *testing.T) {
	desc := dsl.Obj(
		dsl.M("root", dsl.List("n0", "n1", "n2")),
		dsl.M("n0", nil), dsl.M("n1", nil), dsl.M("n2", nil),
	)
	s, err := dsl.Build(desc, "root")
	require.NoError(t, err)

	e, err := NewEngine(s, domain.ControlOrdinalTrailingZero)
	require.NoError(t, err)

	v := e.ListOptions()
	require.Len(t, v.Options, 3)
	assert.Equal(t, []string{"n1", "n2", "n0"}, []string{v.Options[0].Name, v.Options[1].Name, v.Options[2].Name})
	assert.Equal(t, []int{1, 2, 0}, []int{v.Options[0].Ordinal, v.Options[1].Ordinal, v.Options[2].Ordinal})

	out := e.ChooseOption(context.Background(), "0")
	require.Equal(t, OutcomeMoved, out.Kind, out.Err)
	assert.Equal(t, "n0", e.Current().Name)
}

func TestEngine_NominalUnknownSuggests(t *testing.T) {
	desc := dsl.Obj(
		dsl.M("root", dsl.List("settings", "about")),
		dsl.M("settings", "root"),
		dsl.M("about", "root"),
	)
	s, err := dsl.Build(desc, "root")
	require.NoError(t, err)
	e, err := NewEngine(s, domain.ControlNominal)
	require.NoError(t, err)

	out := e.ChooseOption(context.Background(), "setings")
	require.Equal(t, OutcomeRejected, out.Kind)

	var ue *domain.UnknownCommandError
	require.ErrorAs(t, out.Err, &ue)
	assert.Equal(t, []string{"settings"}, ue.Suggestions)
	assert.Equal(t, "root", e.Current().Name)
	assert.Equal(t, 0, e.State().Depth())
}

func TestEngine_LicensePhrases(t *testing.T) {
	e := newTestEngine(t, domain.ControlNominal, domain.Always(0))

	for _, in := range []string{"license", "WARRANTY", "show   liability", "About License"} {
		out := e.ChooseOption(context.Background(), in)
		assert.Equal(t, OutcomeLicense, out.Kind, in)
	}
	assert.Equal(t, "root", e.Current().Name)

	quiet := newTestEngine(t, domain.ControlNominal, domain.Always(0), WithLicensePhrases())
	out := quiet.ChooseOption(context.Background(), "license")
	assert.Equal(t, OutcomeRejected, out.Kind)
}

func TestEngine_BackToken(t *testing.T) {
	e := newTestEngine(t, domain.ControlNominal, domain.Always(2), WithBackToken(".."))
	ctx := context.Background()

	out := e.ChooseOption(ctx, "..")
	require.Equal(t, OutcomeRejected, out.Kind)
	assert.ErrorIs(t, out.Err, domain.ErrNoHistory)

	require.Equal(t, OutcomeMoved, e.ChooseOption(ctx, "C").Kind)
	require.Equal(t, OutcomeMoved, e.ChooseOption(ctx, "pick").Kind)
	assert.Equal(t, "C", e.Current().Name)
	assert.Equal(t, 2, e.State().Depth())

	out = e.ChooseOption(ctx, "..")
	require.Equal(t, OutcomeBack, out.Kind)
	assert.True(t, out.Transition.Back)
	assert.Equal(t, "C", e.Current().Name)
	assert.Equal(t, 1, e.State().Depth())

	out = e.ChooseOption(ctx, "..")
	require.Equal(t, OutcomeBack, out.Kind)
	assert.Equal(t, "root", e.Current().Name)
	assert.Equal(t, 0, e.State().Depth())
}

func TestEngine_DecisionFailuresRollBack(t *testing.T) {
	deciders := map[string]domain.Decider{
		"error": domain.DecideFunc(func(domain.ProcessedInput) (int, error) {
			return 0, errors.New("refused")
		}),
		"panic": domain.DecideFunc(func(domain.ProcessedInput) (int, error) {
			panic("boom")
		}),
		"range": domain.Always(7),
	}

	for name, d := range deciders {
		t.Run(name, func(t *testing.T) {
			e := newTestEngine(t, domain.ControlNominal, d)
			out := e.ChooseOption(context.Background(), "pick")
			require.Equal(t, OutcomeRejected, out.Kind)

			var de *domain.DecisionError
			assert.ErrorAs(t, out.Err, &de)
			assert.Equal(t, "root", e.Current().Name)
			assert.Equal(t, 0, e.State().Depth())
		})
	}
}

func TestEngine_Hooks(t *testing.T) {
	var (
		transitions []*domain.TransitionEvent
		decisions   []*domain.DecisionEvent
		rejects     []*domain.RejectEvent
	)
	hooks := domain.LifecycleHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) { transitions = append(transitions, e) },
		OnDecision:   func(_ context.Context, e *domain.DecisionEvent) { decisions = append(decisions, e) },
		OnReject:     func(_ context.Context, e *domain.RejectEvent) { rejects = append(rejects, e) },
	}

	e := newTestEngine(t, domain.ControlNominal, domain.Always(0), WithLifecycleHooks(hooks))
	ctx := context.Background()

	e.ChooseOption(ctx, "pick")
	e.ChooseOption(ctx, "nope")

	require.Len(t, transitions, 1)
	assert.Equal(t, "A", transitions[0].To.Name)
	assert.Equal(t, domain.EventTransition, transitions[0].Type)

	require.Len(t, decisions, 1)
	assert.Equal(t, "pick", decisions[0].Leaf)
	assert.Equal(t, 0, decisions[0].Index)
	assert.False(t, decisions[0].IsError)

	require.Len(t, rejects, 1)
	assert.Equal(t, "nope", rejects[0].Input)
	assert.Equal(t, "A", rejects[0].Position)
	assert.Equal(t, "unknown_command", rejects[0].Reason)
}

func TestNewEngine_Validation(t *testing.T) {
	s := testStructure(t, domain.Always(0))

	_, err := NewEngine(nil, domain.ControlNominal)
	assert.ErrorIs(t, err, domain.ErrInvalidMenu)

	_, err = NewEngine(structure.New(nil), domain.ControlNominal)
	assert.ErrorIs(t, err, domain.ErrInvalidMenu)

	_, err = NewEngine(s, domain.ControlType("arrows"))
	assert.ErrorIs(t, err, domain.ErrInvalidMenu)

	_, err = NewEngine(s, domain.ControlParametric)
	assert.ErrorIs(t, err, domain.ErrInvalidMenu)

	p, err := parameter.NewPattern(" ", parameter.Field{Name: "n", Param: parameter.MustNew(`\d+`)})
	require.NoError(t, err)
	m, err := parameter.NewMatcher(parameter.WithPattern("root", p))
	require.NoError(t, err)
	_, err = NewEngine(s, domain.ControlParametric, WithMatcher(m))
	assert.ErrorIs(t, err, domain.ErrInvalidMenu, "patterns must belong to leaves")
}
