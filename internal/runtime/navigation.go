package runtime

import (
	"context"
	"strconv"
	"strings"

	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/hu-zza/Clim/pkg/parameter"
)

// ChooseOption interprets one input line against the current options.
//
// Blank input and license phrases leave the state untouched. Otherwise the
// current position is pushed to the history, the input is resolved according
// to the control type and the selected entry decides the next Node. Any
// failure pops the history entry again and is reported as OutcomeRejected.
func (e *Engine) ChooseOption(ctx context.Context, raw string) Outcome {
	input := strings.TrimSpace(raw)
	if input == "" {
		return Outcome{Kind: OutcomeIgnored}
	}
	if e.license[normalizePhrase(input)] {
		return Outcome{Kind: OutcomeLicense}
	}

	e.refreshOptions()

	if e.backToken != "" && input == e.backToken {
		return e.back(ctx, input)
	}

	from := e.state.Current
	e.state.Push(from)

	via, in, err := e.resolve(input)
	var to domain.Position
	if err == nil {
		to, err = e.selectEntry(ctx, via, in)
	}
	if err != nil {
		e.state.Pop()
		return e.reject(ctx, input, err)
	}

	e.state.Current = to
	e.refreshOptions()

	t := &domain.Transition{From: from, Via: via, To: to, Input: input}
	e.logger.Debug("transition", "from", from.Name, "via", via.Name, "to", to.Name)
	e.emitTransition(ctx, t)
	return Outcome{Kind: OutcomeMoved, Transition: t}
}

func (e *Engine) back(ctx context.Context, input string) Outcome {
	prev, ok := e.state.Pop()
	if !ok {
		return e.reject(ctx, input, domain.ErrNoHistory)
	}

	from := e.state.Current
	e.state.Current = prev
	e.refreshOptions()

	t := &domain.Transition{From: from, Via: prev, To: prev, Input: input, Back: true}
	e.logger.Debug("transition", "from", from.Name, "to", prev.Name, "back", true)
	e.emitTransition(ctx, t)
	return Outcome{Kind: OutcomeBack, Transition: t}
}

func (e *Engine) reject(ctx context.Context, input string, cause error) Outcome {
	err := &domain.InputError{Input: input, Cause: cause}
	reason := domain.RejectReason(cause)
	e.logger.Debug("input rejected",
		"input", input,
		"position", e.state.Current.Name,
		"reason", reason,
		"err", cause,
	)
	e.emitReject(ctx, &domain.RejectEvent{
		EventBase: e.event(domain.EventReject),
		Input:     input,
		Position:  e.state.Current.Name,
		Reason:    reason,
		Err:       err,
	})
	return Outcome{Kind: OutcomeRejected, Err: err}
}

// resolve maps input to one of the current options.
func (e *Engine) resolve(input string) (domain.Position, domain.ProcessedInput, error) {
	switch e.control {
	case domain.ControlOrdinal, domain.ControlOrdinalTrailingZero:
		return e.resolveOrdinal(input)
	case domain.ControlParametric:
		return e.resolveParametric(input)
	default:
		return e.resolveNominal(input)
	}
}

func (e *Engine) resolveNominal(input string) (domain.Position, domain.ProcessedInput, error) {
	pos, ok := e.option(input)
	if !ok {
		return domain.Position{}, domain.ProcessedInput{}, e.unknown(input)
	}
	return pos, domain.NewProcessedInput(input, input, pos, -1, nil), nil
}

func (e *Engine) resolveOrdinal(input string) (domain.Position, domain.ProcessedInput, error) {
	n, err := strconv.Atoi(input)
	if err != nil || !isDigits(input) || !(0 <= n && n < len(e.options)) {
		return domain.Position{}, domain.ProcessedInput{}, &domain.OrdinalError{Input: input, Len: len(e.options)}
	}
	pos := e.options[n]
	return pos, domain.NewProcessedInput(input, input, pos, n, nil), nil
}

func (e *Engine) resolveParametric(input string) (domain.Position, domain.ProcessedInput, error) {
	command, rest, ok := e.matcher.Command(input)
	if !ok {
		return domain.Position{}, domain.ProcessedInput{}, e.unknown(input)
	}
	pos, ok := e.option(command)
	if !ok {
		return domain.Position{}, domain.ProcessedInput{}, e.unknown(command)
	}

	var params map[string]parameter.Parameter
	switch {
	case pos.IsLeaf() && rest == "" && e.matcher.HasPattern(pos.Name):
		var ok bool
		if params, ok = e.matcher.Absent(pos.Name); !ok {
			return domain.Position{}, domain.ProcessedInput{}, &domain.ParameterError{Position: pos.Name, Err: parameter.ErrEmptyText}
		}
	case pos.IsLeaf() && e.matcher.HasPattern(pos.Name):
		var err error
		params, err = e.matcher.MatchAndExtract(pos.Name, rest)
		if err != nil {
			return domain.Position{}, domain.ProcessedInput{}, &domain.ParameterError{Position: pos.Name, Err: err}
		}
	case rest != "":
		return domain.Position{}, domain.ProcessedInput{}, &domain.ParameterError{Position: pos.Name, Err: parameter.ErrNoMatch}
	}
	return pos, domain.NewProcessedInput(input, command, pos, -1, params), nil
}

// selectEntry runs the entry at via and returns the Node to move to.
func (e *Engine) selectEntry(ctx context.Context, via domain.Position, in domain.ProcessedInput) (domain.Position, error) {
	entry, err := e.structure.Entry(via.ID)
	if err != nil {
		return domain.Position{}, err
	}

	leaf, ok := entry.(*domain.Leaf)
	if !ok {
		return entry.Select(in)
	}

	start := e.now()
	idx, to, err := leaf.Resolve(in)
	e.emitDecision(ctx, &domain.DecisionEvent{
		EventBase: e.event(domain.EventDecision),
		Leaf:      via.Name,
		Index:     idx,
		Duration:  e.now().Sub(start),
		IsError:   err != nil,
	})
	return to, err
}

func isDigits(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0
}

func (e *Engine) option(name string) (domain.Position, bool) {
	for _, opt := range e.options {
		if opt.Name == name {
			return opt, true
		}
	}
	return domain.Position{}, false
}

func (e *Engine) unknown(command string) error {
	return &domain.UnknownCommandError{
		Command:     command,
		Suggestions: suggest(command, e.options),
	}
}
