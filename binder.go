package imperat

import (
	"strings"

	"github.com/VelixDevelopments/Imperat-sub001/errs"
	"github.com/VelixDevelopments/Imperat-sub001/parse"
	"github.com/VelixDevelopments/Imperat-sub001/resolve"
	"github.com/VelixDevelopments/Imperat-sub001/types"
)

// Outcome tells the binding loop how to continue after a handler ran
type Outcome int

const (
	// NextHandler passes the current step to the following handler
	NextHandler Outcome = iota
	// NextIteration ends the step, the loop continues with the next pending parameter
	NextIteration
	// Terminate ends positional binding, only trailing flags are processed afterwards
	Terminate
	// Failure aborts binding with an error
	Failure
)

func (o Outcome) String() string {
	switch o {
	case NextIteration:
		return "next-iteration"
	case Terminate:
		return "terminate"
	case Failure:
		return "failure"
	default:
		return "next-handler"
	}
}

// HandleResult is returned by every ParameterHandler
type HandleResult struct {
	Outcome Outcome
	Err     error
}

var (
	nextHandler   = HandleResult{Outcome: NextHandler}
	nextIteration = HandleResult{Outcome: NextIteration}
	terminate     = HandleResult{Outcome: Terminate}
)

func failure(err error) HandleResult {
	return HandleResult{Outcome: Failure, Err: err}
}

// ParameterHandler is one link of the binding chain
type ParameterHandler func(b *binding) HandleResult

// defaultHandlers is the binding chain, tried in order for every pending parameter
var defaultHandlers = []ParameterHandler{
	handleEmptyInput,
	handleCommandParameter,
	handleFlagInput,
	handleNonFlagWhenExpectingFlag,
	handleRequiredParameter,
	handleOptionalParameter,
}

// binding holds everything the handlers of one call share
type binding struct {
	stream        *stream
	ctx           *resolve.Context
	registry      *resolve.Registry
	src           Source
	result        *ResolvedContext
	delimiter     string
	caseSensitive bool
}

// run drives the handler chain until every parameter is processed, then resolves trailing
// flags and defaults the flags that were not given
func (b *binding) run(handlers []ParameterHandler) error {
loop:
	for b.stream.hasParam() {
		res := nextHandler
		for _, h := range handlers {
			res = h(b)
			if res.Outcome != NextHandler {
				break
			}
		}

		switch res.Outcome {
		case Failure:
			return res.Err
		case Terminate:
			break loop
		case NextHandler:
			b.stream.cursor.AdvanceParam()
		}
	}

	if err := handleFreeFlags(b); err != nil {
		return err
	}
	for _, p := range b.stream.usage.Flags() {
		if b.result.flagResolved(p) {
			continue
		}
		if err := b.defaultFlag(p); err != nil {
			return err
		}
	}
	b.result.pending = b.ctx.Pending()

	return nil
}

func (b *binding) resolveRaw(p *Parameter, raw string) (any, error) {
	r, err := b.registry.Lookup(p.typ)
	if err != nil {
		return nil, err
	}

	return r.Resolve(b.ctx, parse.Single(raw, b.stream.flags), p)
}

// defaultArgument binds an omitted optional parameter to its default
func (b *binding) defaultArgument(p *Parameter) error {
	raw, ok := p.DefaultValue(b.src)
	if !ok {
		var value any
		if p.typ != nil && p.typ.Kind() == types.KindOptional {
			value = types.OptionalValue{}
		}
		b.result.setArgument(p, "", value, true)
		return nil
	}

	v, err := b.resolveRaw(p, raw)
	if err != nil {
		return err
	}
	b.result.setArgument(p, raw, v, true)

	return nil
}

// defaultFlag binds an absent flag: false for switches, the default supplier for value flags
func (b *binding) defaultFlag(p *Parameter) error {
	if p.IsSwitch() {
		b.result.setFlag(p, "", false, false)
		return nil
	}

	raw, ok := p.DefaultValue(b.src)
	if !ok {
		b.result.setFlag(p, "", nil, false)
		return nil
	}
	v, err := b.resolveRaw(p, raw)
	if err != nil {
		return err
	}
	b.result.setFlag(p, raw, v, false)

	return nil
}

// resolveArgument binds the current positional parameter from the token stream
func (b *binding) resolveArgument(p *Parameter) HandleResult {
	if p.greedy {
		return b.gatherGreedy(p)
	}

	s := b.stream
	r, err := b.registry.Lookup(p.typ)
	if err != nil {
		return failure(err)
	}

	// a multi-token value leaves the tokens the required parameters after it need
	b.ctx.Limit = 0
	if k := p.typ.Kind(); k == types.KindCollection || k == types.KindMap {
		b.ctx.Limit = max(1, s.positionalLeft()-s.usage.requiredAfter(s.cursor.Param))
	}
	start := s.cursor.Raw
	v, err := r.Resolve(b.ctx, s.tokens, p)
	b.ctx.Limit = 0
	if err != nil {
		return failure(err)
	}
	b.result.setArgument(p, strings.Join(s.raw[start:s.cursor.Raw+1], " "), v, false)
	s.cursor.Advance()

	return nextIteration
}

// gatherGreedy joins every remaining non-flag token into one value, resolving the flags met
// on the way
func (b *binding) gatherGreedy(p *Parameter) HandleResult {
	s := b.stream
	var parts []string
	for {
		tok, ok := s.token()
		if !ok {
			break
		}
		if ft, isFlag := s.flags.Split(tok); isFlag {
			if err := b.consumeFlag(ft); err != nil {
				return failure(err)
			}
			continue
		}
		parts = append(parts, tok)
		s.cursor.AdvanceRaw()
	}

	value := strings.Join(parts, b.delimiter)
	b.result.setArgument(p, value, value, false)
	s.cursor.AdvanceParam()

	return nextIteration
}

// consumeFlag binds the flag token at the cursor, either a single flag or a short-hand group
// of single character aliases, and moves the raw cursor past it and its value
func (b *binding) consumeFlag(ft parse.FlagToken) error {
	s := b.stream
	if p := s.usage.FlagNamed(ft.Name, b.caseSensitive); p != nil {
		return b.bindFlag([]*Parameter{p}, ft)
	}

	names := []rune(ft.Name)
	if ft.Long || len(names) < 2 {
		return errs.ErrUnknownFlag.WithArgs(ft.Raw)
	}

	group := make([]*Parameter, 0, len(names))
	switches := 0
	for _, r := range names {
		p := s.usage.FlagNamed(string(r), b.caseSensitive)
		if p == nil {
			return errs.ErrUnknownFlag.WithArgs(ft.Raw)
		}
		if p.IsSwitch() {
			switches++
		}
		group = append(group, p)
	}

	if switches != 0 && switches != len(group) {
		return errs.ErrShortHandFlag.WithArgs(ft.Raw)
	}
	if switches == 0 {
		inputType := group[0].flag.inputType
		for _, p := range group[1:] {
			if !p.flag.inputType.Equal(inputType) {
				return errs.ErrShortHandFlagTypes.WithArgs(ft.Raw)
			}
		}
	}

	return b.bindFlag(group, ft)
}

func (b *binding) bindFlag(group []*Parameter, ft parse.FlagToken) error {
	s := b.stream
	s.cursor.AdvanceRaw()

	if group[0].IsSwitch() {
		value := true
		if ft.HasValue {
			v, err := b.resolveRaw(group[0], ft.Value)
			if err != nil {
				return err
			}
			value = v.(bool)
		}
		for _, p := range group {
			b.result.setFlag(p, ft.Raw, value, true)
		}
		return nil
	}

	raw := ft.Value
	if !ft.HasValue {
		next, ok := s.token()
		if !ok || s.flags.IsFlag(next) {
			return errs.ErrFlagExpectsValue.WithArgs(ft.Raw)
		}
		raw = next
		s.cursor.AdvanceRaw()
	}

	for _, p := range group {
		v, err := b.resolveRaw(p, raw)
		if err != nil {
			return err
		}
		b.result.setFlag(p, raw, v, true)
	}

	return nil
}

// expectedLiterals lists the sub-commands that could appear where p is expected
func expectedLiterals(p *Parameter) string {
	parent := p.command.parent
	if parent == nil {
		return p.name
	}

	names := make([]string, 0, parent.children.Len())
	for _, c := range parent.SubCommands() {
		names = append(names, c.name)
	}

	return strings.Join(names, "|")
}
