package imperat

import (
	"github.com/VelixDevelopments/Imperat-sub001/errs"
)

// handleEmptyInput runs once the raw tokens are exhausted: optional parameters and flags take
// their defaults, required ones fail
func handleEmptyInput(b *binding) HandleResult {
	s := b.stream
	if _, ok := s.token(); ok {
		return nextHandler
	}

	p := s.param()
	switch {
	case p.IsFlag():
		if !b.result.flagResolved(p) {
			if err := b.defaultFlag(p); err != nil {
				return failure(err)
			}
		}
	case p.IsCommand():
		return failure(errs.ErrMissingSubCommand.WithArgs(expectedLiterals(p)))
	case p.optional:
		if err := b.defaultArgument(p); err != nil {
			return failure(err)
		}
	default:
		return failure(errs.ErrMissingRequiredParameter.WithArgs(p.name))
	}
	s.cursor.AdvanceParam()

	if rest := s.usage.params[s.cursor.Param:]; allOptional(rest) {
		for _, p := range rest {
			if p.IsFlag() {
				continue
			}
			if err := b.defaultArgument(p); err != nil {
				return failure(err)
			}
		}
		s.cursor.Param = len(s.usage.params)
		return terminate
	}

	return nextIteration
}

func allOptional(params []*Parameter) bool {
	for _, p := range params {
		if !p.optional || p.IsCommand() {
			return false
		}
	}

	return true
}

// handleCommandParameter matches a sub-command literal and makes it the invoked command
func handleCommandParameter(b *binding) HandleResult {
	s := b.stream
	p := s.param()
	if !p.IsCommand() {
		return nextHandler
	}

	tok, _ := s.token()
	if s.flags.IsFlag(tok) {
		return nextHandler
	}
	if !p.command.Matches(tok, b.caseSensitive) {
		return failure(errs.ErrUnknownSubCommand.WithArgs(tok, expectedLiterals(p)))
	}
	b.result.command = p.command
	s.cursor.Advance()

	return nextIteration
}

// handleFlagInput binds a flag token wherever it appears. The parameter cursor only moves when
// the current slot is the flag just bound.
func handleFlagInput(b *binding) HandleResult {
	s := b.stream
	tok, _ := s.token()
	ft, ok := s.flags.Split(tok)
	if !ok {
		return nextHandler
	}
	if err := b.consumeFlag(ft); err != nil {
		return failure(err)
	}
	if p := s.param(); p.IsFlag() && b.result.flagResolved(p) {
		s.cursor.AdvanceParam()
	}

	return nextIteration
}

// handleNonFlagWhenExpectingFlag skips a flag slot when the current token is positional,
// leaving the token for the next parameter
func handleNonFlagWhenExpectingFlag(b *binding) HandleResult {
	s := b.stream
	p := s.param()
	if !p.IsFlag() {
		return nextHandler
	}
	if !b.result.flagResolved(p) {
		if err := b.defaultFlag(p); err != nil {
			return failure(err)
		}
	}
	s.cursor.AdvanceParam()

	return nextIteration
}

func handleRequiredParameter(b *binding) HandleResult {
	p := b.stream.param()
	if p.optional {
		return nextHandler
	}

	return b.resolveArgument(p)
}

// handleOptionalParameter defaults the current optional parameter when the remaining
// positional tokens are all needed by the required parameters after it, or when its type
// rejects the token and a later parameter can take it
func handleOptionalParameter(b *binding) HandleResult {
	s := b.stream
	p := s.param()
	if !p.optional {
		return nextHandler
	}

	idx := s.cursor.Param
	skip := s.positionalLeft() <= s.usage.requiredAfter(idx)
	if !skip && !p.greedy && s.usage.positionalAfter(idx) {
		r, err := b.registry.Lookup(p.typ)
		if err != nil {
			return failure(err)
		}
		tok, _ := s.token()
		skip = !r.MatchesInput(tok, p)
	}

	if skip {
		if err := b.defaultArgument(p); err != nil {
			return failure(err)
		}
		s.cursor.AdvanceParam()
		return nextIteration
	}

	return b.resolveArgument(p)
}

// handleFreeFlags resolves the flags left once every parameter is processed. Any other
// leftover token is an error.
func handleFreeFlags(b *binding) error {
	s := b.stream
	for {
		tok, ok := s.token()
		if !ok {
			return nil
		}
		ft, isFlag := s.flags.Split(tok)
		if !isFlag {
			return errs.ErrTooManyArguments.WithArgs(tok)
		}
		if err := b.consumeFlag(ft); err != nil {
			return err
		}
	}
}
