package resolve

import (
	"strings"

	"github.com/VelixDevelopments/Imperat-sub001/errs"
	"github.com/VelixDevelopments/Imperat-sub001/parse"
	"github.com/iancoleman/strcase"
)

// enumResolver is the fallback for every enum type without an explicit resolver. Input is
// matched against the constants case-insensitively, also accepting kebab, snake and camel case.
type enumResolver struct{}

func lookupConstant(raw string, p Param) (any, bool) {
	t := p.Type()
	if raw == "" {
		return nil, false
	}
	for _, candidate := range []string{raw, strings.ToUpper(raw), strcase.ToScreamingSnake(raw)} {
		if v, ok := t.EnumValue(candidate); ok {
			return v, true
		}
	}

	return nil, false
}

func (enumResolver) MatchesInput(raw string, p Param) bool {
	_, ok := lookupConstant(raw, p)
	return ok
}

func (enumResolver) Resolve(_ *Context, in parse.Input, p Param) (any, error) {
	raw := in.Current()
	v, ok := lookupConstant(raw, p)
	if !ok {
		return nil, errs.ErrInvalidEnum.WithArgs(raw, p.Type().Name(), strings.Join(p.Type().Constants(), ", "))
	}

	return v, nil
}

func (enumResolver) Suggest(_ *Context, p Param) []string {
	constants := p.Type().Constants()
	out := make([]string, len(constants))
	for i, c := range constants {
		out[i] = strings.ToLower(c)
	}

	return out
}
