package resolve

import (
	"strings"

	"github.com/VelixDevelopments/Imperat-sub001/errs"
	"github.com/VelixDevelopments/Imperat-sub001/parse"
	"github.com/VelixDevelopments/Imperat-sub001/types"
)

// MapSeparator splits map entries into key and value
const MapSeparator = "="

// arrayResolver reads one token holding delimited elements, e.g. "a,b|c"
type arrayResolver struct {
	elem      Resolver
	delimiter types.ListDelimiterFunc
}

func (r arrayResolver) split(raw string) []string {
	if r.delimiter == nil {
		return strings.FieldsFunc(raw, types.DefaultListDelimiter)
	}

	return strings.FieldsFunc(raw, r.delimiter)
}

func (r arrayResolver) MatchesInput(raw string, p Param) bool {
	parts := r.split(raw)
	if len(parts) == 0 {
		return false
	}
	inner := withType(p, p.Type().Elem())
	for _, part := range parts {
		if !r.elem.MatchesInput(part, inner) {
			return false
		}
	}

	return true
}

func (r arrayResolver) Resolve(ctx *Context, in parse.Input, p Param) (any, error) {
	inner := withType(p, p.Type().Elem())
	parts := r.split(in.Current())
	out := make([]any, 0, len(parts))
	for _, part := range parts {
		v, err := r.elem.Resolve(ctx, parse.Single(part, ctx.Flags), inner)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// collectionResolver repeats its element resolver over consecutive tokens until a flag, a
// token the element type rejects or the context limit is reached
type collectionResolver struct {
	elem Resolver
}

func (r collectionResolver) MatchesInput(raw string, p Param) bool {
	return r.elem.MatchesInput(raw, withType(p, p.Type().Elem()))
}

func (r collectionResolver) Resolve(ctx *Context, in parse.Input, p Param) (any, error) {
	inner := withType(p, p.Type().Elem())
	first, err := r.elem.Resolve(ctx, parse.Single(in.Current(), ctx.Flags), inner)
	if err != nil {
		return nil, err
	}
	out := []any{first}
	for ctx.allows(len(out)) {
		next, ok := in.Peek()
		if !ok || in.IsFlag(next) || !r.elem.MatchesInput(next, inner) {
			break
		}
		in.Next()
		v, err := r.elem.Resolve(ctx, parse.Single(next, ctx.Flags), inner)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// mapResolver reads consecutive key=value tokens
type mapResolver struct {
	key   Resolver
	value Resolver
}

func splitEntry(entry string) (string, string, error) {
	switch strings.Count(entry, MapSeparator) {
	case 0:
		return "", "", errs.ErrMissingSeparator.WithArgs(MapSeparator)
	case 1:
		k, v, _ := strings.Cut(entry, MapSeparator)
		return k, v, nil
	default:
		return "", "", errs.ErrWrongEntryArity.WithArgs(MapSeparator)
	}
}

func (r mapResolver) MatchesInput(raw string, p Param) bool {
	k, v, err := splitEntry(raw)
	if err != nil {
		return false
	}

	return r.key.MatchesInput(k, withType(p, p.Type().Key())) && r.value.MatchesInput(v, withType(p, p.Type().Elem()))
}

func (r mapResolver) entry(ctx *Context, raw string, p Param) (any, any, error) {
	k, v, err := splitEntry(raw)
	if err != nil {
		return nil, nil, errs.ErrInvalidEntryFormat.WithArgs(raw, p.Name()).Wrap(err)
	}
	key, err := r.key.Resolve(ctx, parse.Single(k, ctx.Flags), withType(p, p.Type().Key()))
	if err != nil {
		return nil, nil, err
	}
	value, err := r.value.Resolve(ctx, parse.Single(v, ctx.Flags), withType(p, p.Type().Elem()))
	if err != nil {
		return nil, nil, err
	}

	return key, value, nil
}

func (r mapResolver) Resolve(ctx *Context, in parse.Input, p Param) (any, error) {
	out := make(map[any]any)
	key, value, err := r.entry(ctx, in.Current(), p)
	if err != nil {
		return nil, err
	}
	out[key] = value

	for taken := 1; ctx.allows(taken); taken++ {
		next, ok := in.Peek()
		if !ok || in.IsFlag(next) || !r.MatchesInput(next, p) {
			break
		}
		in.Next()
		key, value, err = r.entry(ctx, next, p)
		if err != nil {
			return nil, err
		}
		out[key] = value
	}

	return out, nil
}

// optionalResolver yields an empty types.OptionalValue when the element type rejects the token
type optionalResolver struct {
	elem Resolver
}

func (r optionalResolver) MatchesInput(raw string, p Param) bool {
	return r.elem.MatchesInput(raw, withType(p, p.Type().Elem()))
}

func (r optionalResolver) Resolve(ctx *Context, in parse.Input, p Param) (any, error) {
	inner := withType(p, p.Type().Elem())
	if !r.elem.MatchesInput(in.Current(), inner) {
		return types.OptionalValue{}, nil
	}
	v, err := r.elem.Resolve(ctx, in, inner)
	if err != nil {
		return types.OptionalValue{}, nil
	}

	return types.OptionalValue{Value: v, Present: true}, nil
}

// asyncResolver resolves its element on another goroutine and returns a *types.Future. The
// future is tracked on the context so the dispatcher can cancel it if still pending once the
// executor returns.
type asyncResolver struct {
	elem Resolver
}

func (r asyncResolver) MatchesInput(raw string, p Param) bool {
	return r.elem.MatchesInput(raw, withType(p, p.Type().Elem()))
}

func (r asyncResolver) Resolve(ctx *Context, in parse.Input, p Param) (any, error) {
	inner := withType(p, p.Type().Elem())
	raw := in.Current()
	f := types.NewFuture()
	ctx.Track(p.Name(), f)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				f.Complete(nil, errs.ErrInvalidValue.WithArgs(raw, p.Name()))
			}
		}()
		v, err := r.elem.Resolve(ctx, parse.Single(raw, ctx.Flags), inner)
		f.Complete(v, err)
	}()

	return f, nil
}

func suggestElem(elem Resolver, ctx *Context, p Param) []string {
	if s, ok := elem.(Suggester); ok {
		return s.Suggest(ctx, withType(p, p.Type().Elem()))
	}

	return nil
}

func (r collectionResolver) Suggest(ctx *Context, p Param) []string {
	return suggestElem(r.elem, ctx, p)
}

func (r optionalResolver) Suggest(ctx *Context, p Param) []string {
	return suggestElem(r.elem, ctx, p)
}

func (r asyncResolver) Suggest(ctx *Context, p Param) []string {
	return suggestElem(r.elem, ctx, p)
}
