// Package resolve converts raw command tokens into typed values. Resolvers are looked up by
// type descriptor in a Registry, which falls back to structural resolvers for numeric, enum
// and composite types.
package resolve

import (
	"context"
	"sync"

	"github.com/VelixDevelopments/Imperat-sub001/parse"
	"github.com/VelixDevelopments/Imperat-sub001/types"
)

// Param is the view of a parameter a resolver needs
type Param interface {
	Name() string
	Type() *types.Type
}

// Source identifies who is resolving
type Source interface {
	Name() string
}

// Resolver converts raw tokens into a value of one type
type Resolver interface {
	// MatchesInput is a side-effect free acceptability test used while matching. It never panics.
	MatchesInput(raw string, p Param) bool
	// Resolve converts in.Current(), reading further tokens through in.Next when the type spans
	// several tokens.
	Resolve(ctx *Context, in parse.Input, p Param) (any, error)
}

// Suggester is implemented by resolvers able to propose values
type Suggester interface {
	Suggest(ctx *Context, p Param) []string
}

// Pending is an asynchronous value handed to an executor
type Pending struct {
	Param  string
	Future *types.Future
}

// Context carries the per-invocation state resolvers may use
type Context struct {
	ctx    context.Context
	Source Source
	Flags  *parse.FlagMatcher
	// Limit caps the tokens a resolver spanning several tokens may take, zero means no cap
	Limit int

	mu      sync.Mutex
	pending []Pending
}

// NewContext creates a resolution context for src
func NewContext(ctx context.Context, src Source) *Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Context{
		ctx:    ctx,
		Source: src,
		Flags:  parse.DefaultFlags(),
	}
}

// Context returns the context.Context of the invocation
func (c *Context) Context() context.Context {
	return c.ctx
}

// allows reports whether a resolver holding taken tokens may take another one
func (c *Context) allows(taken int) bool {
	return c == nil || c.Limit <= 0 || taken < c.Limit
}

// Track registers a future to be settled once the invocation completes
func (c *Context) Track(param string, f *types.Future) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, Pending{Param: param, Future: f})
}

// Pending returns the futures created while resolving
func (c *Context) Pending() []Pending {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Pending, len(c.pending))
	copy(out, c.pending)

	return out
}

type typedParam struct {
	name string
	t    *types.Type
}

func (p typedParam) Name() string      { return p.name }
func (p typedParam) Type() *types.Type { return p.t }

// withType returns a view of p carrying another type, used by composites for their elements
func withType(p Param, t *types.Type) Param {
	return typedParam{name: p.Name(), t: t}
}

// ParamOf builds a standalone Param view, mostly useful in tests and tooling
func ParamOf(name string, t *types.Type) Param {
	return typedParam{name: name, t: t}
}
