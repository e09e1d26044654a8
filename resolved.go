package imperat

import (
	"context"

	"github.com/VelixDevelopments/Imperat-sub001/resolve"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ResolvedArgument is a bound positional parameter
type ResolvedArgument struct {
	Param *Parameter
	Raw   string
	Value any
	// Defaulted is set when the slot was omitted
	Defaulted bool
}

// ResolvedFlag is a bound flag
type ResolvedFlag struct {
	Flag    *FlagDescriptor
	Raw     string
	Value   any
	Present bool
}

// ResolvedContext is the result of binding a usage against input. It is created per
// invocation and only handed to the executor once binding fully succeeded.
type ResolvedContext struct {
	ctx       context.Context
	source    Source
	root      *Command
	command   *Command
	usage     *Usage
	args      []string
	line      string
	arguments *orderedmap.OrderedMap[string, ResolvedArgument]
	flags     map[string]ResolvedFlag
	pending   []resolve.Pending
}

func newResolvedContext(ctx context.Context, src Source, root *Command, u *Usage, args []string, line string) *ResolvedContext {
	return &ResolvedContext{
		ctx:       ctx,
		source:    src,
		root:      root,
		command:   root,
		usage:     u,
		args:      args,
		line:      line,
		arguments: orderedmap.New[string, ResolvedArgument](),
		flags:     make(map[string]ResolvedFlag),
	}
}

// Context returns the context of the invocation
func (c *ResolvedContext) Context() context.Context {
	return c.ctx
}

func (c *ResolvedContext) Source() Source {
	return c.source
}

// RootCommand returns the command named by the input label
func (c *ResolvedContext) RootCommand() *Command {
	return c.root
}

// Command returns the command actually invoked, the last sub-command traversed
func (c *ResolvedContext) Command() *Command {
	return c.command
}

func (c *ResolvedContext) Usage() *Usage {
	return c.usage
}

// Args returns the raw tokens following the command label
func (c *ResolvedContext) Args() []string {
	return c.args
}

// Line returns the unsplit input line, empty when dispatched from tokens
func (c *ResolvedContext) Line() string {
	return c.line
}

func (c *ResolvedContext) setArgument(p *Parameter, raw string, value any, defaulted bool) {
	c.arguments.Set(p.name, ResolvedArgument{Param: p, Raw: raw, Value: value, Defaulted: defaulted})
}

func (c *ResolvedContext) setFlag(p *Parameter, raw string, value any, present bool) {
	c.flags[p.flag.name] = ResolvedFlag{Flag: p.flag, Raw: raw, Value: value, Present: present}
}

func (c *ResolvedContext) flagResolved(p *Parameter) bool {
	_, ok := c.flags[p.flag.name]
	return ok
}

// Arguments returns the bound positional parameters in usage order
func (c *ResolvedContext) Arguments() []ResolvedArgument {
	out := make([]ResolvedArgument, 0, c.arguments.Len())
	for pair := c.arguments.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}

	return out
}

// Argument returns the bound parameter called name
func (c *ResolvedContext) Argument(name string) (ResolvedArgument, bool) {
	return c.arguments.Get(name)
}

// Flag returns the bound flag called name
func (c *ResolvedContext) Flag(name string) (ResolvedFlag, bool) {
	f, ok := c.flags[name]
	return f, ok
}

// Flags returns every flag of the usage, present or defaulted
func (c *ResolvedContext) Flags() map[string]ResolvedFlag {
	return c.flags
}

// Switch reports whether the switch called name was given
func (c *ResolvedContext) Switch(name string) bool {
	f, ok := c.flags[name]
	if !ok {
		return false
	}
	v, _ := f.Value.(bool)

	return v
}

// Get returns the value bound to name, looking at arguments then flags
func (c *ResolvedContext) Get(name string) (any, bool) {
	if a, ok := c.arguments.Get(name); ok {
		return a.Value, a.Value != nil
	}
	if f, ok := c.flags[name]; ok {
		return f.Value, f.Value != nil
	}

	return nil, false
}

// GetString returns the string value of name
func (c *ResolvedContext) GetString(name string) (string, bool) {
	return Arg[string](c, name)
}

// GetInt returns the int value of name
func (c *ResolvedContext) GetInt(name string) (int, bool) {
	return Arg[int](c, name)
}

// GetBool returns the bool value of name
func (c *ResolvedContext) GetBool(name string) (bool, bool) {
	return Arg[bool](c, name)
}

// Pending returns the asynchronous values created while binding
func (c *ResolvedContext) Pending() []resolve.Pending {
	return c.pending
}

// Arg returns the value bound to name converted to T. ok is false when the value is absent
// or of another type.
func Arg[T any](c *ResolvedContext, name string) (T, bool) {
	var zero T
	v, ok := c.Get(name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)

	return t, ok
}
