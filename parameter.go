package imperat

import (
	"github.com/VelixDevelopments/Imperat-sub001/types"
)

// Parameter describes one expected input slot of a usage. Parameters are built once at
// registration and shared by reference between usages and tree nodes; only the position is
// assigned later, when the owning usage is assembled.
type Parameter struct {
	name        string
	typ         *types.Type
	position    int
	optional    bool
	greedy      bool
	flag        *FlagDescriptor
	command     *Command
	defaultFunc DefaultValueFunc
	suggestFunc SuggestionFunc
	description string
	permission  string
	err         error
}

func newParameter(name string, t *types.Type, configs []ConfigureParameterFunc) *Parameter {
	p := &Parameter{name: name, typ: t, position: -1}
	_ = p.Set(configs...)

	return p
}

// Required creates a positional parameter which must be supplied
func Required(name string, t *types.Type, configs ...ConfigureParameterFunc) *Parameter {
	return newParameter(name, t, configs)
}

// Optional creates a positional parameter which may be omitted, in which case its default applies
func Optional(name string, t *types.Type, configs ...ConfigureParameterFunc) *Parameter {
	return newParameter(name, t, append([]ConfigureParameterFunc{AsOptional()}, configs...))
}

// GreedyText creates a trailing text parameter absorbing every remaining token
func GreedyText(name string, configs ...ConfigureParameterFunc) *Parameter {
	return newParameter(name, types.String, append([]ConfigureParameterFunc{AsGreedy()}, configs...))
}

// ValueFlag creates a flag expecting a value of type t, written -name value or -name=value
func ValueFlag(name string, t *types.Type, configs ...ConfigureParameterFunc) *Parameter {
	p := newParameter(name, t, nil)
	p.optional = true
	p.flag = &FlagDescriptor{name: name, inputType: t}
	_ = p.Set(configs...)

	return p
}

// Switch creates a flag whose value is its presence
func Switch(name string, configs ...ConfigureParameterFunc) *Parameter {
	p := newParameter(name, types.Bool, nil)
	p.optional = true
	p.flag = &FlagDescriptor{name: name}
	_ = p.Set(configs...)

	return p
}

// literal wraps a sub-command as the parameter matching its name
func literal(cmd *Command) *Parameter {
	return &Parameter{
		name:        cmd.name,
		position:    -1,
		command:     cmd,
		description: cmd.description,
		permission:  cmd.permission,
	}
}

// Set applies configs, returning the first configuration error
func (p *Parameter) Set(configs ...ConfigureParameterFunc) error {
	for _, config := range configs {
		var err error
		config(p, &err)
		if err != nil {
			if p.err == nil {
				p.err = err
			}
			return err
		}
	}

	return nil
}

// Name returns the parameter name, unique within a usage
func (p *Parameter) Name() string {
	return p.name
}

// Type returns the value type. Sub-command literals have none.
func (p *Parameter) Type() *types.Type {
	return p.typ
}

// Position returns the index within the owning usage, -1 until the usage is registered
func (p *Parameter) Position() int {
	return p.position
}

func (p *Parameter) IsOptional() bool {
	return p.optional
}

func (p *Parameter) IsGreedy() bool {
	return p.greedy
}

func (p *Parameter) IsFlag() bool {
	return p.flag != nil
}

// IsSwitch reports whether p is a zero-arity flag
func (p *Parameter) IsSwitch() bool {
	return p.flag != nil && p.flag.IsSwitch()
}

// Flag returns the flag descriptor, nil for positional parameters
func (p *Parameter) Flag() *FlagDescriptor {
	return p.flag
}

// IsCommand reports whether p is a sub-command literal
func (p *Parameter) IsCommand() bool {
	return p.command != nil
}

// Command returns the wrapped sub-command of a literal
func (p *Parameter) Command() *Command {
	return p.command
}

func (p *Parameter) Description() string {
	return p.description
}

func (p *Parameter) Permission() string {
	return p.permission
}

// DefaultValue returns the raw default for src
func (p *Parameter) DefaultValue(src Source) (string, bool) {
	if p.defaultFunc == nil {
		return "", false
	}

	return p.defaultFunc(src)
}

// HasSuggestions reports whether a suggestion provider is configured
func (p *Parameter) HasSuggestions() bool {
	return p.suggestFunc != nil
}

// Suggestions returns the provider's candidates for src
func (p *Parameter) Suggestions(src Source) []string {
	if p.suggestFunc == nil {
		return nil
	}

	return p.suggestFunc(src)
}

// sameSlot reports structural equality as used for tree node sharing
func (p *Parameter) sameSlot(other *Parameter) bool {
	if p.IsCommand() || other.IsCommand() {
		return p.command == other.command
	}

	return p.name == other.name && p.typ.Equal(other.typ) && p.optional == other.optional && p.greedy == other.greedy
}

// withPosition returns p positioned at pos. A parameter already placed elsewhere is copied so
// that usages sharing it keep their own positions.
func (p *Parameter) withPosition(pos int) *Parameter {
	if p.position == -1 || p.position == pos {
		p.position = pos
		return p
	}
	c := *p
	c.position = pos

	return &c
}
