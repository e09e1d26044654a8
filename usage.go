package imperat

import (
	"time"

	"github.com/VelixDevelopments/Imperat-sub001/errs"
)

// Usage is one accepted syntax of a command: an ordered parameter list bound to an executor
type Usage struct {
	params      []*Parameter
	executor    ExecutorFunc
	permission  string
	description string
	cooldown    time.Duration
	command     *Command
	declared    *Usage
}

// NewUsage creates a usage. Errors from configs are reported when the owning command is registered.
func NewUsage(configs ...ConfigureUsageFunc) (*Usage, error) {
	u := &Usage{}
	var err error
	for _, config := range configs {
		config(u, &err)
		if err != nil {
			return nil, err
		}
	}
	u.declared = u

	return u, nil
}

// MustUsage is like NewUsage but panics on configuration errors
func MustUsage(configs ...ConfigureUsageFunc) *Usage {
	u, err := NewUsage(configs...)
	if err != nil {
		panic(err)
	}

	return u
}

// WithParams appends parameters in order
func WithParams(params ...*Parameter) ConfigureUsageFunc {
	return func(usage *Usage, err *error) {
		for _, p := range params {
			if p.err != nil {
				*err = p.err
				return
			}
		}
		usage.params = append(usage.params, params...)
	}
}

// WithExecutor sets the callback run when the usage matches
func WithExecutor(fn ExecutorFunc) ConfigureUsageFunc {
	return func(usage *Usage, err *error) {
		usage.executor = fn
	}
}

// WithUsagePermission requires permission to run the usage
func WithUsagePermission(permission string) ConfigureUsageFunc {
	return func(usage *Usage, err *error) {
		usage.permission = permission
	}
}

// WithUsageDescription the description will be used in usage output presented to the user
func WithUsageDescription(description string) ConfigureUsageFunc {
	return func(usage *Usage, err *error) {
		usage.description = description
	}
}

// WithCooldown rejects repeated use of the usage by the same source within d
func WithCooldown(d time.Duration) ConfigureUsageFunc {
	return func(usage *Usage, err *error) {
		usage.cooldown = d
	}
}

// Params returns every parameter, flags included, in declaration order
func (u *Usage) Params() []*Parameter {
	return u.params
}

// Positional returns the parameters forming the tree path, i.e. everything but flags
func (u *Usage) Positional() []*Parameter {
	out := make([]*Parameter, 0, len(u.params))
	for _, p := range u.params {
		if !p.IsFlag() {
			out = append(out, p)
		}
	}

	return out
}

// Flags returns the flag parameters
func (u *Usage) Flags() []*Parameter {
	var out []*Parameter
	for _, p := range u.params {
		if p.IsFlag() {
			out = append(out, p)
		}
	}

	return out
}

// Param returns the parameter called name
func (u *Usage) Param(name string) *Parameter {
	for _, p := range u.params {
		if p.name == name {
			return p
		}
	}

	return nil
}

// FlagNamed returns the flag parameter whose name or alias is name
func (u *Usage) FlagNamed(name string, caseSensitive bool) *Parameter {
	for _, p := range u.params {
		if p.IsFlag() && p.flag.Matches(name, caseSensitive) {
			return p
		}
	}

	return nil
}

func (u *Usage) Executor() ExecutorFunc {
	return u.executor
}

func (u *Usage) Permission() string {
	return u.permission
}

func (u *Usage) Description() string {
	return u.description
}

func (u *Usage) Cooldown() time.Duration {
	return u.cooldown
}

// Command returns the command declaring the usage, the one invoked when it runs
func (u *Usage) Command() *Command {
	return u.command
}

// IsDefault reports whether the usage declares no parameters of its own
func (u *Usage) IsDefault() bool {
	return len(u.declared.params) == 0
}

// requiredAfter counts required positional slots following index i
func (u *Usage) requiredAfter(i int) int {
	n := 0
	for _, p := range u.params[i+1:] {
		if !p.IsFlag() && (!p.optional || p.IsCommand()) {
			n++
		}
	}

	return n
}

// positionalAfter reports whether a positional slot follows index i
func (u *Usage) positionalAfter(i int) bool {
	for _, p := range u.params[i+1:] {
		if !p.IsFlag() {
			return true
		}
	}

	return false
}

// extend builds the registered form of u: prefix parameters followed by u's own, positioned
func (u *Usage) extend(owner *Command, prefix []*Parameter) *Usage {
	params := make([]*Parameter, 0, len(prefix)+len(u.params))
	params = append(params, prefix...)
	params = append(params, u.params...)
	for i, p := range params {
		params[i] = p.withPosition(i)
	}

	return &Usage{
		params:      params,
		executor:    u.executor,
		permission:  u.permission,
		description: u.description,
		cooldown:    u.cooldown,
		command:     owner,
		declared:    u,
	}
}

// validate checks the invariants of a registered usage
func (u *Usage) validate() error {
	seen := make(map[string]bool, len(u.params))
	positional := u.Positional()
	for _, p := range u.params {
		if p.err != nil {
			return p.err
		}
		if p.IsCommand() {
			continue
		}
		if seen[p.name] {
			return errs.ErrDuplicateParameter.WithArgs(p.name, u.command.Path())
		}
		seen[p.name] = true
		if p.greedy {
			if !p.typ.IsText() {
				return errs.ErrGreedyNotText.WithArgs(p.name)
			}
			if p.IsFlag() || positional[len(positional)-1] != p {
				return errs.ErrGreedyNotLast.WithArgs(p.name)
			}
		}
	}

	return nil
}
