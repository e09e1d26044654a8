package imperat

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Command is a named node of the command forest. It owns its usages and sub-commands; the
// parent reference is only used for upward lookups.
type Command struct {
	name         string
	aliases      []string
	description  string
	permission   string
	usages       []*Usage
	defaultUsage *Usage
	children     *orderedmap.OrderedMap[string, *attachment]
	parent       *Command

	registered []*Usage
	tree       *Tree
}

type attachment struct {
	command *Command
	mode    AttachmentMode
	literal *Parameter
}

// NewCommand creates a command called name configured by configs
func NewCommand(name string, configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{
		name:     name,
		children: orderedmap.New[string, *attachment](),
	}
	cmd.Set(configs...)

	return cmd
}

// Set is a helper config function that allows setting multiple configuration functions on a command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// Usage adds a usage and returns c for chaining
func (c *Command) Usage(u *Usage) *Command {
	if u.IsDefault() {
		c.defaultUsage = u
	} else {
		c.usages = append(c.usages, u)
	}

	return c
}

// SubCommand attaches child below c and returns c for chaining. Attaching c to itself or to
// one of its descendants is ignored.
func (c *Command) SubCommand(child *Command, mode AttachmentMode) *Command {
	if child == nil {
		return c
	}
	for p := c; p != nil; p = p.parent {
		if p == child {
			return c
		}
	}
	child.parent = c
	c.children.Set(child.name, &attachment{command: child, mode: mode, literal: literal(child)})

	return c
}

func (c *Command) Name() string {
	return c.name
}

func (c *Command) Aliases() []string {
	return c.aliases
}

func (c *Command) Description() string {
	return c.description
}

func (c *Command) Permission() string {
	return c.permission
}

// Parent returns the command c is attached to, nil for root commands
func (c *Command) Parent() *Command {
	return c.parent
}

// Root returns the top-most ancestor of c
func (c *Command) Root() *Command {
	root := c
	for root.parent != nil {
		root = root.parent
	}

	return root
}

// Path returns the names from the root command down to c
func (c *Command) Path() string {
	if c.parent == nil {
		return c.name
	}

	return c.parent.Path() + " " + c.name
}

// Names returns the name followed by the aliases
func (c *Command) Names() []string {
	return append([]string{c.name}, c.aliases...)
}

// Matches reports whether token is the command's name or one of its aliases
func (c *Command) Matches(token string, caseSensitive bool) bool {
	for _, n := range c.Names() {
		if n == token || (!caseSensitive && strings.EqualFold(n, token)) {
			return true
		}
	}

	return false
}

// SubCommands returns the attached sub-commands in attachment order
func (c *Command) SubCommands() []*Command {
	out := make([]*Command, 0, c.children.Len())
	for pair := c.children.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.command)
	}

	return out
}

// SubCommandNamed returns the sub-command called name
func (c *Command) SubCommandNamed(name string) *Command {
	if a, ok := c.children.Get(name); ok {
		return a.command
	}

	return nil
}

// DeclaredUsages returns the usages declared on c itself, default usage first when set
func (c *Command) DeclaredUsages() []*Usage {
	if c.defaultUsage == nil {
		return c.usages
	}

	return append([]*Usage{c.defaultUsage}, c.usages...)
}

// MainUsage returns the first usage declaring parameters, nil if c only has a default usage
func (c *Command) MainUsage() *Usage {
	if len(c.usages) == 0 {
		return nil
	}

	return c.usages[0]
}

// Usages returns every usage reachable through c once registered, sub-command usages included
func (c *Command) Usages() []*Usage {
	return c.registered
}

// Tree returns the matching tree built at registration
func (c *Command) Tree() *Tree {
	return c.tree
}

// flatten expands c and its sub-commands into complete usages, each prefixed by the
// parameters leading to it from the root command
func (c *Command) flatten(prefix []*Parameter) []*Usage {
	def := c.defaultUsage
	if def == nil {
		def = &Usage{}
		def.declared = def
	}

	out := []*Usage{def.extend(c, prefix)}
	for _, u := range c.usages {
		out = append(out, u.extend(c, prefix))
	}

	main := c.MainUsage()
	for pair := c.children.Oldest(); pair != nil; pair = pair.Next() {
		a := pair.Value
		childPrefix := make([]*Parameter, 0, len(prefix)+1)
		childPrefix = append(childPrefix, prefix...)
		if a.mode == AttachMain && main != nil {
			childPrefix = append(childPrefix, main.Positional()...)
		}
		childPrefix = append(childPrefix, a.literal)
		out = append(out, a.command.flatten(childPrefix)...)
	}

	return out
}
