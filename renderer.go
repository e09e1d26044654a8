package imperat

import (
	"strings"
)

// Renderer formats usages for help output and error messages
type Renderer interface {
	Placeholder(p *Parameter) string
	FlagUsage(p *Parameter) string
	UsagePath(u *Usage) string
	UsageLine(u *Usage) string
}

type DefaultRenderer struct {
	marker string
}

// NewRenderer creates a renderer writing flags with marker
func NewRenderer(marker rune) *DefaultRenderer {
	return &DefaultRenderer{marker: string(marker)}
}

// Placeholder returns how a positional parameter is shown: sub-command literals by name,
// required parameters as <name>, optional ones as [name] and greedy ones with a trailing ellipsis.
func (r *DefaultRenderer) Placeholder(p *Parameter) string {
	return placeholder(p)
}

func placeholder(p *Parameter) string {
	if p.IsCommand() {
		return p.command.name
	}

	name := p.name
	if p.greedy {
		name += "..."
	}
	if p.optional {
		return "[" + name + "]"
	}

	return "<" + name + ">"
}

// FlagUsage renders a flag as [-name] for switches and [-name=<type>] for value flags
func (r *DefaultRenderer) FlagUsage(p *Parameter) string {
	if p.IsSwitch() {
		return "[" + r.marker + p.flag.name + "]"
	}

	return "[" + r.marker + p.flag.name + "=<" + p.flag.inputType.String() + ">]"
}

// UsagePath renders the root command name followed by the positional parameters. Tokenizing the
// result and matching it against the command tree yields the usage again.
func (r *DefaultRenderer) UsagePath(u *Usage) string {
	parts := []string{u.command.Root().name}
	for _, p := range u.Positional() {
		parts = append(parts, placeholder(p))
	}

	return strings.Join(parts, " ")
}

// UsageLine renders the usage path followed by its flags
func (r *DefaultRenderer) UsageLine(u *Usage) string {
	var sb strings.Builder
	sb.WriteString(r.UsagePath(u))
	for _, p := range u.Flags() {
		sb.WriteByte(' ')
		sb.WriteString(r.FlagUsage(p))
	}

	return sb.String()
}

// String renders the usage path with the default renderer
func (u *Usage) String() string {
	if u.command == nil {
		parts := make([]string, 0, len(u.params))
		for _, p := range u.Positional() {
			parts = append(parts, placeholder(p))
		}
		return strings.Join(parts, " ")
	}

	return NewRenderer('-').UsagePath(u)
}
