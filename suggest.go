package imperat

import (
	"context"
	"strings"
	"unicode"

	"github.com/VelixDevelopments/Imperat-sub001/completion"
	"github.com/VelixDevelopments/Imperat-sub001/errs"
	"github.com/VelixDevelopments/Imperat-sub001/parse"
	"github.com/VelixDevelopments/Imperat-sub001/resolve"
	"github.com/ef-ds/deque"
)

// Suggest completes the last token of line. A line ending in whitespace completes a new, empty
// token. Only a tokenizing failure is reported; everything src may not see is silently left out.
func (d *Dispatcher) Suggest(ctx context.Context, src Source, line string) ([]string, error) {
	line = strings.TrimPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "/")
	tokens, err := parse.Split(line)
	if err != nil {
		return nil, errs.ErrTokenize.Wrap(err)
	}

	trailing := line == "" || unicode.IsSpace(rune(line[len(line)-1]))
	if trailing {
		tokens = append(tokens, "")
	}
	if len(tokens) == 1 {
		return d.suggestLabel(ctx, src, tokens[0]), nil
	}

	args := tokens[1:]
	return d.SuggestAt(ctx, src, tokens[0], args, len(args)-1, args[len(args)-1]), nil
}

// SuggestAt returns the ranked completions for the argument at index of the command called
// label. args is the full argument view; partial is the text being completed.
func (d *Dispatcher) SuggestAt(ctx context.Context, src Source, label string, args []string, index int, partial string) []string {
	cmd, ok := d.Command(label)
	if !ok || !d.permitted(src, cmd.permission) || index < 0 {
		return nil
	}
	if index > len(args) {
		index = len(args)
	}
	prior := args[:index]

	req := completion.Request{
		Source:  src.Name(),
		Command: cmd.name,
		Args:    args,
		Index:   index,
		Partial: partial,
		Allowed: func(permission string) bool { return d.permitted(src, permission) },
	}

	marker := d.flags.Marker()
	valueFlag := d.expectsFlagValue(cmd, prior)
	switch {
	case d.flags.IsFlag(partial) || (partial != "" && strings.Trim(partial, marker) == ""):
		req.Candidates = d.flagCandidates(cmd, prior)
	case valueFlag != nil:
		req.Candidates = d.flagValueCandidates(ctx, src, valueFlag)
	default:
		positional := positionalTokens(prior, d.flags, func(name string) *FlagDescriptor {
			return cmd.tree.flag(name, d.settings.CaseSensitive)
		})
		req.Candidates = d.treeCandidates(ctx, src, cmd.tree, positional)
		req.LiteralPath = literalPath(cmd.tree, positional, d.settings.CaseSensitive)
	}

	return d.engine.Complete(ctx, req)
}

func (d *Dispatcher) suggestLabel(ctx context.Context, src Source, partial string) []string {
	var candidates []completion.Candidate
	for _, cmd := range d.Commands() {
		if !d.permitted(src, cmd.permission) {
			continue
		}
		for _, name := range cmd.Names() {
			candidates = append(candidates, completion.Candidate{Value: name, Literal: true})
		}
	}

	return d.engine.Complete(ctx, completion.Request{
		Source:      src.Name(),
		Args:        []string{partial},
		Partial:     partial,
		Candidates:  candidates,
		LiteralPath: []string{},
		Allowed:     func(permission string) bool { return d.permitted(src, permission) },
	})
}

type visit struct {
	node  *Node
	depth int
}

// treeCandidates collects the suggestions of every node that can fill the slot following the
// positional tokens already typed. Optional nodes may be skipped, so their children are also
// visited at the same depth.
func (d *Dispatcher) treeCandidates(ctx context.Context, src Source, tree *Tree, positional []string) []completion.Candidate {
	target := len(positional)
	cs := d.settings.CaseSensitive

	queue := deque.New()
	seen := make(map[visit]bool)
	push := func(n *Node, depth int) {
		v := visit{node: n, depth: depth}
		if !seen[v] {
			seen[v] = true
			queue.PushBack(v)
		}
	}
	for _, c := range tree.root.children {
		push(c, 0)
	}

	var out []completion.Candidate
	added := make(map[string]bool)
	add := func(n *Node) {
		for _, c := range d.nodeCandidates(ctx, src, n) {
			if !added[c.Value] {
				added[c.Value] = true
				out = append(out, c)
			}
		}
	}

	for queue.Len() > 0 {
		item, _ := queue.PopFront()
		v := item.(visit)
		n := v.node
		if !d.permitted(src, n.permission()) {
			continue
		}

		if v.depth == target {
			add(n)
			if n.isOptional() {
				for _, c := range n.children {
					push(c, v.depth)
				}
			}
			continue
		}

		if n.accepts(positional[v.depth], cs) {
			if n.isGreedy() {
				add(n)
				continue
			}
			for _, c := range n.children {
				push(c, v.depth+1)
			}
			if n.isMultiToken() {
				push(n, v.depth+1)
			}
		}
		if n.isOptional() {
			for _, c := range n.children {
				push(c, v.depth)
			}
		}
	}

	return out
}

func (d *Dispatcher) nodeCandidates(ctx context.Context, src Source, n *Node) []completion.Candidate {
	if n.kind == NodeCommand {
		names := n.param.command.Names()
		out := make([]completion.Candidate, len(names))
		for i, name := range names {
			out[i] = completion.Candidate{Value: name, Literal: true}
		}
		return out
	}

	return toCandidates(d.paramSuggestions(ctx, src, n.param, n.resolver))
}

// paramSuggestions prefers the suggestion provider of p over the suggestions of its resolver
func (d *Dispatcher) paramSuggestions(ctx context.Context, src Source, p *Parameter, r resolve.Resolver) []string {
	if p.HasSuggestions() {
		return p.Suggestions(src)
	}
	if r == nil {
		var err error
		if r, err = d.registry.Lookup(p.typ); err != nil {
			return nil
		}
	}
	if s, ok := r.(resolve.Suggester); ok {
		rctx := resolve.NewContext(ctx, src)
		rctx.Flags = d.flags
		return s.Suggest(rctx, p)
	}

	return nil
}

func toCandidates(values []string) []completion.Candidate {
	out := make([]completion.Candidate, len(values))
	for i, v := range values {
		out[i] = completion.Candidate{Value: v}
	}

	return out
}

// literalPath returns the command name followed by the sub-command names typed so far, nil
// when a positional token is not a sub-command literal
func literalPath(tree *Tree, positional []string, caseSensitive bool) []string {
	path := []string{tree.command.name}
	node := tree.root
	for _, tok := range positional {
		var next *Node
		for _, c := range node.children {
			if c.kind == NodeCommand && c.accepts(tok, caseSensitive) {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		path = append(path, next.param.command.name)
		node = next
	}

	return path
}

// usageFlags returns the flag parameters of every registered usage, one per flag name
func usageFlags(cmd *Command) []*Parameter {
	var out []*Parameter
	seen := make(map[string]bool)
	for _, u := range cmd.registered {
		for _, p := range u.Flags() {
			if !seen[p.flag.name] {
				seen[p.flag.name] = true
				out = append(out, p)
			}
		}
	}

	return out
}

// flagCandidates lists the flags not given yet, with the marker
func (d *Dispatcher) flagCandidates(cmd *Command, prior []string) []completion.Candidate {
	used := make(map[*FlagDescriptor]bool)
	for _, tok := range prior {
		if ft, ok := d.flags.Split(tok); ok {
			if f := cmd.tree.flag(ft.Name, d.settings.CaseSensitive); f != nil {
				used[f] = true
			}
		}
	}

	marker := d.flags.Marker()
	var out []completion.Candidate
	for _, p := range usageFlags(cmd) {
		if used[p.flag] {
			continue
		}
		for _, name := range p.flag.Names() {
			out = append(out, completion.Candidate{Value: marker + name})
		}
	}

	return out
}

// expectsFlagValue returns the value flag written as the last prior token without an inline value
func (d *Dispatcher) expectsFlagValue(cmd *Command, prior []string) *Parameter {
	if len(prior) == 0 {
		return nil
	}
	ft, ok := d.flags.Split(prior[len(prior)-1])
	if !ok || ft.HasValue {
		return nil
	}
	for _, p := range usageFlags(cmd) {
		if p.flag.Matches(ft.Name, d.settings.CaseSensitive) {
			if p.IsSwitch() {
				return nil
			}
			return p
		}
	}

	return nil
}

func (d *Dispatcher) flagValueCandidates(ctx context.Context, src Source, p *Parameter) []completion.Candidate {
	if !d.permitted(src, p.permission) {
		return nil
	}

	return toCandidates(d.paramSuggestions(ctx, src, p, nil))
}
