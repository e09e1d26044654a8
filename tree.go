package imperat

import (
	"github.com/VelixDevelopments/Imperat-sub001/resolve"
	"github.com/VelixDevelopments/Imperat-sub001/types"
)

// NodeKind tags what a tree node matches
type NodeKind int

const (
	// NodeCommand matches a sub-command name or alias
	NodeCommand NodeKind = iota
	// NodeArgument matches any token its type resolver accepts
	NodeArgument
)

func (k NodeKind) String() string {
	if k == NodeCommand {
		return "command"
	}

	return "argument"
}

// Node is one step of a usage path. Nodes never change once the tree is built.
type Node struct {
	kind     NodeKind
	param    *Parameter
	resolver resolve.Resolver
	children []*Node
	usage    *Usage
	depth    int
}

func (n *Node) Kind() NodeKind {
	return n.kind
}

// Param returns the parameter of the node, the literal parameter for command nodes
func (n *Node) Param() *Parameter {
	return n.param
}

func (n *Node) Children() []*Node {
	return n.children
}

// Usage returns the usage terminating at this node, if any
func (n *Node) Usage() *Usage {
	return n.usage
}

// Depth returns the token index the node matches, -1 for the root
func (n *Node) Depth() int {
	return n.depth
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

func (n *Node) isOptional() bool {
	return n.kind == NodeArgument && n.param.optional
}

// isMultiToken reports whether the node's value may span consecutive tokens
func (n *Node) isMultiToken() bool {
	if n.kind != NodeArgument || n.param.typ == nil {
		return false
	}
	k := n.param.typ.Kind()

	return k == types.KindCollection || k == types.KindMap
}

func (n *Node) isGreedy() bool {
	return n.kind == NodeArgument && n.param.greedy
}

// permission returns what a source needs to see the node
func (n *Node) permission() string {
	if n.kind == NodeCommand {
		return n.param.command.permission
	}

	return n.param.permission
}

// accepts reports whether token can fill the node. An argument node also accepts its own
// placeholder so that rendered usage paths match back to their usage.
func (n *Node) accepts(token string, caseSensitive bool) bool {
	switch n.kind {
	case NodeCommand:
		return n.param.command.Matches(token, caseSensitive)
	default:
		return token == placeholder(n.param) || n.resolver.MatchesInput(token, n.param)
	}
}

// allChildrenOptional reports whether every remaining slot below n can be defaulted
func (n *Node) allChildrenOptional() bool {
	for _, c := range n.children {
		if !c.isOptional() {
			return false
		}
	}

	return true
}

// firstUsage returns the first usage reachable from n in priority order
func (n *Node) firstUsage() *Usage {
	if n.usage != nil {
		return n.usage
	}
	for _, c := range n.children {
		if u := c.firstUsage(); u != nil {
			return u
		}
	}

	return nil
}

// childUsage returns the first usage below n, or n's own when it has no children. It is what
// unmatched input is reported against.
func (n *Node) childUsage() *Usage {
	for _, c := range n.children {
		if u := c.firstUsage(); u != nil {
			return u
		}
	}

	return n.usage
}

// optionalUsage follows optional children until a usage terminates
func (n *Node) optionalUsage() *Usage {
	if n.usage != nil {
		return n.usage
	}
	for _, c := range n.children {
		if !c.isOptional() {
			continue
		}
		if u := c.optionalUsage(); u != nil {
			return u
		}
	}

	return nil
}

func (n *Node) childFor(p *Parameter) *Node {
	for _, c := range n.children {
		if c.param.sameSlot(p) {
			return c
		}
	}

	return nil
}

// addChild keeps command nodes ahead of argument nodes, otherwise insertion order
func (n *Node) addChild(child *Node) {
	if child.kind == NodeArgument {
		n.children = append(n.children, child)
		return
	}
	i := 0
	for i < len(n.children) && n.children[i].kind == NodeCommand {
		i++
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
}

// Tree is the matching structure of one root command. Usages sharing a parameter prefix
// share the nodes of that prefix.
type Tree struct {
	root    *Node
	command *Command
	flags   map[string]*FlagDescriptor
}

func newTree(cmd *Command) *Tree {
	return &Tree{
		root:    &Node{kind: NodeCommand, param: literal(cmd), depth: -1},
		command: cmd,
		flags:   make(map[string]*FlagDescriptor),
	}
}

// Root returns the node of the root command itself
func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) Command() *Command {
	return t.command
}

// Insert adds the positional path of u. Usages without an executor only contribute their flags.
func (t *Tree) Insert(u *Usage, registry *resolve.Registry) error {
	for _, p := range u.Flags() {
		for _, name := range p.flag.Names() {
			t.flags[name] = p.flag
		}
	}
	if u.executor == nil {
		return nil
	}

	node := t.root
	for i, p := range u.Positional() {
		child := node.childFor(p)
		if child == nil {
			child = &Node{kind: NodeArgument, param: p, depth: i}
			if p.IsCommand() {
				child.kind = NodeCommand
			} else {
				r, err := registry.Lookup(p.typ)
				if err != nil {
					return err
				}
				child.resolver = r
			}
			node.addChild(child)
		}
		node = child
	}
	if node.usage == nil {
		node.usage = u
	}

	return nil
}

// flag returns the descriptor of any usage flag named name
func (t *Tree) flag(name string, caseSensitive bool) *FlagDescriptor {
	if f, ok := t.flags[name]; ok {
		return f
	}
	if caseSensitive {
		return nil
	}
	for _, f := range t.flags {
		if f.Matches(name, false) {
			return f
		}
	}

	return nil
}

// Walk visits nodes depth first in priority order until fn returns false
func (t *Tree) Walk(fn func(n *Node) bool) {
	var walk func(n *Node) bool
	walk = func(n *Node) bool {
		if !fn(n) {
			return false
		}
		for _, c := range n.children {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(t.root)
}
