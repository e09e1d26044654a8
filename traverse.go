package imperat

// MatchState classifies the outcome of walking a tree against input tokens
type MatchState int

const (
	// Unknown means no branch accepted the input
	Unknown MatchState = iota
	// Incomplete means a branch accepted the input but required slots remain, or tokens were left over
	Incomplete
	// Complete means a usage accepts the input exactly
	Complete
)

func (s MatchState) String() string {
	switch s {
	case Complete:
		return "complete"
	case Incomplete:
		return "incomplete"
	default:
		return "unknown"
	}
}

// MatchResult is the outcome of Tree.Match
type MatchResult struct {
	State MatchState
	// Usage is the matched usage when State is Complete
	Usage *Usage
	// Closest is the usage below the deepest accepted node, used to report what was expected
	Closest *Usage
	// Depth is the number of tokens accepted along the deepest branch
	Depth int
}

type matcher struct {
	tokens        []string
	caseSensitive bool
	deepest       *Node
}

// Match walks the tree against positional tokens, flags already removed. It is read-only and
// safe for concurrent use. Children are tried in priority order and the first complete branch wins.
func (t *Tree) Match(tokens []string, caseSensitive bool) MatchResult {
	root := t.root
	if len(tokens) == 0 {
		if root.usage != nil {
			return MatchResult{State: Complete, Usage: root.usage, Closest: root.usage}
		}
		if root.allChildrenOptional() {
			if u := root.optionalUsage(); u != nil {
				return MatchResult{State: Complete, Usage: u, Closest: u}
			}
		}
		return MatchResult{State: Incomplete, Closest: root.firstUsage()}
	}

	m := &matcher{tokens: tokens, caseSensitive: caseSensitive}
	state, usage := m.children(root, 0)
	if state == Complete {
		return MatchResult{State: Complete, Usage: usage, Closest: usage, Depth: len(tokens)}
	}

	res := MatchResult{State: state, Closest: root.childUsage()}
	if m.deepest != nil {
		res.Depth = m.deepest.depth + 1
		if u := m.deepest.firstUsage(); u != nil {
			res.Closest = u
		}
	}

	return res
}

func (m *matcher) reach(n *Node) {
	if m.deepest == nil || n.depth > m.deepest.depth {
		m.deepest = n
	}
}

func (m *matcher) children(n *Node, depth int) (MatchState, *Usage) {
	best := Unknown
	for _, c := range n.children {
		state, u := m.visit(c, depth)
		if state == Complete {
			return state, u
		}
		if state > best {
			best = state
		}
	}

	return best, nil
}

func (m *matcher) visit(n *Node, depth int) (MatchState, *Usage) {
	if !n.accepts(m.tokens[depth], m.caseSensitive) {
		if n.isOptional() {
			// the slot may be omitted, the token then belongs to a later one
			return m.children(n, depth)
		}
		return Unknown, nil
	}
	m.reach(n)

	best := Unknown
	for _, end := range m.spans(n, depth) {
		state, u := m.consumed(n, depth, end)
		if state == Complete {
			return state, u
		}
		best = max(best, state)
	}

	return best, nil
}

// spans returns the indexes of the last token n may take when it starts at depth, longest
// first. Only collection and map slots take more than one token.
func (m *matcher) spans(n *Node, depth int) []int {
	end := depth
	if n.isMultiToken() {
		for end+1 < len(m.tokens) && n.accepts(m.tokens[end+1], m.caseSensitive) {
			end++
		}
	}

	out := make([]int, 0, end-depth+1)
	for i := end; i >= depth; i-- {
		out = append(out, i)
	}

	return out
}

// consumed continues the walk once n took the tokens from depth to end
func (m *matcher) consumed(n *Node, depth, end int) (MatchState, *Usage) {
	last := end == len(m.tokens)-1
	if n.IsLeaf() {
		if last || n.isGreedy() {
			return Complete, n.usage
		}
		return Incomplete, nil
	}

	if !last {
		state, u := m.children(n, end+1)
		if state == Complete || !n.isOptional() {
			return state, u
		}
		skipped, u := m.children(n, depth)
		if skipped == Complete {
			return skipped, u
		}
		return max(state, skipped), nil
	}

	if n.usage != nil {
		return Complete, n.usage
	}
	if n.isOptional() {
		if state, u := m.children(n, depth); state == Complete {
			return state, u
		}
	}
	if n.allChildrenOptional() {
		if u := n.optionalUsage(); u != nil {
			return Complete, u
		}
	}

	return Incomplete, nil
}
