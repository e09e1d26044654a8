package completion

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// hit is one strategy's opinion about a completion value
type hit struct {
	value   string
	base    float64
	exact   bool
	freq    int64
	literal bool
	order   int
}

type strategy struct {
	name string
	run  func(ctx context.Context, req Request) ([]hit, error)
}

// fuzzyWeight scales the similarity of fuzzy hits below exact prefix hits
const fuzzyWeight = 0.8

func (e *Engine) normalize(s string) string {
	if e.opts.CaseSensitive {
		return s
	}

	return strings.ToLower(s)
}

func (e *Engine) hasPrefix(value, partial string) bool {
	return strings.HasPrefix(e.normalize(value), e.normalize(partial))
}

// orderOf returns the position of value among the candidates, after them when absent
func orderOf(req Request, value string) int {
	for i, c := range req.Candidates {
		if c.Value == value {
			return i
		}
	}

	return len(req.Candidates)
}

func (e *Engine) prefix(ctx context.Context, req Request) ([]hit, error) {
	var out []hit
	for i, c := range req.Candidates {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if !e.hasPrefix(c.Value, req.Partial) {
			continue
		}
		out = append(out, hit{
			value:   c.Value,
			base:    1,
			exact:   e.normalize(c.Value) == e.normalize(req.Partial),
			literal: c.Literal,
			order:   i,
		})
	}

	return out, nil
}

// similarity is 1 - distance / longest length, compared against the whole candidate and
// against its prefix of the partial's length
func similarity(partial, candidate string) float64 {
	best := 0.0
	compare := func(a, b string) {
		longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
		if longest == 0 {
			return
		}
		s := 1 - float64(fuzzy.LevenshteinDistance(a, b))/float64(longest)
		best = max(best, s)
	}
	compare(partial, candidate)

	n := utf8.RuneCountInString(partial)
	if runes := []rune(candidate); len(runes) > n {
		compare(partial, string(runes[:n]))
	}

	return best
}

func (e *Engine) fuzzy(ctx context.Context, req Request) ([]hit, error) {
	if utf8.RuneCountInString(req.Partial) < e.opts.Suggestions.MinFuzzyLength {
		return nil, nil
	}

	partial := e.normalize(req.Partial)
	var out []hit
	for i, c := range req.Candidates {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		s := similarity(partial, e.normalize(c.Value))
		if s < e.opts.Suggestions.FuzzyThreshold {
			continue
		}
		out = append(out, hit{value: c.Value, base: s * fuzzyWeight, literal: c.Literal, order: i})
	}

	return out, nil
}

// contextual reweights the candidates by how often they were executed at this position. Only
// values the tree proposed count, the candidates being already permission filtered.
func (e *Engine) contextual(_ context.Context, req Request) ([]hit, error) {
	known := make(map[string]int, len(req.Candidates))
	for i, c := range req.Candidates {
		if _, ok := known[e.normalize(c.Value)]; !ok {
			known[e.normalize(c.Value)] = i
		}
	}

	freqs := make(map[int]int64)
	for value, n := range e.tracker.Frequencies(req.Command, req.Prior()) {
		i, ok := known[e.normalize(value)]
		if !ok || !e.hasPrefix(value, req.Partial) {
			continue
		}
		freqs[i] += n
	}

	out := make([]hit, 0, len(freqs))
	for i, n := range freqs {
		out = append(out, hit{value: req.Candidates[i].Value, freq: n, order: i})
	}

	return out, nil
}

func (e *Engine) literal(_ context.Context, req Request) ([]hit, error) {
	if req.LiteralPath == nil {
		return nil, nil
	}

	var out []hit
	for _, entry := range e.index.Children(req.LiteralPath, req.Partial) {
		if req.Allowed != nil && entry.Permission != "" && !req.Allowed(entry.Permission) {
			continue
		}
		out = append(out, hit{
			value:   entry.Name,
			base:    1,
			exact:   e.normalize(entry.Name) == e.normalize(req.Partial),
			literal: true,
			order:   orderOf(req, entry.Name),
		})
	}

	return out, nil
}
