package completion

import (
	"cmp"
	"math"
	"slices"
	"unicode/utf8"
)

// Score weights
const (
	exactBonus     = 0.5
	frequencyScale = 0.3
	literalBonus   = 0.25
	lengthPenalty  = 0.01
)

type ranked struct {
	hit
	score float64
}

// merge folds the hits of every strategy into one entry per value
func merge(results [][]hit) []*ranked {
	byValue := make(map[string]*ranked)
	var order []*ranked
	for _, hits := range results {
		for _, h := range hits {
			r, ok := byValue[h.value]
			if !ok {
				r = &ranked{hit: h}
				byValue[h.value] = r
				order = append(order, r)
				continue
			}
			r.base = max(r.base, h.base)
			r.exact = r.exact || h.exact
			r.freq = max(r.freq, h.freq)
			r.literal = r.literal || h.literal
			r.order = min(r.order, h.order)
		}
	}

	return order
}

// score combines the base match quality with the exact, frequency and literal terms, minus a
// penalty for every rune the completion adds to the partial
func score(r *ranked, partial string) float64 {
	s := r.base
	if r.exact {
		s += exactBonus
	}
	if r.freq > 0 {
		s += frequencyScale * math.Log1p(float64(r.freq))
	}
	if r.literal {
		s += literalBonus
	}
	extra := utf8.RuneCountInString(r.value) - utf8.RuneCountInString(partial)
	if extra > 0 {
		s -= lengthPenalty * float64(extra)
	}

	return s
}

func rank(req Request, results [][]hit, limit int) []string {
	entries := merge(results)
	for _, r := range entries {
		r.score = score(r, req.Partial)
	}

	slices.SortStableFunc(entries, func(a, b *ranked) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		if c := cmp.Compare(a.order, b.order); c != 0 {
			return c
		}
		return cmp.Compare(a.value, b.value)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	out := make([]string, len(entries))
	for i, r := range entries {
		out[i] = r.value
	}

	return out
}
