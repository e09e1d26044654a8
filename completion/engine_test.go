package completion

import (
	"context"
	"testing"
	"time"

	"github.com/VelixDevelopments/Imperat-sub001/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates(values ...string) []Candidate {
	out := make([]Candidate, len(values))
	for i, v := range values {
		out[i] = Candidate{Value: v}
	}
	return out
}

func newTestEngine() *Engine {
	s := config.Default().Suggestions
	s.CacheTTL = time.Minute
	return NewEngine(Options{Suggestions: s})
}

func TestEngine_Prefix(t *testing.T) {
	e := newTestEngine()
	got := e.Complete(context.Background(), Request{
		Source:     "console",
		Command:    "rank",
		Args:       []string{"ad"},
		Partial:    "ad",
		Candidates: candidates("addperm", "delperm", "admin"),
	})

	require.NotEmpty(t, got)
	assert.ElementsMatch(t, []string{"addperm", "admin"}, got[:2])
	assert.NotContains(t, got, "delperm")
}

func TestEngine_ExactAndLengthOrdering(t *testing.T) {
	e := newTestEngine()
	got := e.Complete(context.Background(), Request{
		Command:    "give",
		Args:       []string{"stone"},
		Partial:    "stone",
		Candidates: candidates("stone_bricks", "stone"),
	})

	assert.Equal(t, []string{"stone", "stone_bricks"}, got)
}

func TestEngine_FuzzyTolerance(t *testing.T) {
	e := newTestEngine()
	got := e.Complete(context.Background(), Request{
		Command:    "rank",
		Args:       []string{"adperm"},
		Partial:    "adperm",
		Candidates: candidates("addperm", "info"),
	})

	assert.Equal(t, []string{"addperm"}, got)
}

func TestEngine_FuzzyNeedsMinimumLength(t *testing.T) {
	e := newTestEngine()
	got := e.Complete(context.Background(), Request{
		Command:    "rank",
		Args:       []string{"x"},
		Partial:    "x",
		Candidates: candidates("addperm", "info"),
	})

	assert.Empty(t, got)
}

func TestEngine_EmptyPartialKeepsCandidateOrder(t *testing.T) {
	e := newTestEngine()
	got := e.Complete(context.Background(), Request{
		Command:    "rank",
		Args:       []string{""},
		Candidates: candidates("addperm", "delperm", "info"),
	})

	// equal lengths tie on score, info is shorter
	assert.Equal(t, []string{"info", "addperm", "delperm"}, got)
}

func TestEngine_FrequencyBoost(t *testing.T) {
	e := newTestEngine()
	for range 3 {
		e.Tracker().Record("give", []string{"alice", "diamond"})
	}

	got := e.Complete(context.Background(), Request{
		Command:    "give",
		Args:       []string{"alice", "d"},
		Index:      1,
		Partial:    "d",
		Candidates: candidates("dirt", "diamond"),
	})

	require.Len(t, got, 2)
	assert.Equal(t, "diamond", got[0])
}

func TestEngine_FrequencyOnlyReweightsCandidates(t *testing.T) {
	e := newTestEngine()
	e.Tracker().Record("rank", []string{"delperm", "admin"})
	e.Tracker().Record("rank", []string{"ADDPERM", "admin"})

	got := e.Complete(context.Background(), Request{
		Command:    "rank",
		Args:       []string{""},
		Candidates: candidates("info", "addperm"),
	})

	assert.Equal(t, []string{"addperm", "info"}, got)
}

func TestEngine_LiteralIndex(t *testing.T) {
	e := newTestEngine()
	e.Index().Insert([]string{"rank", "addperm"}, "")
	e.Index().Insert([]string{"rank", "admin"}, "rank.admin")
	e.Index().Insert([]string{"rank", "delperm"}, "")

	req := Request{
		Command:     "rank",
		Args:        []string{"ad"},
		Partial:     "ad",
		LiteralPath: []string{"rank"},
		Allowed:     func(p string) bool { return p != "rank.admin" },
	}

	assert.Equal(t, []string{"addperm"}, e.Complete(context.Background(), req))
}

func TestEngine_MaxResults(t *testing.T) {
	s := config.Default().Suggestions
	s.MaxResults = 2
	e := NewEngine(Options{Suggestions: s})

	got := e.Complete(context.Background(), Request{
		Command:    "give",
		Args:       []string{""},
		Candidates: candidates("a", "b", "c", "d"),
	})

	assert.Len(t, got, 2)
}

func TestEngine_Deterministic(t *testing.T) {
	req := Request{
		Command:    "rank",
		Args:       []string{"perm"},
		Partial:    "perm",
		Candidates: candidates("addperm", "delperm", "permission", "perms"),
	}

	first := newTestEngine().Complete(context.Background(), req)
	for range 20 {
		assert.Equal(t, first, newTestEngine().Complete(context.Background(), req))
	}
}

func TestEngine_CachesPerSignature(t *testing.T) {
	e := newTestEngine()
	req := Request{Source: "a", Command: "rank", Args: []string{""}, Candidates: candidates("info")}

	assert.Equal(t, []string{"info"}, e.Complete(context.Background(), req))
	assert.Equal(t, 1, e.Cache().Len())

	// cached result wins over changed candidates for the same signature
	req.Candidates = candidates("other")
	assert.Equal(t, []string{"info"}, e.Complete(context.Background(), req))

	req.Source = "b"
	assert.Equal(t, []string{"other"}, e.Complete(context.Background(), req))
}

func TestEngine_CacheExpires(t *testing.T) {
	s := config.Default().Suggestions
	s.CacheTTL = 20 * time.Millisecond
	e := NewEngine(Options{Suggestions: s})
	req := Request{Command: "rank", Args: []string{""}, Candidates: candidates("info")}

	e.Complete(context.Background(), req)
	req.Candidates = candidates("other")
	assert.Eventually(t, func() bool {
		got := e.Complete(context.Background(), req)
		return len(got) == 1 && got[0] == "other"
	}, time.Second, 10*time.Millisecond)
}

func TestEngine_StrategyPanicIsContained(t *testing.T) {
	e := newTestEngine()
	e.strategies = append(e.strategies, strategy{name: "broken", run: func(context.Context, Request) ([]hit, error) {
		panic("boom")
	}})

	var got []string
	assert.NotPanics(t, func() {
		got = e.Complete(context.Background(), Request{
			Command:    "rank",
			Args:       []string{"in"},
			Partial:    "in",
			Candidates: candidates("info"),
		})
	})
	assert.Equal(t, []string{"info"}, got)
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		partial   string
		candidate string
		min       float64
		max       float64
	}{
		{"addperm", "addperm", 1, 1},
		{"adperm", "addperm", 0.8, 0.9},
		{"add", "addperm", 1, 1},
		{"xyz", "addperm", 0, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.partial+"/"+tt.candidate, func(t *testing.T) {
			s := similarity(tt.partial, tt.candidate)
			assert.GreaterOrEqual(t, s, tt.min)
			assert.LessOrEqual(t, s, tt.max)
		})
	}
}
