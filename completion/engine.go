// Package completion ranks command completions and generates shell scripts calling back into
// a program for them.
//
// The Engine runs four independent strategies over a Request and merges their hits:
//
//	prefix     candidates starting with the partial token
//	fuzzy      candidates within an edit-distance similarity threshold
//	contextual values previously executed at the same position
//	literal    sub-command names from a prefix index, independent of tree depth
//
// Results are cached per request signature for a short time.
package completion

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/VelixDevelopments/Imperat-sub001/config"
	"github.com/VelixDevelopments/Imperat-sub001/logging"
	"golang.org/x/sync/errgroup"
)

// Candidate is a completion proposed by the command tree at the requested position
type Candidate struct {
	Value string
	// Literal marks sub-command names
	Literal bool
}

// Request describes what to complete
type Request struct {
	// Source identifies the requester, requests of different sources never share cache entries
	Source  string
	Command string
	// Args is the full argument view, the token being completed included when present
	Args    []string
	Index   int
	Partial string
	// Candidates lists the tree candidates in priority order, already permission filtered
	Candidates []Candidate
	// LiteralPath is set when every argument before Index is a sub-command literal. It holds the
	// command followed by those literals.
	LiteralPath []string
	// Allowed filters index entries by permission, nil allows everything
	Allowed func(permission string) bool
}

// Prior returns the arguments preceding the completed position
func (r Request) Prior() []string {
	if r.Index <= len(r.Args) {
		return r.Args[:r.Index]
	}

	return r.Args
}

func (r Request) key() string {
	var sb strings.Builder
	sb.WriteString(r.Source)
	sb.WriteByte(0)
	sb.WriteString(r.Command)
	for _, a := range r.Args {
		sb.WriteByte(0x1f)
		sb.WriteString(a)
	}
	sb.WriteByte(0)
	sb.WriteString(strconv.Itoa(r.Index))
	sb.WriteByte(0)
	sb.WriteString(r.Partial)

	return sb.String()
}

// Options configures an Engine
type Options struct {
	Suggestions   config.Suggestions
	CaseSensitive bool
	Logger        *slog.Logger
}

// Engine produces ranked completions
type Engine struct {
	opts       Options
	cache      *Cache
	tracker    *Tracker
	index      *Index
	strategies []strategy
	logger     *slog.Logger
}

// NewEngine creates an engine with its own cache, tracker and literal index
func NewEngine(opts Options) *Engine {
	if opts.Suggestions == (config.Suggestions{}) {
		opts.Suggestions = config.Default().Suggestions
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	e := &Engine{
		opts:    opts,
		cache:   NewCache(opts.Suggestions.CacheSize, opts.Suggestions.CacheTTL),
		tracker: NewTracker(),
		index:   NewIndex(opts.CaseSensitive),
		logger:  logger,
	}
	e.strategies = []strategy{
		{name: "prefix", run: e.prefix},
		{name: "fuzzy", run: e.fuzzy},
		{name: "contextual", run: e.contextual},
		{name: "literal", run: e.literal},
	}

	return e
}

// Tracker returns the usage-frequency tracker fed by executed commands
func (e *Engine) Tracker() *Tracker {
	return e.tracker
}

// Index returns the literal prefix index
func (e *Engine) Index() *Index {
	return e.index
}

// Cache returns the result cache
func (e *Engine) Cache() *Cache {
	return e.cache
}

// Complete returns the ranked completions for req. A strategy failing or panicking only loses
// its own hits.
func (e *Engine) Complete(ctx context.Context, req Request) []string {
	key := req.key()
	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	results := make([][]hit, len(e.strategies))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range e.strategies {
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					e.logger.Warn("suggestion strategy panicked", "strategy", s.name, "panic", fmt.Sprint(rec))
				}
			}()
			hits, err := s.run(gctx, req)
			if err != nil {
				e.logger.Debug("suggestion strategy failed", "strategy", s.name, "error", err)
				return nil
			}
			results[i] = hits
			return nil
		})
	}
	_ = g.Wait()

	out := rank(req, results, e.opts.Suggestions.MaxResults)
	e.cache.Add(key, out)

	return out
}
