package completion

import (
	"strings"
	"sync"

	"github.com/tidwall/btree"
)

const pathSeparator = "\x1f"

// IndexEntry is a literal known to the index
type IndexEntry struct {
	Name       string
	Permission string
	Depth      int
}

// Index is an ordered map of literal paths. Looking up the children of a path whose last
// element is partially typed is a range scan.
type Index struct {
	mu            sync.RWMutex
	entries       *btree.Map[string, IndexEntry]
	caseSensitive bool
}

// NewIndex creates an empty index
func NewIndex(caseSensitive bool) *Index {
	return &Index{entries: btree.NewMap[string, IndexEntry](0), caseSensitive: caseSensitive}
}

func (x *Index) key(path []string) string {
	k := strings.Join(path, pathSeparator)
	if x.caseSensitive {
		return k
	}

	return strings.ToLower(k)
}

// Insert records the literal path, its last element being the literal name. The root command
// sits at depth 0.
func (x *Index) Insert(path []string, permission string) {
	if len(path) == 0 {
		return
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	x.entries.Set(x.key(path), IndexEntry{
		Name:       path[len(path)-1],
		Permission: permission,
		Depth:      len(path) - 1,
	})
}

// Children returns the literals directly below prefix whose name starts with partial, in key
// order
func (x *Index) Children(prefix []string, partial string) []IndexEntry {
	pivot := x.key(append(append([]string(nil), prefix...), partial))
	parent := ""
	if len(prefix) > 0 {
		parent = x.key(prefix) + pathSeparator
	}
	depth := len(prefix)

	x.mu.RLock()
	defer x.mu.RUnlock()

	var out []IndexEntry
	x.entries.Ascend(pivot, func(k string, e IndexEntry) bool {
		if !strings.HasPrefix(k, pivot) {
			return false
		}
		if strings.HasPrefix(k, parent) && e.Depth == depth {
			out = append(out, e)
		}
		return true
	})

	return out
}

// Len returns the number of indexed literals
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return x.entries.Len()
}
