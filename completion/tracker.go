package completion

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Tracker counts argument values by command and preceding arguments. It is safe for
// concurrent use.
type Tracker struct {
	positions sync.Map // position key -> *sync.Map[value]*atomic.Int64
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

func positionKey(command string, prior []string) string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(command))
	sb.WriteByte(0)
	sb.WriteString(strconv.Itoa(len(prior)))
	for _, p := range prior {
		sb.WriteByte(0x1f)
		sb.WriteString(p)
	}

	return sb.String()
}

// Record counts every argument of an executed command at its position
func (t *Tracker) Record(command string, args []string) {
	for i, value := range args {
		if value == "" {
			continue
		}
		values, _ := t.positions.LoadOrStore(positionKey(command, args[:i]), &sync.Map{})
		counter, _ := values.(*sync.Map).LoadOrStore(value, &atomic.Int64{})
		counter.(*atomic.Int64).Add(1)
	}
}

// Frequencies returns the counted values following prior for command
func (t *Tracker) Frequencies(command string, prior []string) map[string]int64 {
	values, ok := t.positions.Load(positionKey(command, prior))
	if !ok {
		return nil
	}

	out := make(map[string]int64)
	values.(*sync.Map).Range(func(k, v any) bool {
		out[k.(string)] = v.(*atomic.Int64).Load()
		return true
	})

	return out
}

// Reset forgets all counts
func (t *Tracker) Reset() {
	t.positions.Clear()
}
