package completion

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_RecordsByPosition(t *testing.T) {
	tr := NewTracker()
	tr.Record("give", []string{"alice", "diamond", "5"})
	tr.Record("give", []string{"alice", "dirt"})
	tr.Record("GIVE", []string{"bob", "diamond"})

	assert.Equal(t, map[string]int64{"alice": 2, "bob": 1}, tr.Frequencies("give", nil))
	assert.Equal(t, map[string]int64{"diamond": 1, "dirt": 1}, tr.Frequencies("give", []string{"alice"}))
	assert.Nil(t, tr.Frequencies("give", []string{"carol"}))

	tr.Reset()
	assert.Nil(t, tr.Frequencies("give", nil))
}

func TestTracker_Concurrent(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Record("ban", []string{"mallory"})
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), tr.Frequencies("ban", nil)["mallory"])
}
