package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(entries []IndexEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestIndex_Children(t *testing.T) {
	x := NewIndex(false)
	x.Insert([]string{"rank"}, "")
	x.Insert([]string{"rank", "addperm"}, "")
	x.Insert([]string{"rank", "delperm"}, "rank.del")
	x.Insert([]string{"rank", "info"}, "")
	x.Insert([]string{"rank", "addperm", "deep"}, "")
	x.Insert([]string{"ranking"}, "")

	assert.Equal(t, []string{"addperm", "delperm", "info"}, names(x.Children([]string{"rank"}, "")))
	assert.Equal(t, []string{"addperm"}, names(x.Children([]string{"rank"}, "a")))
	assert.Equal(t, []string{"addperm"}, names(x.Children([]string{"RANK"}, "AD")))
	assert.Equal(t, []string{"deep"}, names(x.Children([]string{"rank", "addperm"}, "")))
	assert.Empty(t, x.Children([]string{"rank"}, "z"))
	assert.Equal(t, []string{"rank", "ranking"}, names(x.Children(nil, "ra")))
	assert.Equal(t, 6, x.Len())
}

func TestIndex_CaseSensitive(t *testing.T) {
	x := NewIndex(true)
	x.Insert([]string{"rank", "AddPerm"}, "")

	assert.Empty(t, x.Children([]string{"rank"}, "add"))
	assert.Equal(t, []string{"AddPerm"}, names(x.Children([]string{"rank"}, "Add")))
}
