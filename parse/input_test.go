package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens_Navigation(t *testing.T) {
	cursor := &Cursor{}
	in := NewTokens([]string{"a", "-f", "c"}, cursor, nil)

	assert.Equal(t, "a", in.Current())
	assert.True(t, in.HasNext())

	next, ok := in.Peek()
	assert.True(t, ok)
	assert.Equal(t, "-f", next)
	assert.True(t, in.IsFlag(next))
	assert.Equal(t, 0, in.Position())

	next, ok = in.Next()
	assert.True(t, ok)
	assert.Equal(t, "-f", next)
	assert.Equal(t, 1, cursor.Raw)

	cursor.AdvanceRaw()
	assert.Equal(t, "c", in.Current())
	assert.False(t, in.HasNext())

	_, ok = in.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, in.Position())

	cursor.AdvanceRaw()
	assert.Equal(t, "", in.Current())
	assert.Equal(t, 3, in.Len())
}

func TestCursor_Advance(t *testing.T) {
	c := Cursor{}
	c.Advance()
	c.AdvanceParam()
	c.AdvanceRaw()
	c.AdvanceRaw()

	assert.Equal(t, Cursor{Param: 2, Raw: 3}, c)
}

func TestSingle(t *testing.T) {
	in := Single("42", nil)

	assert.Equal(t, "42", in.Current())
	assert.False(t, in.HasNext())
	assert.Equal(t, []string{"42"}, in.Raw())
}
