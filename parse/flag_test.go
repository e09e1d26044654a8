package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagMatcher_IsFlag(t *testing.T) {
	m := DefaultFlags()
	tests := []struct {
		token string
		want  bool
	}{
		{"-force", true},
		{"--force", true},
		{"-f", true},
		{"-sf", true},
		{"-duration=1h", true},
		{"--duration=", true},
		{"-", false},
		{"--", false},
		{"---force", false},
		{"-5", false},
		{"-1.5", false},
		{"force", false},
		{"build.allow", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, m.IsFlag(tt.token))
		})
	}
}

func TestFlagMatcher_Split(t *testing.T) {
	m := DefaultFlags()

	ft, ok := m.Split("--duration=1h30m")
	assert.True(t, ok)
	assert.Equal(t, "duration", ft.Name)
	assert.Equal(t, "1h30m", ft.Value)
	assert.True(t, ft.HasValue)
	assert.True(t, ft.Long)

	ft, ok = m.Split("-sf")
	assert.True(t, ok)
	assert.Equal(t, "sf", ft.Name)
	assert.False(t, ft.HasValue)
	assert.False(t, ft.Long)

	ft, ok = m.Split("-reason=")
	assert.True(t, ok)
	assert.True(t, ft.HasValue)
	assert.Empty(t, ft.Value)

	_, ok = m.Split("-42")
	assert.False(t, ok)
}

func TestFlagMatcher_CustomMarker(t *testing.T) {
	m := NewFlagMatcher('+')

	assert.True(t, m.IsFlag("+silent"))
	assert.True(t, m.IsFlag("++silent"))
	assert.False(t, m.IsFlag("-silent"))
	assert.Equal(t, "+silent", m.Canonical("silent"))
	assert.Equal(t, "+", m.Marker())
}
