package resolve

import (
	"errors"
	"testing"

	"github.com/VelixDevelopments/Imperat-sub001/errs"
	"github.com/VelixDevelopments/Imperat-sub001/parse"
	"github.com/VelixDevelopments/Imperat-sub001/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upperResolver struct{}

func (upperResolver) MatchesInput(raw string, _ Param) bool { return raw != "" }

func (upperResolver) Resolve(_ *Context, in parse.Input, _ Param) (any, error) {
	return "custom:" + in.Current(), nil
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterNamed("world", upperResolver{})

	tests := []struct {
		name    string
		typ     *types.Type
		wantErr bool
	}{
		{"string", types.String, false},
		{"bool", types.Bool, false},
		{"int8 structural", types.Int8, false},
		{"float64 structural", types.Float64, false},
		{"uuid", types.UUID, false},
		{"time", types.Time, false},
		{"duration", types.Duration, false},
		{"enum fallback", types.Enum("Color", "RED", "GREEN"), false},
		{"named custom", types.Custom("world"), false},
		{"unknown custom", types.Custom("entity"), true},
		{"collection of unknown", types.CollectionOf(types.Custom("entity")), true},
		{"map of known", types.MapOf(types.String, types.Int), false},
		{"map with unknown key", types.MapOf(types.Custom("entity"), types.Int), true},
		{"optional of int", types.OptionalOf(types.Int), false},
		{"async of custom", types.AsyncOf(types.Custom("world")), false},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := reg.Lookup(tt.typ)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errs.ErrUnknownType))
				assert.Nil(t, r)
				assert.False(t, reg.Has(tt.typ))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestRegistry_ExactRegistrationWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register(types.Int, upperResolver{})

	r, err := reg.Lookup(types.Int)
	require.NoError(t, err)

	v, err := r.Resolve(testContext(), parse.Single("12", nil), ParamOf("amount", types.Int))
	require.NoError(t, err)
	assert.Equal(t, "custom:12", v)

	// other widths keep the structural resolver
	r, err = reg.Lookup(types.Int16)
	require.NoError(t, err)
	v, err = r.Resolve(testContext(), parse.Single("12", nil), ParamOf("amount", types.Int16))
	require.NoError(t, err)
	assert.Equal(t, int16(12), v)
}

func TestRegistry_EnumFallback(t *testing.T) {
	reg := NewRegistry()
	color := types.Enum("Color", "RED", "GREEN", "DARK_BLUE")
	p := ParamOf("color", color)

	r, err := reg.Lookup(color)
	require.NoError(t, err)

	assert.True(t, r.MatchesInput("RED", p))
	assert.True(t, r.MatchesInput("green", p))
	assert.True(t, r.MatchesInput("dark-blue", p))
	assert.True(t, r.MatchesInput("darkBlue", p))
	assert.False(t, r.MatchesInput("purple", p))
	assert.False(t, r.MatchesInput("", p))

	v, err := r.Resolve(testContext(), parse.Single("RED", nil), p)
	require.NoError(t, err)
	assert.Equal(t, "RED", v)

	_, err = r.Resolve(testContext(), parse.Single("purple", nil), p)
	assert.True(t, errors.Is(err, errs.ErrInvalidEnum))
	assert.Contains(t, err.Error(), "RED, GREEN, DARK_BLUE")

	s, ok := r.(Suggester)
	require.True(t, ok)
	assert.Equal(t, []string{"red", "green", "dark_blue"}, s.Suggest(nil, p))
}

type level int

func TestRegistry_EnumOfGoValues(t *testing.T) {
	reg := NewRegistry()
	lv := types.EnumOf("Level", []string{"low", "high"}, map[string]level{"low": 1, "high": 2})
	p := ParamOf("level", lv)

	r, err := reg.Lookup(lv)
	require.NoError(t, err)

	v, err := r.Resolve(testContext(), parse.Single("High", nil), p)
	require.NoError(t, err)
	assert.Equal(t, level(2), v)
}
