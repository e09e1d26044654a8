package resolve

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/VelixDevelopments/Imperat-sub001/errs"
	"github.com/VelixDevelopments/Imperat-sub001/parse"
	"github.com/VelixDevelopments/Imperat-sub001/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSource string

func (s testSource) Name() string { return string(s) }

func testContext() *Context {
	return NewContext(context.Background(), testSource("console"))
}

func resolveOne(t *testing.T, typ *types.Type, raw string) (any, error) {
	t.Helper()
	r, err := NewRegistry().Lookup(typ)
	require.NoError(t, err)

	return r.Resolve(testContext(), parse.Single(raw, nil), ParamOf("value", typ))
}

func TestBuiltin_Resolve(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		typ     *types.Type
		raw     string
		want    any
		wantErr error
	}{
		{"string", types.String, "hello", "hello", nil},
		{"bool true", types.Bool, "true", true, nil},
		{"bool yes", types.Bool, "YES", true, nil},
		{"bool off", types.Bool, "off", false, nil},
		{"bool invalid", types.Bool, "maybe", nil, errs.ErrInvalidBoolean},
		{"int", types.Int, "42", 42, nil},
		{"int hex", types.Int, "0x10", 16, nil},
		{"int negative", types.Int, "-7", -7, nil},
		{"int invalid", types.Int, "abc", nil, errs.ErrInvalidNumber},
		{"int from float", types.Int, "1.5", nil, errs.ErrInvalidNumber},
		{"int8 max", types.Int8, "127", int8(127), nil},
		{"int8 overflow", types.Int8, "128", nil, errs.ErrNumberOutOfRange},
		{"uint8", types.Uint8, "255", uint8(255), nil},
		{"uint negative", types.Uint, "-1", nil, errs.ErrNumberOutOfRange},
		{"uint64 max", types.Uint64, "18446744073709551615", uint64(18446744073709551615), nil},
		{"float32", types.Float32, "1.5", float32(1.5), nil},
		{"float64 from int", types.Float64, "3", float64(3), nil},
		{"uuid", types.UUID, id.String(), id, nil},
		{"uuid invalid", types.UUID, "not-a-uuid", nil, errs.ErrInvalidUUID},
		{"duration", types.Duration, "1h30m", 90 * time.Minute, nil},
		{"duration invalid", types.Duration, "soon", nil, errs.ErrInvalidDuration},
		{"time invalid", types.Time, "yesterday-ish", nil, errs.ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveOne(t, tt.typ, tt.raw)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuiltin_Time(t *testing.T) {
	got, err := resolveOne(t, types.Time, "2024-03-01")
	require.NoError(t, err)

	ts, ok := got.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, time.March, ts.Month())
}

func TestBuiltin_MatchesInputNeverPanics(t *testing.T) {
	reg := NewRegistry()
	all := []*types.Type{
		types.String, types.Bool, types.Int, types.Int8, types.Uint16, types.Float32,
		types.UUID, types.Time, types.Duration, types.Enum("Color", "RED"),
		types.ArrayOf(types.Int), types.CollectionOf(types.Bool), types.MapOf(types.String, types.Int),
		types.OptionalOf(types.Int), types.AsyncOf(types.UUID),
	}
	inputs := []string{"", "-", "=", "==", ",", "\x00", "9999999999999999999999", "RED", "a=1"}

	for _, typ := range all {
		r, err := reg.Lookup(typ)
		require.NoError(t, err)
		for _, in := range inputs {
			assert.NotPanics(t, func() { r.MatchesInput(in, ParamOf("v", typ)) }, "%s %q", typ, in)
		}
	}
}
