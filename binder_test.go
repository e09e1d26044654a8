package imperat

import (
	"context"
	"testing"

	"github.com/VelixDevelopments/Imperat-sub001/errs"
	"github.com/VelixDevelopments/Imperat-sub001/logging"
	"github.com/VelixDevelopments/Imperat-sub001/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shapeDispatcher(t *testing.T, rec *recorder) *Dispatcher {
	t.Helper()
	cmd := NewCommand("shape",
		WithUsage(MustUsage(
			WithParams(
				ValueFlag("width", types.Int, WithAliases("w"), WithDefault("1")),
				ValueFlag("height", types.Int, WithAliases("h"), WithDefault("1")),
				ValueFlag("label", types.String, WithAliases("l")),
				Switch("verbose", WithAliases("v")),
			),
			WithExecutor(rec.exec("shape")))))
	d, err := New(WithLogger(logging.Discard()), WithCommand(cmd))
	require.NoError(t, err)

	return d
}

func TestBinding_ShortHandGroups(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		width   int
		height  int
		verbose bool
	}{
		{"defaults", "shape", 1, 1, false},
		{"value group", "shape -wh 3", 3, 3, false},
		{"inline value group", "shape -wh=4", 4, 4, false},
		{"single alias", "shape -w 2 -v", 2, 1, true},
		{"explicit switch value", "shape -v=false -h 5", 1, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			d := shapeDispatcher(t, rec)
			require.NoError(t, d.Execute(context.Background(), newSource("alice"), tt.line))

			ctx := rec.context()
			require.NotNil(t, ctx)
			w, _ := ctx.GetInt("width")
			h, _ := ctx.GetInt("height")
			assert.Equal(t, tt.width, w)
			assert.Equal(t, tt.height, h)
			assert.Equal(t, tt.verbose, ctx.Switch("verbose"))
		})
	}
}

func TestBinding_FlagErrors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"mixed value types", "shape -wl 3", errs.ErrShortHandFlagTypes},
		{"switch among values", "shape -wv 3", errs.ErrShortHandFlag},
		{"unknown group member", "shape -wx 3", errs.ErrUnknownFlag},
		{"missing value", "shape -w", errs.ErrFlagExpectsValue},
		{"flag instead of value", "shape -w -v", errs.ErrFlagExpectsValue},
		{"not a number", "shape -h tall", errs.ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			d := shapeDispatcher(t, rec)
			err := d.Execute(context.Background(), newSource("alice"), tt.line)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, rec.calls)
		})
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "next-handler", NextHandler.String())
	assert.Equal(t, "next-iteration", NextIteration.String())
	assert.Equal(t, "terminate", Terminate.String())
	assert.Equal(t, "failure", Failure.String())
}
