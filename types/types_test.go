package types

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  *Type
		want string
	}{
		{String, "string"},
		{Int64, "int64"},
		{Enum("Color", "red"), "Color"},
		{Custom("world"), "world"},
		{ArrayOf(Int), "int[]"},
		{CollectionOf(UUID), "collection<uuid>"},
		{MapOf(String, Float64), "map<string,float64>"},
		{OptionalOf(Duration), "optional<duration>"},
		{AsyncOf(Custom("player")), "async<player>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestType_Equal(t *testing.T) {
	assert.True(t, Int.Equal(Int))
	assert.True(t, ArrayOf(Int).Equal(ArrayOf(Int)))
	assert.False(t, ArrayOf(Int).Equal(ArrayOf(Int8)))
	assert.False(t, MapOf(String, Int).Equal(MapOf(Int, Int)))
	assert.True(t, Custom("world").Equal(Custom("world")))
	assert.False(t, Custom("world").Equal(String))
	assert.False(t, Int.Equal(nil))
}

func TestKind_Classification(t *testing.T) {
	assert.True(t, KindInt8.IsNumeric())
	assert.True(t, KindFloat32.IsNumeric())
	assert.False(t, KindFloat32.IsInteger())
	assert.True(t, KindUint16.IsUnsigned())
	assert.False(t, KindInt16.IsUnsigned())
	assert.False(t, KindEnum.IsNumeric())
	assert.True(t, KindMap.IsComposite())
	assert.False(t, KindUUID.IsComposite())
	assert.Equal(t, 16, KindUint16.BitSize())
	assert.Equal(t, 0, KindInt.BitSize())
}

func TestEnum_Constants(t *testing.T) {
	color := Enum("Color", "red", "Green")
	assert.Equal(t, []string{"RED", "GREEN"}, color.Constants())

	v, ok := color.EnumValue("GREEN")
	assert.True(t, ok)
	assert.Equal(t, "GREEN", v)

	_, ok = color.EnumValue("green")
	assert.False(t, ok)
	assert.Nil(t, String.Constants())
}

func TestFuture(t *testing.T) {
	f := NewFuture()
	assert.False(t, f.Done())

	go f.Complete(3, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := f.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.True(t, f.Done())
	assert.False(t, f.Cancel())
	assert.False(t, f.Cancelled())
}

func TestFuture_Cancel(t *testing.T) {
	f := NewFuture()
	assert.True(t, f.Cancel())
	assert.True(t, f.Cancelled())

	f.Complete(1, nil)
	_, err := f.Await(context.Background())
	assert.True(t, errors.Is(err, ErrFutureCancelled))
}

func TestFuture_AwaitContextDone(t *testing.T) {
	f := NewFuture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
