package imperat

import (
	"testing"

	"github.com/VelixDevelopments/Imperat-sub001/types"
	"github.com/stretchr/testify/assert"
)

func TestRenderer_Placeholder(t *testing.T) {
	r := NewRenderer('-')
	tests := []struct {
		param *Parameter
		want  string
	}{
		{Required("player", types.String), "<player>"},
		{Optional("amount", types.Int), "[amount]"},
		{GreedyText("message"), "<message...>"},
		{Optional("reason", types.String, AsGreedy()), "[reason...]"},
		{literal(NewCommand("addperm")), "addperm"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Placeholder(tt.param))
		})
	}
}

func TestRenderer_FlagUsage(t *testing.T) {
	assert.Equal(t, "[-silent]", NewRenderer('-').FlagUsage(Switch("silent")))
	assert.Equal(t, "[+duration=<duration>]", NewRenderer('+').FlagUsage(ValueFlag("duration", types.Duration)))
}

func TestRenderer_Usage(t *testing.T) {
	d := newTestDispatcher(t, &recorder{}, WithFlagMarker('+'))
	give, _ := d.Command("give")
	u := give.Usages()[1]
	assert.Same(t, give.MainUsage(), u.declared)

	assert.Equal(t, "give <player> <item> [amount]", d.Renderer().UsagePath(u))
	assert.Equal(t,
		"give <player> <item> [amount] [+enchant=<string>] [+level=<string>] [+silent] [+notify]",
		d.Renderer().UsageLine(u))
	assert.Equal(t, "give <player> <item> [amount]", u.String())

	unbound := MustUsage(WithParams(Required("x", types.Int), Optional("y", types.Int)))
	assert.Equal(t, "<x> [y]", unbound.String())
}
