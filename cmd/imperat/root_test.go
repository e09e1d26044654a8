package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestExec(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"give", []string{"exec", "give", "alice", "diamond", "3"}, "gave 3 diamond to alice, now holding 3", false},
		{"default amount", []string{"exec", "give", "bob", "dirt"}, "gave 1 dirt to bob, now holding 1", false},
		{"quiet after terminator", []string{"exec", "--", "give", "bob", "dirt", "-s"}, "", false},
		{"greedy alias", []string{"exec", "bc", "server", "restarts", "soon"}, "[console] server restarts soon", false},
		{"timed permission", []string{"exec", "--", "rank", "addperm", "admin", "fly", "-d", "1h"}, "granted fly to admin for 1h0m0s", false},
		{"unknown rank", []string{"exec", "rank", "addperm", "guest", "fly"}, "unknown rank guest, use -force to create it", false},
		{"schedule", []string{"exec", "schedule", "2030-01-01T12:00:00Z", "maintenance"}, `scheduled "maintenance" for 2030-01-01T12:00:00Z`, false},
		{"unknown command", []string{"exec", "fly"}, "unknown command 'fly'", true},
		{"permission denied", []string{"--grant", "none", "exec", "ban", "bob"}, "you do not have permission to use 'ban'", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			if tt.wantErr {
				assert.ErrorIs(t, err, errRejected)
			} else {
				assert.NoError(t, err)
			}
			if tt.want == "" {
				assert.Empty(t, out)
				return
			}
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestShellScript(t *testing.T) {
	script := strings.Join([]string{
		"# seed",
		"give bob dirt 2",
		"",
		"/broadcast hello there",
		"rank create builder",
		"rank info builder",
	}, "\n")

	out, err := run(t, script, "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "gave 2 dirt to bob, now holding 2")
	assert.Contains(t, out, "[console] hello there")
	assert.Contains(t, out, "created rank builder")
	assert.Contains(t, out, "builder")

	out, err = run(t, "give bob\n", "shell")
	assert.ErrorIs(t, err, errRejected)
	assert.Contains(t, out, "item")
}

func TestCommandsTable(t *testing.T) {
	out, err := run(t, "", "commands")
	require.NoError(t, err)
	assert.Contains(t, out, "rank addperm <rank> <permission> [-duration=<duration>] [-force]")
	assert.Contains(t, out, "ban <player> [reason...]")

	out, err = run(t, "", "--grant", "none", "commands")
	require.NoError(t, err)
	assert.NotContains(t, out, "ban <player>")
	assert.NotContains(t, out, "rank delperm")
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{"label", []string{"ra"}, []string{"rank"}},
		{"empty line", nil, nil},
		{"items", []string{"give", "alice", ""}, []string{"dirt", "stone", "torch", "diamond"}},
		{"value flag", []string{"rank", "addperm", "admin", "fly", "-d", ""}, []string{"5m", "1h", "30s", "24h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", append([]string{"__complete"}, tt.words...)...)
			require.NoError(t, err)
			if tt.want == nil {
				assert.NotEmpty(t, out)
				return
			}
			assert.Equal(t, strings.Join(tt.want, "\n")+"\n", out)
		})
	}
}

func TestCompletionScript(t *testing.T) {
	out, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "__complete")
	assert.Contains(t, out, "imperat")

	_, err = run(t, "", "completion", "tcsh")
	assert.Error(t, err)
}

func TestCompleter(t *testing.T) {
	d, src, err := setup(&options{user: "console", grants: []string{"*"}}, io.Discard)
	require.NoError(t, err)
	c := &completer{ctx: context.Background(), d: d, src: src}

	got, n := c.Do([]rune("ra"), 2)
	assert.Equal(t, 2, n)
	assert.Equal(t, [][]rune{[]rune("nk ")}, got)

	got, n = c.Do([]rune("give alice d"), len("give alice d"))
	assert.Equal(t, 1, n)
	assert.ElementsMatch(t, [][]rune{[]rune("irt "), []rune("iamond ")}, got)

	got, n = c.Do([]rune("/ra"), 3)
	assert.Equal(t, 2, n)
	assert.Equal(t, [][]rune{[]rune("nk ")}, got)
}

func TestCurrentWord(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"ra":          "ra",
		"/ra":         "ra",
		"rank ":       "",
		"rank ad":     "ad",
		"give /alice": "/alice",
	}
	for in, want := range tests {
		assert.Equal(t, want, currentWord(in), in)
	}
}
