package completion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerators(t *testing.T) {
	tests := []struct {
		shell    string
		contains []string
	}{
		{Bash, []string{"complete -o default -F __my_tool_complete my-tool", "my-tool __complete"}},
		{Zsh, []string{"#compdef my-tool", "compdef _my_tool my-tool"}},
		{Fish, []string{"complete -c my-tool", "commandline -opc"}},
		{PowerShell, []string{"Register-ArgumentCompleter -Native -CommandName 'my-tool'", "'__complete'"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			g := GetGenerator(tt.shell)
			require.NotNil(t, g)
			script := g.Generate("my-tool")
			for _, c := range tt.contains {
				assert.Contains(t, script, c)
			}
		})
	}

	assert.Nil(t, GetGenerator("tcsh"))
	assert.Equal(t, []string{Bash, Fish, PowerShell, Zsh}, Shells())
}

func TestPathsFor(t *testing.T) {
	home := filepath.FromSlash("/home/user")
	tests := []struct {
		goos    string
		shell   string
		primary string
		file    string
		wantErr bool
	}{
		{"linux", Bash, filepath.Join(home, ".local", "share", "bash-completion", "completions"), "tool", false},
		{"linux", Zsh, filepath.Join(home, ".zsh", "completion"), "_tool", false},
		{"freebsd", Fish, filepath.Join(home, ".config", "fish", "completions"), "tool.fish", false},
		{"darwin", PowerShell, filepath.Join(home, "Library", "PowerShell", "Completions"), "tool.ps1", false},
		{"linux", "tcsh", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.shell, func(t *testing.T) {
			p, err := pathsFor(tt.goos, home, tt.shell)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.primary, p.Primary)
			assert.NotEmpty(t, p.Fallback)
			assert.Equal(t, tt.file, p.FileName("tool"))
		})
	}
}

func TestManager_Save(t *testing.T) {
	dir := t.TempDir()
	m := &Manager{
		Shell:       Fish,
		ProgramName: "tool",
		Paths:       Paths{Primary: filepath.Join(dir, "completions"), Extension: ".fish"},
		generator:   GetGenerator(Fish),
	}

	_, err := m.Save()
	assert.Error(t, err)

	script := m.Generate()
	path, err := m.Save()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "completions", "tool.fish"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, script, string(data))
	assert.True(t, strings.HasPrefix(string(data), "# fish completion for tool"))
}
