package completion

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Paths are the directories a completion script of one shell is installed into
type Paths struct {
	Primary  string
	Fallback string
	// Prefix and Extension decorate the program name to form the file name
	Prefix    string
	Extension string
}

// FileName returns the script file name for programName
func (p Paths) FileName(programName string) string {
	return p.Prefix + programName + p.Extension
}

type pathRule struct {
	primary  []string
	fallback []string
}

var (
	bashRule = pathRule{
		primary:  []string{".local", "share", "bash-completion", "completions"},
		fallback: []string{".bash_completion.d"},
	}
	zshRule = pathRule{
		primary:  []string{".zsh", "completion"},
		fallback: []string{".zfunc"},
	}
	fishRule = pathRule{
		primary:  []string{".config", "fish", "completions"},
		fallback: []string{".local", "share", "fish", "completions"},
	}
)

// pathRules maps GOOS then shell to the user-local install directories, relative to home.
// The "" GOOS entry applies to every system without its own entry.
var pathRules = map[string]map[string]pathRule{
	"": {
		Bash: bashRule,
		Zsh:  zshRule,
		Fish: fishRule,
		PowerShell: {
			primary:  []string{".config", "powershell", "Completions"},
			fallback: []string{".local", "share", "powershell", "Completions"},
		},
	},
	"darwin": {
		Bash: bashRule,
		Zsh:  zshRule,
		Fish: fishRule,
		PowerShell: {
			primary:  []string{"Library", "PowerShell", "Completions"},
			fallback: []string{".config", "powershell", "Completions"},
		},
	},
	"windows": {
		Bash: bashRule,
		Zsh:  zshRule,
		Fish: fishRule,
		PowerShell: {
			primary:  []string{"Documents", "PowerShell", "Completions"},
			fallback: []string{".config", "powershell", "Completions"},
		},
	},
}

var fileConventions = map[string]Paths{
	Bash:       {},
	Zsh:        {Prefix: "_"},
	Fish:       {Extension: ".fish"},
	PowerShell: {Extension: ".ps1"},
}

func isPowerShellCore() bool {
	_, err := exec.LookPath("pwsh")
	return err == nil
}

func pathsFor(goos, home, shell string) (Paths, error) {
	rules, ok := pathRules[goos]
	if !ok {
		rules = pathRules[""]
	}
	rule, ok := rules[shell]
	if !ok {
		return Paths{}, fmt.Errorf("unsupported shell: %s", shell)
	}

	if goos == "windows" && shell == PowerShell && !isPowerShellCore() {
		rule = pathRule{
			primary:  []string{"Documents", "WindowsPowerShell", "Completions"},
			fallback: []string{".config", "WindowsPowerShell", "Completions"},
		}
	}

	p := fileConventions[shell]
	p.Primary = filepath.Join(append([]string{home}, rule.primary...)...)
	p.Fallback = filepath.Join(append([]string{home}, rule.fallback...)...)

	return p, nil
}

// PathsFor returns the install directories of shell for the current user and system
func PathsFor(shell string) (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("couldn't get user home directory: %w", err)
	}

	return pathsFor(runtime.GOOS, home, shell)
}
