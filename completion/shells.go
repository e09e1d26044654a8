package completion

import (
	"fmt"
	"sort"
	"strings"
)

// Shell names supported by the script generators
const (
	Bash       = "bash"
	Zsh        = "zsh"
	Fish       = "fish"
	PowerShell = "powershell"
)

// CompleteCommand is the hidden sub-command the generated scripts invoke. It receives the
// words typed after the program name and prints one completion per line.
const CompleteCommand = "__complete"

// Generator renders the completion script of one shell. Scripts do not embed the command
// tree: they call back into the program, so completions follow whatever is registered at
// run time.
type Generator interface {
	Generate(programName string) string
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func(programName string) string

func (f GeneratorFunc) Generate(programName string) string {
	return f(programName)
}

var generators = map[string]Generator{
	Bash:       GeneratorFunc(bashScript),
	Zsh:        GeneratorFunc(zshScript),
	Fish:       GeneratorFunc(fishScript),
	PowerShell: GeneratorFunc(powerShellScript),
}

// GetGenerator returns the generator of shell, nil when unsupported
func GetGenerator(shell string) Generator {
	return generators[strings.ToLower(shell)]
}

// Shells lists the supported shells
func Shells() []string {
	out := make([]string, 0, len(generators))
	for name := range generators {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// identifier turns a program name into something usable as a shell function name
func identifier(programName string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, programName)
}

func bashScript(programName string) string {
	return fmt.Sprintf(`#!/bin/bash
# bash completion for %[1]s

__%[2]s_complete() {
    local IFS=$'\n'
    local words=("${COMP_WORDS[@]:1:COMP_CWORD}")
    COMPREPLY=( $(%[1]s %[3]s "${words[@]}" 2>/dev/null) )
}

complete -o default -F __%[2]s_complete %[1]s
`, programName, identifier(programName), CompleteCommand)
}

func zshScript(programName string) string {
	return fmt.Sprintf(`#compdef %[1]s

_%[2]s() {
    local -a completions
    local -a words_before=("${(@)words[2,CURRENT]}")
    completions=("${(@f)$(%[1]s %[3]s "${words_before[@]}" 2>/dev/null)}")
    if (( ${#completions} )); then
        compadd -Q -- "${completions[@]}"
    fi
}

compdef _%[2]s %[1]s
`, programName, identifier(programName), CompleteCommand)
}

func fishScript(programName string) string {
	return fmt.Sprintf(`# fish completion for %[1]s

function __%[2]s_complete
    set -l tokens (commandline -opc)
    set -e tokens[1]
    %[1]s %[3]s $tokens (commandline -ct | string collect -a) 2>/dev/null
end

complete -c %[1]s -f -a '(__%[2]s_complete)'
`, programName, identifier(programName), CompleteCommand)
}

func powerShellScript(programName string) string {
	return fmt.Sprintf(`# powershell completion for %[1]s

Register-ArgumentCompleter -Native -CommandName '%[1]s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $words = @($commandAst.CommandElements | Select-Object -Skip 1 | ForEach-Object { $_.ToString() })
    if ($wordToComplete -eq '') {
        $words += ''
    }

    & '%[1]s' '%[2]s' @words 2>$null | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
    }
}
`, programName, CompleteCommand)
}
