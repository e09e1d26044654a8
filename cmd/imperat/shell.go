package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/VelixDevelopments/Imperat-sub001"
	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// runShell reads command lines from in until exit. A terminal gets line editing, history and
// completion; anything else is read as a script, one command line per line.
func runShell(ctx context.Context, o *options, in io.Reader, out io.Writer) error {
	d, src, err := setup(o, out)
	if err != nil {
		return err
	}

	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return runScript(ctx, d, src, in)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptStyle.Render(src.Name()+" »") + " ",
		HistoryFile:     historyFile(),
		AutoComplete:    &completer{ctx: ctx, d: d, src: src},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           io.NopCloser(in),
		Stdout:          out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		// failures were already replied to the console
		_ = d.Execute(ctx, src, line)
	}
}

func runScript(ctx context.Context, d *imperat.Dispatcher, src imperat.Source, in io.Reader) error {
	failed := false
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := d.Execute(ctx, src, line); err != nil {
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed {
		return errRejected
	}

	return nil
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".imperat_history")
}

// completer adapts dispatcher suggestions to readline, which only appends to the word under
// the cursor. Suggestions not extending that word are dropped.
type completer struct {
	ctx context.Context
	d   *imperat.Dispatcher
	src imperat.Source
}

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	suggestions, err := c.d.Suggest(c.ctx, c.src, text)
	if err != nil {
		return nil, 0
	}

	word := []rune(currentWord(text))
	var out [][]rune
	for _, s := range suggestions {
		runes := []rune(s)
		if len(runes) < len(word) || !strings.EqualFold(string(runes[:len(word)]), string(word)) {
			continue
		}
		out = append(out, append(runes[len(word):], ' '))
	}

	return out, len(word)
}

// currentWord returns the word the cursor is in, without the leading slash of a command label
func currentWord(text string) string {
	i := strings.LastIndexFunc(text, unicode.IsSpace)
	word := text[i+1:]
	if strings.TrimLeftFunc(text[:i+1], unicode.IsSpace) == "" {
		word = strings.TrimPrefix(word, "/")
	}

	return word
}
