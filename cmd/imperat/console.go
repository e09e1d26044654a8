package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/VelixDevelopments/Imperat-sub001"
	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

// console is the command source of the terminal user
type console struct {
	name   string
	grants map[string]bool

	mu  sync.Mutex
	out io.Writer
}

func newConsole(name string, out io.Writer, grants ...string) *console {
	c := &console{name: name, out: out, grants: make(map[string]bool, len(grants))}
	for _, g := range grants {
		c.grants[g] = true
	}

	return c
}

func (c *console) Name() string {
	return c.name
}

func (c *console) Reply(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, message)
}

func (c *console) ReplyError(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, errorStyle.Render(message))
}

func (c *console) has(permission string) bool {
	return c.grants["*"] || c.grants[permission]
}

func checkPermission(src imperat.Source, permission string) bool {
	c, ok := src.(*console)
	return ok && c.has(permission)
}
