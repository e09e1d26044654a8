package main

import (
	"github.com/VelixDevelopments/Imperat-sub001"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// usageTable lists the runnable usages src may invoke
func usageTable(d *imperat.Dispatcher, src imperat.Source) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("Usage"),
		text.FgHiCyan.Sprint("Description"),
	})

	for _, cmd := range d.Commands() {
		if !visible(src, cmd) {
			continue
		}
		for _, u := range cmd.Usages() {
			if u.Executor() == nil || !visible(src, u.Command()) {
				continue
			}
			if p := u.Permission(); p != "" && !checkPermission(src, p) {
				continue
			}
			desc := u.Description()
			if desc == "" {
				desc = u.Command().Description()
			}
			t.AppendRow(table.Row{d.Renderer().UsageLine(u), desc})
		}
	}

	return t.Render()
}

// visible reports whether src may run cmd and every command above it
func visible(src imperat.Source, cmd *imperat.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if p := c.Permission(); p != "" && !checkPermission(src, p) {
			return false
		}
	}

	return true
}
