// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package imperat provides hierarchical command dispatch for text command lines.
//
// Commands declare one or more usages, each an ordered list of parameters bound to an
// executor. Sub-commands attach below their parent either directly after its name or after
// the parameters of its main usage:
//
//	rank addperm <rank> <permission> [-duration=<duration>] [-force]
//	rank <rank> info
//
// At registration every usage reachable through a root command is inserted into one tree
// in which usages sharing a parameter prefix share nodes. Dispatching a line walks that tree
// to pick a usage, binds the raw tokens to its parameters through a chain of handlers and
// runs the executor. The same tree drives ranked completions.
package imperat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/VelixDevelopments/Imperat-sub001/completion"
	"github.com/VelixDevelopments/Imperat-sub001/config"
	"github.com/VelixDevelopments/Imperat-sub001/errs"
	"github.com/VelixDevelopments/Imperat-sub001/i18n"
	"github.com/VelixDevelopments/Imperat-sub001/parse"
	"github.com/VelixDevelopments/Imperat-sub001/resolve"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/language"
)

// Dispatcher owns the registered commands and routes command lines to their executors. It is
// safe for concurrent use once commands are registered.
type Dispatcher struct {
	settings    config.Settings
	registry    *resolve.Registry
	logger      *slog.Logger
	bundle      *i18n.Bundle
	lang        language.Tag
	permissions PermissionChecker
	renderer    Renderer
	flags       *parse.FlagMatcher
	handlers    []ParameterHandler
	engine      *completion.Engine

	mu       sync.RWMutex
	commands *orderedmap.OrderedMap[string, *Command]
	labels   map[string]*Command

	cooldowns sync.Map // cooldownKey -> time.Time
	now       func() time.Time
	pending   []*Command
}

// New creates a dispatcher configured by configs
func New(configs ...ConfigureDispatcherFunc) (*Dispatcher, error) {
	d := &Dispatcher{
		settings: config.Default(),
		registry: resolve.NewRegistry(),
		bundle:   i18n.Default(),
		lang:     language.English,
		handlers: defaultHandlers,
		commands: orderedmap.New[string, *Command](),
		labels:   make(map[string]*Command),
		now:      time.Now,
	}

	var err error
	for _, cfg := range configs {
		cfg(d, &err)
		if err != nil {
			return nil, err
		}
	}
	d.init()

	for _, cmd := range d.pending {
		if err := d.Register(cmd); err != nil {
			return nil, err
		}
	}
	d.pending = nil

	return d, nil
}

// Register validates cmd, flattens its usages and those of its sub-commands and builds its
// matching tree. The command becomes reachable by its name and aliases.
func (d *Dispatcher) Register(cmd *Command) error {
	if cmd == nil {
		return errs.ErrNilCommand
	}
	if strings.TrimSpace(cmd.name) == "" {
		return errs.ErrEmptyCommandName
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, name := range cmd.Names() {
		if _, taken := d.labels[d.labelKey(name)]; taken {
			return errs.ErrDuplicateCommand.WithArgs(name)
		}
	}

	tree, usages, err := d.build(cmd)
	if err != nil {
		d.logger.Error("command registration failed", "command", cmd.name, "kind", errs.KindOf(err).String(), "error", err)
		return err
	}
	cmd.tree = tree
	cmd.registered = usages

	d.commands.Set(cmd.name, cmd)
	for _, name := range cmd.Names() {
		d.labels[d.labelKey(name)] = cmd
	}
	d.indexLiterals(cmd)
	d.engine.Cache().Purge()
	d.logger.Debug("command registered", "command", cmd.name, "usages", len(usages))

	return nil
}

// Command returns the root command registered under label, a name or an alias
func (d *Dispatcher) Command(label string) (*Command, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	cmd, ok := d.labels[d.labelKey(label)]

	return cmd, ok
}

// Commands returns the root commands in registration order
func (d *Dispatcher) Commands() []*Command {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*Command, 0, d.commands.Len())
	for pair := d.commands.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}

	return out
}

// Registry returns the type resolver registry
func (d *Dispatcher) Registry() *resolve.Registry {
	return d.registry
}

func (d *Dispatcher) Settings() config.Settings {
	return d.settings
}

func (d *Dispatcher) Logger() *slog.Logger {
	return d.logger
}

func (d *Dispatcher) Renderer() Renderer {
	return d.renderer
}

// Engine returns the completion engine
func (d *Dispatcher) Engine() *completion.Engine {
	return d.engine
}

// Execute tokenizes line and dispatches it. A leading slash is ignored. Errors are replied to
// src: user errors verbatim, execution errors as a generic notice after being logged.
func (d *Dispatcher) Execute(ctx context.Context, src Source, line string) error {
	label, args, err := d.split(line)
	if err != nil {
		return d.fail(src, "", err)
	}

	return d.dispatch(ctx, src, label, args, line)
}

// Dispatch runs the command called label with already split arguments
func (d *Dispatcher) Dispatch(ctx context.Context, src Source, label string, args []string) error {
	return d.dispatch(ctx, src, label, args, "")
}

// Resolve matches and binds line without running the executor, cooldowns and usage tracking
// are left untouched
func (d *Dispatcher) Resolve(ctx context.Context, src Source, line string) (*ResolvedContext, error) {
	label, args, err := d.split(line)
	if err != nil {
		return nil, err
	}

	return d.resolve(ctx, src, label, args, line)
}

func (d *Dispatcher) dispatch(ctx context.Context, src Source, label string, args []string, line string) error {
	rc, err := d.resolve(ctx, src, label, args, line)
	if err == nil {
		err = d.checkCooldown(src, rc.usage)
	}
	if err == nil {
		err = d.execute(rc)
	}
	if err != nil {
		return d.fail(src, label, err)
	}

	d.engine.Tracker().Record(rc.root.name, args)
	return nil
}

// permitted consults the permission checker, empty permissions always pass
func (d *Dispatcher) permitted(src Source, permission string) bool {
	if permission == "" || d.permissions == nil {
		return true
	}

	return d.permissions(src, permission)
}

// Message renders err in the dispatcher's language
func (d *Dispatcher) Message(err error) string {
	var tr i18n.TranslatableError
	if errors.As(err, &tr) {
		return tr.Format(i18n.NewLanguageProvider(d.bundle, d.lang))
	}

	return err.Error()
}
