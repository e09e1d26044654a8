package imperat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/VelixDevelopments/Imperat-sub001/completion"
	"github.com/VelixDevelopments/Imperat-sub001/errs"
	"github.com/VelixDevelopments/Imperat-sub001/logging"
	"github.com/VelixDevelopments/Imperat-sub001/parse"
	"github.com/VelixDevelopments/Imperat-sub001/resolve"
)

// init fills what configs left unset
func (d *Dispatcher) init() {
	if d.logger == nil {
		d.logger = logging.New(logging.Options{
			Level: d.settings.Logging.Level,
			JSON:  d.settings.Logging.JSON,
			File:  d.settings.Logging.File,
		})
	}
	d.flags = parse.NewFlagMatcher(d.settings.Marker())
	delimiters := d.settings.ListDelimiters
	if delimiters != "" {
		d.registry.SetListDelimiter(func(r rune) bool { return strings.ContainsRune(delimiters, r) })
	}
	if d.renderer == nil {
		d.renderer = NewRenderer(d.settings.Marker())
	}
	d.engine = completion.NewEngine(completion.Options{
		Suggestions:   d.settings.Suggestions,
		CaseSensitive: d.settings.CaseSensitive,
		Logger:        d.logger,
	})
}

func (d *Dispatcher) labelKey(name string) string {
	if d.settings.CaseSensitive {
		return name
	}

	return strings.ToLower(name)
}

// split tokenizes line into the command label and its arguments
func (d *Dispatcher) split(line string) (string, []string, error) {
	line = strings.TrimPrefix(strings.TrimSpace(line), "/")
	if line == "" {
		return "", nil, errs.ErrEmptyInput
	}

	tokens, err := parse.Split(line)
	if err != nil {
		return "", nil, errs.ErrTokenize.Wrap(err)
	}
	if len(tokens) == 0 {
		return "", nil, errs.ErrEmptyInput
	}

	return tokens[0], tokens[1:], nil
}

// build flattens cmd and inserts every usage into a fresh tree
func (d *Dispatcher) build(cmd *Command) (*Tree, []*Usage, error) {
	usages := cmd.flatten(nil)
	tree := newTree(cmd)
	runnable := false
	for _, u := range usages {
		if err := u.validate(); err != nil {
			return nil, nil, err
		}
		if err := tree.Insert(u, d.registry); err != nil {
			return nil, nil, err
		}
		runnable = runnable || u.executor != nil
	}
	if !runnable {
		return nil, nil, errs.ErrNoExecutor.WithArgs(cmd.name)
	}

	return tree, usages, nil
}

// indexLiterals adds the root names and the sub-commands reachable directly through literals
// to the completion index
func (d *Dispatcher) indexLiterals(cmd *Command) {
	index := d.engine.Index()
	for _, name := range cmd.Names() {
		index.Insert([]string{name}, cmd.permission)
	}

	var walk func(c *Command, path []string)
	walk = func(c *Command, path []string) {
		for pair := c.children.Oldest(); pair != nil; pair = pair.Next() {
			a := pair.Value
			if a.mode != AttachEmpty {
				continue
			}
			for _, name := range a.command.Names() {
				index.Insert(append(append([]string(nil), path...), name), a.command.permission)
			}
			walk(a.command, append(append([]string(nil), path...), a.command.name))
		}
	}
	walk(cmd, []string{cmd.name})
}

// resolve matches args against the tree of the command called label and binds them
func (d *Dispatcher) resolve(ctx context.Context, src Source, label string, args []string, line string) (*ResolvedContext, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd, ok := d.Command(label)
	if !ok {
		return nil, errs.ErrUnknownCommand.WithArgs(label)
	}
	if !d.permitted(src, cmd.permission) {
		return nil, errs.ErrPermissionDenied.WithArgs(cmd.name)
	}

	cs := d.settings.CaseSensitive
	positional := positionalTokens(args, d.flags, func(name string) *FlagDescriptor {
		return cmd.tree.flag(name, cs)
	})
	match := cmd.tree.Match(positional, cs)
	u := match.Usage
	if match.State != Complete {
		u = match.Closest
	}
	if u == nil {
		return nil, errs.ErrNoExecutor.WithArgs(cmd.name)
	}
	if err := d.checkUsagePermission(src, u); err != nil {
		return nil, err
	}

	rctx := resolve.NewContext(ctx, src)
	rctx.Flags = d.flags
	rc := newResolvedContext(WithSource(ctx, src), src, cmd, u, args, line)
	b := &binding{
		stream:        newStream(u, args, d.flags, cs),
		ctx:           rctx,
		registry:      d.registry,
		src:           src,
		result:        rc,
		delimiter:     d.settings.GreedyDelimiter,
		caseSensitive: cs,
	}
	if err := b.run(d.handlers); err != nil {
		cancelPending(rctx.Pending())
		return nil, err
	}
	if err := d.checkArgumentPermissions(src, rc); err != nil {
		cancelPending(rc.pending)
		return nil, err
	}

	return rc, nil
}

// checkUsagePermission requires the permissions of u and of every command leading to it
func (d *Dispatcher) checkUsagePermission(src Source, u *Usage) error {
	for c := u.command; c != nil; c = c.parent {
		if !d.permitted(src, c.permission) {
			return errs.ErrPermissionDenied.WithArgs(c.Path())
		}
	}
	if !d.permitted(src, u.permission) {
		return errs.ErrPermissionDenied.WithArgs(u.command.Path())
	}

	return nil
}

// checkArgumentPermissions requires the permission of every parameter that was given explicitly
func (d *Dispatcher) checkArgumentPermissions(src Source, rc *ResolvedContext) error {
	for _, a := range rc.Arguments() {
		if !a.Defaulted && !d.permitted(src, a.Param.permission) {
			return errs.ErrPermissionDenied.WithArgs(a.Param.name)
		}
	}
	for _, p := range rc.usage.Flags() {
		if f, ok := rc.flags[p.flag.name]; ok && f.Present && !d.permitted(src, p.permission) {
			return errs.ErrPermissionDenied.WithArgs(p.flag.name)
		}
	}

	return nil
}

type cooldownKey struct {
	source string
	usage  *Usage
}

// checkCooldown rejects src using u again before its cooldown elapsed, and otherwise starts it
func (d *Dispatcher) checkCooldown(src Source, u *Usage) error {
	if u.cooldown <= 0 {
		return nil
	}

	key := cooldownKey{source: src.Name(), usage: u}
	now := d.now()
	if last, ok := d.cooldowns.Load(key); ok {
		if remaining := u.cooldown - now.Sub(last.(time.Time)); remaining > 0 {
			return errs.ErrCooldownActive.WithArgs(remaining.Round(time.Millisecond).String())
		}
	}
	d.cooldowns.Store(key, now)

	return nil
}

// execute runs the executor of the bound usage. A panic is turned into an error. Futures still
// pending once the executor returned are cancelled, which is an error of its own.
func (d *Dispatcher) execute(rc *ResolvedContext) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errs.ErrExecutionPanic.WithArgs(rc.command.Path(), rec)
		}
		if cancelled := cancelPending(rc.pending); err == nil && cancelled != "" {
			err = errs.ErrAsyncCancelled.WithArgs(cancelled)
		}
	}()

	if rc.usage.executor == nil {
		return errs.ErrNoExecutor.WithArgs(rc.usage.String())
	}

	return rc.usage.executor(rc.source, rc)
}

// cancelPending cancels unfinished futures and returns the parameter of the first one cancelled
func cancelPending(pending []resolve.Pending) string {
	first := ""
	for _, p := range pending {
		if p.Future.Cancel() && first == "" {
			first = p.Param
		}
	}

	return first
}

// fail reports err to src and returns it. Execution errors are logged and replaced by a
// generic notice for the source.
func (d *Dispatcher) fail(src Source, label string, err error) error {
	if errs.IsUserError(err) {
		d.logger.Debug("command rejected", "source", src.Name(), "command", label, "kind", errs.KindOf(err).String(), "error", err)
		d.reply(src, err)
		return err
	}

	kind := errs.KindOf(err)
	if kind == errs.KindAmbiguity {
		d.logger.Error("command configuration error", "source", src.Name(), "command", label, "error", err)
	} else {
		d.logger.Error("command execution failed", "source", src.Name(), "command", label, "error", fmt.Sprintf("%+v", err))
	}
	d.reply(src, errs.ErrExecution)

	return errs.ErrExecution.Wrap(err)
}

func (d *Dispatcher) reply(src Source, err error) {
	if src == nil {
		return
	}
	if er, ok := src.(ErrorReplier); ok {
		er.ReplyError(d.Message(err))
		return
	}
	src.Reply(d.Message(err))
}
