package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/VelixDevelopments/Imperat-sub001"
	"github.com/VelixDevelopments/Imperat-sub001/types"
	"github.com/jedib0t/go-pretty/v6/table"
)

type grant struct {
	permission string
	expires    time.Time
}

// server is the in-memory game server the demo commands act on
type server struct {
	dispatcher *imperat.Dispatcher

	mu        sync.Mutex
	players   []string
	items     []string
	ranks     map[string][]grant
	inventory map[string]map[string]int
	bans      map[string]string
	scheduled []string
	now       func() time.Time
}

func newServer() *server {
	return &server{
		players:   []string{"alice", "bob", "carol"},
		items:     []string{"stone", "dirt", "diamond", "torch"},
		ranks:     map[string][]grant{"admin": nil, "moderator": nil, "member": nil},
		inventory: make(map[string]map[string]int),
		bans:      make(map[string]string),
		now:       time.Now,
	}
}

func (s *server) onlinePlayers(imperat.Source) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.players)
}

func (s *server) rankNames(imperat.Source) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Sorted(maps.Keys(s.ranks))
}

func (s *server) itemNames(imperat.Source) []string {
	return s.items
}

func (s *server) commands() []*imperat.Command {
	rankParam := func() *imperat.Parameter {
		return imperat.Required("rank", types.String, imperat.WithSuggestionFunc(s.rankNames))
	}
	playerParam := func() *imperat.Parameter {
		return imperat.Required("player", types.String, imperat.WithSuggestionFunc(s.onlinePlayers))
	}

	rank := imperat.NewCommand("rank",
		imperat.WithCommandDescription("manage ranks and their permissions"),
		imperat.WithDefaultExecutor(s.listRanks),
		imperat.WithSubCommand(imperat.NewCommand("create",
			imperat.WithUsage(imperat.MustUsage(
				imperat.WithParams(imperat.Required("name", types.String)),
				imperat.WithUsageDescription("create an empty rank"),
				imperat.WithExecutor(s.createRank)))), imperat.AttachEmpty),
		imperat.WithSubCommand(imperat.NewCommand("addperm",
			imperat.WithUsage(imperat.MustUsage(
				imperat.WithParams(
					rankParam(),
					imperat.Required("permission", types.String),
					imperat.ValueFlag("duration", types.Duration, imperat.WithAliases("d"),
						imperat.WithParamDescription("expire the permission after this long")),
					imperat.Switch("force", imperat.WithAliases("f")),
				),
				imperat.WithUsageDescription("grant a permission to a rank"),
				imperat.WithExecutor(s.addPermission)))), imperat.AttachEmpty),
		imperat.WithSubCommand(imperat.NewCommand("delperm",
			imperat.WithCommandPermission("rank.delperm"),
			imperat.WithUsage(imperat.MustUsage(
				imperat.WithParams(rankParam(), imperat.Required("permission", types.String)),
				imperat.WithUsageDescription("revoke a permission from a rank"),
				imperat.WithExecutor(s.deletePermission)))), imperat.AttachEmpty),
		imperat.WithSubCommand(imperat.NewCommand("info",
			imperat.WithCommandAliases("i"),
			imperat.WithUsage(imperat.MustUsage(
				imperat.WithParams(rankParam()),
				imperat.WithUsageDescription("show the permissions of a rank"),
				imperat.WithExecutor(s.rankInfo)))), imperat.AttachEmpty),
	)

	give := imperat.NewCommand("give",
		imperat.WithCommandDescription("give items to a player"),
		imperat.WithUsage(imperat.MustUsage(
			imperat.WithParams(
				playerParam(),
				imperat.Required("item", types.String, imperat.WithSuggestionFunc(s.itemNames)),
				imperat.Optional("amount", types.Int, imperat.WithDefault("1"), imperat.WithSuggestions("1", "16", "64")),
				imperat.Switch("silent", imperat.WithAliases("s")),
			),
			imperat.WithCooldown(time.Second),
			imperat.WithExecutor(s.give))),
	)

	broadcast := imperat.NewCommand("broadcast",
		imperat.WithCommandAliases("bc"),
		imperat.WithCommandDescription("send a message to every player"),
		imperat.WithUsage(imperat.MustUsage(
			imperat.WithParams(imperat.GreedyText("message")),
			imperat.WithExecutor(func(src imperat.Source, ctx *imperat.ResolvedContext) error {
				msg, _ := ctx.GetString("message")
				src.Reply(fmt.Sprintf("[%s] %s", src.Name(), msg))
				return nil
			}))),
	)

	ban := imperat.NewCommand("ban",
		imperat.WithCommandPermission("moderation.ban"),
		imperat.WithCommandDescription("ban a player"),
		imperat.WithUsage(imperat.MustUsage(
			imperat.WithParams(playerParam(), imperat.Optional("reason", types.String, imperat.AsGreedy())),
			imperat.WithExecutor(s.ban))),
	)

	schedule := imperat.NewCommand("schedule",
		imperat.WithCommandDescription("announce a message at a given time"),
		imperat.WithUsage(imperat.MustUsage(
			imperat.WithParams(
				imperat.Required("at", types.Time, imperat.WithSuggestions("2030-01-01T12:00:00Z")),
				imperat.GreedyText("message"),
			),
			imperat.WithExecutor(s.schedule))),
	)

	help := imperat.NewCommand("help",
		imperat.WithCommandAliases("?"),
		imperat.WithCommandDescription("list the available commands"),
		imperat.WithDefaultExecutor(func(src imperat.Source, _ *imperat.ResolvedContext) error {
			src.Reply(usageTable(s.dispatcher, src))
			return nil
		}),
	)

	return []*imperat.Command{rank, give, broadcast, ban, schedule, help}
}

func (s *server) listRanks(src imperat.Source, _ *imperat.ResolvedContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Rank", "Permissions"})
	for _, name := range slices.Sorted(maps.Keys(s.ranks)) {
		t.AppendRow(table.Row{name, len(s.ranks[name])})
	}
	src.Reply(t.Render())

	return nil
}

func (s *server) createRank(src imperat.Source, ctx *imperat.ResolvedContext) error {
	name, _ := ctx.GetString("name")

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ranks[name]; ok {
		src.Reply(fmt.Sprintf("rank %s already exists", name))
		return nil
	}
	s.ranks[name] = nil
	src.Reply(fmt.Sprintf("created rank %s", name))

	return nil
}

func (s *server) addPermission(src imperat.Source, ctx *imperat.ResolvedContext) error {
	rank, _ := ctx.GetString("rank")
	permission, _ := ctx.GetString("permission")
	duration, timed := imperat.Arg[time.Duration](ctx, "duration")

	s.mu.Lock()
	defer s.mu.Unlock()
	grants, ok := s.ranks[rank]
	if !ok && !ctx.Switch("force") {
		src.Reply(fmt.Sprintf("unknown rank %s, use -force to create it", rank))
		return nil
	}
	g := grant{permission: permission}
	if timed {
		g.expires = s.now().Add(duration)
	}
	s.ranks[rank] = append(grants, g)

	if timed {
		src.Reply(fmt.Sprintf("granted %s to %s for %s", permission, rank, duration))
	} else {
		src.Reply(fmt.Sprintf("granted %s to %s", permission, rank))
	}

	return nil
}

func (s *server) deletePermission(src imperat.Source, ctx *imperat.ResolvedContext) error {
	rank, _ := ctx.GetString("rank")
	permission, _ := ctx.GetString("permission")

	s.mu.Lock()
	defer s.mu.Unlock()
	grants := s.ranks[rank]
	kept := slices.DeleteFunc(slices.Clone(grants), func(g grant) bool { return g.permission == permission })
	if len(kept) == len(grants) {
		src.Reply(fmt.Sprintf("%s does not hold %s", rank, permission))
		return nil
	}
	s.ranks[rank] = kept
	src.Reply(fmt.Sprintf("revoked %s from %s", permission, rank))

	return nil
}

func (s *server) rankInfo(src imperat.Source, ctx *imperat.ResolvedContext) error {
	rank, _ := ctx.GetString("rank")

	s.mu.Lock()
	defer s.mu.Unlock()
	grants, ok := s.ranks[rank]
	if !ok {
		src.Reply(fmt.Sprintf("unknown rank %s", rank))
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle(rank)
	t.AppendHeader(table.Row{"Permission", "Expires"})
	for _, g := range grants {
		expires := "never"
		if !g.expires.IsZero() {
			expires = g.expires.Format(time.RFC3339)
		}
		t.AppendRow(table.Row{g.permission, expires})
	}
	src.Reply(t.Render())

	return nil
}

func (s *server) give(src imperat.Source, ctx *imperat.ResolvedContext) error {
	player, _ := ctx.GetString("player")
	item, _ := ctx.GetString("item")
	amount, _ := ctx.GetInt("amount")
	if amount <= 0 {
		return fmt.Errorf("cannot give %d %s", amount, item)
	}

	s.mu.Lock()
	inv, ok := s.inventory[player]
	if !ok {
		inv = make(map[string]int)
		s.inventory[player] = inv
	}
	inv[item] += amount
	total := inv[item]
	s.mu.Unlock()

	if !ctx.Switch("silent") {
		src.Reply(fmt.Sprintf("gave %d %s to %s, now holding %d", amount, item, player, total))
	}

	return nil
}

func (s *server) ban(src imperat.Source, ctx *imperat.ResolvedContext) error {
	player, _ := ctx.GetString("player")
	reason, _ := ctx.GetString("reason")
	if reason == "" {
		reason = "no reason given"
	}

	s.mu.Lock()
	s.bans[player] = reason
	s.players = slices.DeleteFunc(s.players, func(p string) bool { return strings.EqualFold(p, player) })
	s.mu.Unlock()

	src.Reply(fmt.Sprintf("banned %s: %s", player, reason))

	return nil
}

func (s *server) schedule(src imperat.Source, ctx *imperat.ResolvedContext) error {
	at, _ := imperat.Arg[time.Time](ctx, "at")
	msg, _ := ctx.GetString("message")

	s.mu.Lock()
	s.scheduled = append(s.scheduled, msg)
	s.mu.Unlock()

	src.Reply(fmt.Sprintf("scheduled %q for %s", msg, at.UTC().Format(time.RFC3339)))

	return nil
}
