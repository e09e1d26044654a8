package imperat

import (
	"sync"
	"testing"

	"github.com/VelixDevelopments/Imperat-sub001/logging"
	"github.com/VelixDevelopments/Imperat-sub001/types"
	"github.com/stretchr/testify/require"
)

type testSource struct {
	name  string
	perms map[string]bool

	mu      sync.Mutex
	replies []string
}

func newSource(name string, perms ...string) *testSource {
	s := &testSource{name: name, perms: make(map[string]bool)}
	for _, p := range perms {
		s.perms[p] = true
	}
	return s
}

func (s *testSource) Name() string {
	return s.name
}

func (s *testSource) Reply(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, message)
}

func (s *testSource) lastReply() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.replies) == 0 {
		return ""
	}
	return s.replies[len(s.replies)-1]
}

func checkPermissions(src Source, permission string) bool {
	s, ok := src.(*testSource)
	return ok && s.perms[permission]
}

// recorder captures the last executed invocation
type recorder struct {
	mu    sync.Mutex
	calls []string
	last  *ResolvedContext
}

func (r *recorder) exec(name string) ExecutorFunc {
	return func(src Source, ctx *ResolvedContext) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, name)
		r.last = ctx
		return nil
	}
}

func (r *recorder) lastCall() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return ""
	}
	return r.calls[len(r.calls)-1]
}

func (r *recorder) context() *ResolvedContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

var color = types.Enum("Color", "RED", "GREEN", "DARK_BLUE")

// testCommands builds a command set covering sub-commands, optional slots, greedy text and flags
func testCommands(rec *recorder) []*Command {
	rank := NewCommand("rank",
		WithCommandDescription("manage ranks"),
		WithDefaultExecutor(rec.exec("rank")),
		WithSubCommand(NewCommand("addperm",
			WithUsage(MustUsage(
				WithParams(
					Required("rank", types.String, WithSuggestions("admin", "moderator", "member")),
					Required("permission", types.String),
					ValueFlag("duration", types.Duration, WithAliases("d")),
					Switch("force", WithAliases("f")),
				),
				WithExecutor(rec.exec("addperm"))))), AttachEmpty),
		WithSubCommand(NewCommand("delperm",
			WithCommandPermission("rank.delperm"),
			WithUsage(MustUsage(
				WithParams(Required("rank", types.String), Required("permission", types.String)),
				WithExecutor(rec.exec("delperm"))))), AttachEmpty),
		WithSubCommand(NewCommand("info",
			WithCommandAliases("i"),
			WithUsage(MustUsage(
				WithParams(Required("rank", types.String, WithSuggestions("admin", "moderator", "member"))),
				WithExecutor(rec.exec("info"))))), AttachEmpty),
	)

	give := NewCommand("give",
		WithUsage(MustUsage(
			WithParams(
				Required("player", types.String, WithSuggestions("alice", "bob")),
				Required("item", types.String, WithSuggestions("stone", "diamond", "dirt")),
				Optional("amount", types.Int, WithDefault("1")),
				ValueFlag("enchant", types.String, WithAliases("e")),
				ValueFlag("level", types.String, WithAliases("l")),
				Switch("silent", WithAliases("s")),
				Switch("notify", WithAliases("n")),
			),
			WithExecutor(rec.exec("give")))),
	)

	broadcast := NewCommand("broadcast",
		WithCommandAliases("bc"),
		WithUsage(MustUsage(
			WithParams(GreedyText("message"), Switch("silent", WithAliases("s"))),
			WithExecutor(rec.exec("broadcast")))),
	)

	ban := NewCommand("ban",
		WithCommandPermission("moderation.ban"),
		WithUsage(MustUsage(
			WithParams(Required("player", types.String), Optional("reason", types.String, AsGreedy())),
			WithExecutor(rec.exec("ban")))),
	)

	skip := NewCommand("skip",
		WithUsage(MustUsage(
			WithParams(
				Required("r1", types.String),
				Optional("o1", types.Int),
				Required("r2", types.String),
				Optional("o2", types.String, WithDefault("none")),
			),
			WithExecutor(rec.exec("skip")))),
	)

	paint := NewCommand("paint",
		WithUsage(MustUsage(
			WithParams(Required("color", color), Optional("shades", types.ArrayOf(types.Uint8))),
			WithExecutor(rec.exec("paint")))),
	)

	group := NewCommand("group",
		WithUsage(MustUsage(
			WithParams(Required("name", types.String)),
			WithExecutor(rec.exec("group")))),
		WithSubCommand(NewCommand("members",
			WithUsage(MustUsage(
				WithParams(Optional("page", types.Int, WithDefault("1"))),
				WithExecutor(rec.exec("members"))))), AttachMain),
	)

	return []*Command{rank, give, broadcast, ban, skip, paint, group}
}

func newTestDispatcher(t *testing.T, rec *recorder, configs ...ConfigureDispatcherFunc) *Dispatcher {
	t.Helper()
	opts := []ConfigureDispatcherFunc{
		WithLogger(logging.Discard()),
		WithPermissionChecker(checkPermissions),
	}
	for _, cmd := range testCommands(rec) {
		opts = append(opts, WithCommand(cmd))
	}
	d, err := New(append(opts, configs...)...)
	require.NoError(t, err)
	return d
}
