package imperat

import (
	"log/slog"

	"github.com/VelixDevelopments/Imperat-sub001/config"
	"github.com/VelixDevelopments/Imperat-sub001/i18n"
	"github.com/VelixDevelopments/Imperat-sub001/resolve"
	"github.com/VelixDevelopments/Imperat-sub001/types"
	"golang.org/x/text/language"
)

// WithSettings replaces all tunables.
//
// Configuration example:
//
//	d, err := New(
//		WithSettings(settings),
//		WithPermissionChecker(func(src Source, permission string) bool {
//			return players.Has(src.Name(), permission)
//		}),
//		WithCommand(NewCommand("give",
//			WithUsage(MustUsage(
//				WithParams(Required("player", types.String), Optional("amount", types.Int, WithDefault("1"))),
//				WithExecutor(give))))))
func WithSettings(settings config.Settings) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.settings = settings
	}
}

// WithSettingsFile loads the tunables from a YAML file, a missing file keeps the defaults
func WithSettingsFile(path string) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.settings, *err = config.Load(path)
	}
}

// WithCaseSensitive toggles case sensitive matching of command names and completion prefixes
func WithCaseSensitive(caseSensitive bool) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.settings.CaseSensitive = caseSensitive
	}
}

// WithFlagMarker sets the character introducing flags
func WithFlagMarker(marker rune) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.settings.FlagMarker = string(marker)
	}
}

// WithGreedyDelimiter sets the separator joining the tokens of greedy parameters
func WithGreedyDelimiter(delimiter string) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.settings.GreedyDelimiter = delimiter
	}
}

// WithListDelimiters sets the characters splitting array tokens into elements. An empty
// string keeps the default ",|".
func WithListDelimiters(delimiters string) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.settings.ListDelimiters = delimiters
	}
}

// WithLogger replaces the logger built from the logging settings
func WithLogger(logger *slog.Logger) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.logger = logger
	}
}

func WithPermissionChecker(checker PermissionChecker) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.permissions = checker
	}
}

// WithResolver registers resolver for the exact type t
func WithResolver(t *types.Type, resolver resolve.Resolver) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.registry.Register(t, resolver)
	}
}

// WithNamedResolver registers resolver under a custom type name
func WithNamedResolver(name string, resolver resolve.Resolver) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.registry.RegisterNamed(name, resolver)
	}
}

// WithCommand registers command once every other option is applied
func WithCommand(command *Command) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.pending = append(d.pending, command)
	}
}

// WithBundle replaces the message bundle used for replies
func WithBundle(bundle *i18n.Bundle) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.bundle = bundle
	}
}

// WithLanguage selects the language of replies. The bundle must hold it.
func WithLanguage(lang language.Tag) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		if !d.bundle.HasLanguage(lang) {
			*err = i18n.ErrLanguageNotFound
			return
		}
		d.lang = lang
	}
}

func WithRenderer(renderer Renderer) ConfigureDispatcherFunc {
	return func(d *Dispatcher, err *error) {
		d.renderer = renderer
	}
}
