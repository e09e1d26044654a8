package parse

import (
	"regexp"
	"strings"
)

// FlagMatcher recognises flag shaped tokens: one or two markers followed by a name starting
// with a letter, optionally carrying an inline "=value". A lone marker or a negative number
// such as "-5" is not a flag.
type FlagMatcher struct {
	marker  string
	pattern *regexp.Regexp
}

// DefaultFlagMarker is the marker used when none is configured
const DefaultFlagMarker = '-'

var defaultMatcher = NewFlagMatcher(DefaultFlagMarker)

// NewFlagMatcher creates a matcher for the given marker rune
func NewFlagMatcher(marker rune) *FlagMatcher {
	m := regexp.QuoteMeta(string(marker))
	return &FlagMatcher{
		marker:  string(marker),
		pattern: regexp.MustCompile(`^(` + m + `{1,2})([\pL][\pL\pN_.` + m + `]*)(=(.*))?$`),
	}
}

// DefaultFlags returns the matcher for the default '-' marker
func DefaultFlags() *FlagMatcher {
	return defaultMatcher
}

// Marker returns the flag marker
func (f *FlagMatcher) Marker() string {
	return f.marker
}

// IsFlag reports whether token is flag shaped
func (f *FlagMatcher) IsFlag(token string) bool {
	return f.pattern.MatchString(token)
}

// FlagToken is a decomposed flag shaped token
type FlagToken struct {
	Raw      string
	Name     string
	Value    string
	HasValue bool
	// Long is set when the token used the double marker form
	Long bool
}

// Split decomposes a flag token. ok is false when token is not flag shaped.
func (f *FlagMatcher) Split(token string) (FlagToken, bool) {
	groups := f.pattern.FindStringSubmatch(token)
	if groups == nil {
		return FlagToken{}, false
	}

	return FlagToken{
		Raw:      token,
		Name:     groups[2],
		Value:    groups[4],
		HasValue: groups[3] != "",
		Long:     len(groups[1]) == 2*len(f.marker),
	}, true
}

// Canonical renders name in single marker form, as shown in usage strings
func (f *FlagMatcher) Canonical(name string) string {
	return f.marker + strings.TrimLeft(name, f.marker)
}
