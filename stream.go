package imperat

import (
	"unicode/utf8"

	"github.com/VelixDevelopments/Imperat-sub001/parse"
)

// stream is the binding state of one call: the usage being bound, the raw tokens and the
// cursor moving through both
type stream struct {
	usage  *Usage
	raw    []string
	cursor parse.Cursor
	tokens *parse.Tokens
	flags  *parse.FlagMatcher
	lookup func(name string) *FlagDescriptor
}

func newStream(u *Usage, raw []string, flags *parse.FlagMatcher, caseSensitive bool) *stream {
	s := &stream{usage: u, raw: raw, flags: flags}
	s.tokens = parse.NewTokens(raw, &s.cursor, flags)
	s.lookup = func(name string) *FlagDescriptor {
		if p := u.FlagNamed(name, caseSensitive); p != nil {
			return p.flag
		}
		return nil
	}

	return s
}

func (s *stream) hasParam() bool {
	return s.cursor.Param < len(s.usage.params)
}

// param returns the current parameter, nil once all are processed
func (s *stream) param() *Parameter {
	if !s.hasParam() {
		return nil
	}

	return s.usage.params[s.cursor.Param]
}

// token returns the current raw token
func (s *stream) token() (string, bool) {
	if s.cursor.Raw >= len(s.raw) {
		return "", false
	}

	return s.raw[s.cursor.Raw], true
}

// positionalLeft counts the remaining tokens that are neither flags nor flag values
func (s *stream) positionalLeft() int {
	if s.cursor.Raw >= len(s.raw) {
		return 0
	}

	return len(positionalTokens(s.raw[s.cursor.Raw:], s.flags, s.lookup))
}

// flagArity returns how many tokens a flag token spans: itself, plus the following value for
// value flags written without an inline value
func flagArity(ft parse.FlagToken, lookup func(string) *FlagDescriptor) int {
	if ft.HasValue {
		return 1
	}
	if f := lookup(ft.Name); f != nil {
		if f.IsSwitch() {
			return 1
		}
		return 2
	}
	if !ft.Long && utf8.RuneCountInString(ft.Name) > 1 {
		for _, r := range ft.Name {
			if f := lookup(string(r)); f != nil && !f.IsSwitch() {
				return 2
			}
		}
	}

	return 1
}

// positionalTokens drops flags and their values from raw
func positionalTokens(raw []string, flags *parse.FlagMatcher, lookup func(string) *FlagDescriptor) []string {
	out := make([]string, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		ft, ok := flags.Split(raw[i])
		if !ok {
			out = append(out, raw[i])
			continue
		}
		i += flagArity(ft, lookup) - 1
	}

	return out
}
