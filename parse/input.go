package parse

// Cursor tracks independent progress through the parameter list and the raw token list
type Cursor struct {
	Param int
	Raw   int
}

// Advance moves both positions forward
func (c *Cursor) Advance() {
	c.Param++
	c.Raw++
}

// AdvanceParam moves the parameter position forward
func (c *Cursor) AdvanceParam() {
	c.Param++
}

// AdvanceRaw moves the raw token position forward
func (c *Cursor) AdvanceRaw() {
	c.Raw++
}

// Input is the token stream handed to resolvers. Current is the token being resolved;
// resolvers consuming more than one token call Next, leaving the stream on the last
// token they consumed.
type Input interface {
	Current() string
	Next() (string, bool)
	Peek() (string, bool)
	HasNext() bool
	Position() int
	Len() int
	IsFlag(token string) bool
}

// Tokens is an Input over a slice of raw tokens, positioned by a Cursor
type Tokens struct {
	raw    []string
	cursor *Cursor
	flags  *FlagMatcher
}

// NewTokens creates a token stream sharing the raw position of cursor
func NewTokens(raw []string, cursor *Cursor, flags *FlagMatcher) *Tokens {
	if cursor == nil {
		cursor = &Cursor{}
	}
	if flags == nil {
		flags = DefaultFlags()
	}

	return &Tokens{raw: raw, cursor: cursor, flags: flags}
}

// Single returns a stream holding only s, used to resolve defaults and flag values
func Single(s string, flags *FlagMatcher) *Tokens {
	return NewTokens([]string{s}, nil, flags)
}

// Current returns the token at the cursor, "" when exhausted
func (t *Tokens) Current() string {
	if t.cursor.Raw < 0 || t.cursor.Raw >= len(t.raw) {
		return ""
	}

	return t.raw[t.cursor.Raw]
}

// Next moves to the following token and returns it
func (t *Tokens) Next() (string, bool) {
	if t.cursor.Raw+1 >= len(t.raw) {
		return "", false
	}
	t.cursor.Raw++

	return t.raw[t.cursor.Raw], true
}

// Peek returns the following token without moving
func (t *Tokens) Peek() (string, bool) {
	if t.cursor.Raw+1 >= len(t.raw) {
		return "", false
	}

	return t.raw[t.cursor.Raw+1], true
}

// HasNext reports whether a token follows the current one
func (t *Tokens) HasNext() bool {
	return t.cursor.Raw+1 < len(t.raw)
}

// Position returns the raw cursor position
func (t *Tokens) Position() int {
	return t.cursor.Raw
}

// Len returns the number of raw tokens
func (t *Tokens) Len() int {
	return len(t.raw)
}

// IsFlag reports whether token is flag shaped for this stream's marker
func (t *Tokens) IsFlag(token string) bool {
	return t.flags.IsFlag(token)
}

// Raw returns the underlying tokens
func (t *Tokens) Raw() []string {
	return t.raw
}
