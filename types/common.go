package types

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// ListDelimiterFunc signature to match when supplying a user-defined function to check for the runes which form list delimiters.
// Defaults to ',' || r == '|'.
type ListDelimiterFunc func(matchOn rune) bool

// DefaultListDelimiter splits array values on ',' and '|'
func DefaultListDelimiter(r rune) bool {
	return r == ',' || r == '|'
}
