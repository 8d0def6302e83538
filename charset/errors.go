package charset

import "fmt"

// ErrorKind discriminates the syntax errors a charset file can contain.
type ErrorKind int

const (
	// InvalidCodepoint indicates a malformed codepoint token or a value
	// outside the Unicode scalar range.
	InvalidCodepoint ErrorKind = iota
	// DuplicateGrapheme indicates a grapheme listed twice within one class.
	DuplicateGrapheme
	// EmptyGrapheme indicates a class entry with no codepoint tokens, e.g.
	// a dangling comma.
	EmptyGrapheme
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidCodepoint:
		return "invalid codepoint"
	case DuplicateGrapheme:
		return "duplicate grapheme in class"
	case EmptyGrapheme:
		return "empty grapheme"
	default:
		return "unknown"
	}
}

// SyntaxError is a charset parsing failure. It carries the 1-based source
// line and, where applicable, the offending token.
type SyntaxError struct {
	Line  int    // 1-based line number in the charset source
	Token string // offending token, empty if not attributable to one
	Kind  ErrorKind
}

// Error implements the error interface.
func (e SyntaxError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("charset line %d: %s: %q", e.Line, e.Kind, e.Token)
	}
	return fmt.Sprintf("charset line %d: %s", e.Line, e.Kind)
}
