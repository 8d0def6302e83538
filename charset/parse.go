package charset

import (
	"io"
	"strconv"
	"strings"
)

// Parsing of the line-oriented charset grammar. Each content line is one
// equivalence class; the grammar is small enough that splitting on line,
// comma and whitespace boundaries covers it completely.

// ParseReader reads UTF-8 charset text from r and parses it.
func ParseReader(r io.Reader) (Charset, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(text))
}

// Parse parses charset text into an ordered sequence of equivalence
// classes. Comment lines ('#') and blank lines do not contribute classes.
// An input without any content lines parses to an empty charset; callers
// decide whether that is acceptable.
func Parse(text string) (Charset, error) {
	cs := Charset{}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		cl, err := parseClass(trimmed, i+1)
		if err != nil {
			return nil, err
		}
		cs = append(cs, cl)
	}
	tracer().Debugf("parsed charset with %d classes", len(cs))
	return cs, nil
}

// parseClass parses one content line: a comma-separated list of graphemes.
func parseClass(line string, lineno int) (Class, error) {
	cl := Class{}
	for _, field := range strings.Split(line, ",") {
		toks := strings.Fields(field)
		if len(toks) == 0 {
			return cl, SyntaxError{Line: lineno, Kind: EmptyGrapheme}
		}
		g := make(Grapheme, 0, len(toks))
		for _, tok := range toks {
			c, ok := parseCodepoint(tok)
			if !ok {
				return cl, SyntaxError{Line: lineno, Token: tok, Kind: InvalidCodepoint}
			}
			g = append(g, c)
		}
		if cl.contains(g) {
			return cl, SyntaxError{Line: lineno, Token: g.tokens(), Kind: DuplicateGrapheme}
		}
		cl.Graphemes = append(cl.Graphemes, g)
	}
	return cl, nil
}

// parseCodepoint parses a single codepoint token: a case-insensitive "U+"
// prefix followed by 1 to 6 hex digits, the value being a Unicode scalar.
func parseCodepoint(tok string) (Codepoint, bool) {
	if len(tok) < 3 || len(tok) > 8 {
		return 0, false
	}
	if tok[0] != 'U' && tok[0] != 'u' {
		return 0, false
	}
	if tok[1] != '+' {
		return 0, false
	}
	v, err := strconv.ParseUint(tok[2:], 16, 32)
	if err != nil {
		return 0, false
	}
	c := Codepoint(v)
	if !c.IsValid() {
		return 0, false
	}
	return c, true
}
