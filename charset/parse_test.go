package charset

import (
	"errors"
	"strings"
	"testing"
)

func TestParseClasses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Charset
	}{
		{
			name:  "single codepoint",
			input: "U+0041\n",
			want:  Charset{{Graphemes: []Grapheme{{0x41}}}},
		},
		{
			name:  "lowercase prefix and short digits",
			input: "u+1\n",
			want:  Charset{{Graphemes: []Grapheme{{0x1}}}},
		},
		{
			name:  "alternative graphemes in one class",
			input: "U+00E9, U+0065 U+0301\n",
			want:  Charset{{Graphemes: []Grapheme{{0xE9}, {0x65, 0x301}}}},
		},
		{
			name:  "classes keep file order",
			input: "U+0042\nU+0041\n",
			want: Charset{
				{Graphemes: []Grapheme{{0x42}}},
				{Graphemes: []Grapheme{{0x41}}},
			},
		},
		{
			name:  "comments and blank lines are not content",
			input: "# latin\n\nU+0041\n   # indented comment\n\n",
			want:  Charset{{Graphemes: []Grapheme{{0x41}}}},
		},
		{
			name:  "CRLF separators",
			input: "U+0041\r\nU+0042\r\n",
			want: Charset{
				{Graphemes: []Grapheme{{0x41}}},
				{Graphemes: []Grapheme{{0x42}}},
			},
		},
		{
			name:  "no trailing newline",
			input: "U+0041",
			want:  Charset{{Graphemes: []Grapheme{{0x41}}}},
		},
		{
			name:  "six hex digits",
			input: "U+10FFFF\n",
			want:  Charset{{Graphemes: []Grapheme{{0x10FFFF}}}},
		},
		{
			name:  "empty file",
			input: "",
			want:  Charset{},
		},
		{
			name:  "comments only",
			input: "# nothing here\n",
			want:  Charset{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if len(cs) != len(tt.want) {
				t.Fatalf("Parse(%q) = %d classes; want %d", tt.input, len(cs), len(tt.want))
			}
			for i, cl := range cs {
				if len(cl.Graphemes) != len(tt.want[i].Graphemes) {
					t.Fatalf("class %d has %d graphemes; want %d", i, len(cl.Graphemes), len(tt.want[i].Graphemes))
				}
				for j, g := range cl.Graphemes {
					if !g.Equal(tt.want[i].Graphemes[j]) {
						t.Errorf("class %d grapheme %d = %v; want %v", i, j, g, tt.want[i].Graphemes[j])
					}
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		kind  ErrorKind
	}{
		{
			name:  "codepoint beyond Unicode codespace",
			input: "U+110000\n",
			line:  1,
			kind:  InvalidCodepoint,
		},
		{
			name:  "surrogate codepoint",
			input: "U+D800\n",
			line:  1,
			kind:  InvalidCodepoint,
		},
		{
			name:  "missing prefix",
			input: "0041\n",
			line:  1,
			kind:  InvalidCodepoint,
		},
		{
			name:  "non-hex digits",
			input: "U+00GG\n",
			line:  1,
			kind:  InvalidCodepoint,
		},
		{
			name:  "too many digits",
			input: "U+0010FFFF\n",
			line:  1,
			kind:  InvalidCodepoint,
		},
		{
			name:  "bare prefix",
			input: "U+\n",
			line:  1,
			kind:  InvalidCodepoint,
		},
		{
			name:  "duplicate grapheme in class",
			input: "U+0041, U+0041\n",
			line:  1,
			kind:  DuplicateGrapheme,
		},
		{
			name:  "duplicate multi-codepoint grapheme",
			input: "U+0065 U+0301, U+0065 U+0301\n",
			line:  1,
			kind:  DuplicateGrapheme,
		},
		{
			name:  "dangling comma",
			input: "U+0041,\n",
			line:  1,
			kind:  EmptyGrapheme,
		},
		{
			name:  "error names the right line",
			input: "U+0041\n# ok\nU+0042\nU+110000\n",
			line:  4,
			kind:  InvalidCodepoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded; want %s error", tt.input, tt.kind)
			}
			var serr SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("Parse(%q) returned %T; want SyntaxError", tt.input, err)
			}
			if serr.Kind != tt.kind {
				t.Errorf("error kind = %s; want %s", serr.Kind, tt.kind)
			}
			if serr.Line != tt.line {
				t.Errorf("error line = %d; want %d", serr.Line, tt.line)
			}
		})
	}
}

func TestParseReader(t *testing.T) {
	cs, err := ParseReader(strings.NewReader("U+0041, U+0061\n"))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if len(cs) != 1 || len(cs[0].Graphemes) != 2 {
		t.Errorf("ParseReader = %v; want one class with two graphemes", cs)
	}
}

// Serializing a parsed charset and re-parsing it yields an identical
// charset.
func TestRoundTrip(t *testing.T) {
	input := "U+0041\nU+00E9, U+0065 U+0301\nU+1F600\nU+0020, U+00A0, U+2000\n"
	cs, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	again, err := Parse(cs.String())
	if err != nil {
		t.Fatalf("re-Parse failed: %v", err)
	}
	if len(again) != len(cs) {
		t.Fatalf("round trip changed class count: %d -> %d", len(cs), len(again))
	}
	for i := range cs {
		if len(again[i].Graphemes) != len(cs[i].Graphemes) {
			t.Fatalf("round trip changed grapheme count in class %d", i)
		}
		for j := range cs[i].Graphemes {
			if !again[i].Graphemes[j].Equal(cs[i].Graphemes[j]) {
				t.Errorf("round trip changed class %d grapheme %d", i, j)
			}
		}
	}
}
