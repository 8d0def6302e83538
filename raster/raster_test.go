package raster

import (
	"errors"
	"testing"

	"github.com/psftools/otf2psf/charset"
)

func TestErrorCauseString(t *testing.T) {
	tests := []struct {
		cause    ErrorCause
		expected string
	}{
		{NoCoverage, "not covered by font"},
		{EngineFailure, "font engine failure"},
		{BadDimensions, "inconsistent dimensions in combining sequence"},
		{ErrorCause(999), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cause.String(); got != tt.expected {
			t.Errorf("ErrorCause(%d).String() = %q; want %q", tt.cause, got, tt.expected)
		}
	}
}

func TestErrorFormatting(t *testing.T) {
	e := Error{Grapheme: charset.Grapheme{0x41}, Cause: NoCoverage}
	if e.Error() != `grapheme "A": not covered by font` {
		t.Errorf("Error() = %q", e.Error())
	}

	cause := errors.New("bad cmap")
	e = Error{Grapheme: charset.Grapheme{0x41}, Cause: EngineFailure, Err: cause}
	if e.Error() != `grapheme "A": font engine failure: bad cmap` {
		t.Errorf("Error() = %q", e.Error())
	}
	if !errors.Is(e, cause) {
		t.Error("Unwrap should expose the engine error")
	}
}
