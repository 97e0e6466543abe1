package token

import (
	"errors"
	"testing"
)

func TestNeedsQuote(t *testing.T) {
	tests := map[string]bool{
		"":         true,
		"abc":      false,
		"a-b.c":    false,
		"true":     true,
		"null":     true,
		"42":       true,
		"-3.5":     true,
		"3.5.1":    false,
		"--5":      false,
		"a b":      true,
		"a\tb":     true,
		"x=y":      true,
		"{":        true,
		"a,b":      true,
		`say"hi"`:  true,
		"it's":     true,
		"//x":      true,
		"a/*b":     true,
		"path/to":  false,
		"é":        false,
		"\u00a0":   true,
		"back\\sl": false,
	}
	for in, want := range tests {
		if got := NeedsQuote(in); got != want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", in, got, want)
		}
	}
	if NeedsQuoteName("42") || NeedsQuoteName("true") {
		t.Error("literal-looking names stay bare")
	}
	if !NeedsQuoteName("") || !NeedsQuoteName("a b") {
		t.Error("empty and spaced names need quotes")
	}
}

func TestQuoteUnquote(t *testing.T) {
	for _, v := range []string{
		"",
		"plain",
		`a"b`,
		"it's",
		`both ' and "" quotes`,
		"tab\tnew\nline\rcr",
		"back\\slash",
		"nul\x00ctl\x01",
		"\ufeffbom",
		"é😀",
	} {
		for _, auto := range []bool{false, true} {
			for _, esc := range []bool{false, true} {
				q := Quote(v, auto, esc)
				got, err := Unquote(q)
				if err != nil {
					t.Errorf("Unquote(%s): %v", q, err)
					continue
				}
				if got != v {
					t.Errorf("Unquote(Quote(%q)) = %q", v, got)
				}
			}
		}
	}
}

func TestQuoteStyle(t *testing.T) {
	if got := Quote(`say "hi"`, true, true); got != `'say "hi"'` {
		t.Errorf("got %s", got)
	}
	if got := Quote("a\tb", false, true); got != `"a\tb"` {
		t.Errorf("got %s", got)
	}
	if got := Quote("a\tb", false, false); got != "\"a\tb\"" {
		t.Errorf("got %s", got)
	}
}

func TestUnquoteSurrogates(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"\uD83D\uDE00"`, "\U0001F600"},
		{`"\uD800"`, "\uFFFD"},
		{`"\uD800x"`, "\uFFFDx"},
		{`"\uD800\n"`, "\uFFFD\n"},
		{`"\uD800\u0041"`, "\uFFFDA"},
		{`"\uDE00\uD800"`, "\uFFFD\uFFFD"},
		{`"\uDE00\uD83D\uDE00"`, "\uFFFD\U0001F600"},
	}
	for _, tt := range tests {
		got, err := Unquote(tt.in)
		if err != nil {
			t.Errorf("Unquote(%s): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Unquote(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, err := Unquote(`"\uD800\q"`); !errors.Is(err, ErrBadEscape) {
		t.Errorf("got %v want %v", err, ErrBadEscape)
	}
}
