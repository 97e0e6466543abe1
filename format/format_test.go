package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"v", "vsc", "script"} {
		f, err := ParseFormat(in)
		if err != nil {
			t.Fatal(err)
		}
		if !f.IsScript() {
			t.Errorf("%q: got %s", in, f)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
	}
}

func TestFromSuffix(t *testing.T) {
	tests := map[string]Format{
		"a.vsc":       ScriptFormat,
		"a.yaml":      YAMLFormat,
		"b/c.yml":     YAMLFormat,
		"x.json":      JSONFormat,
		"no-suffix":   ScriptFormat,
		"config.toml": ScriptFormat,
		"UP.JSON":     JSONFormat,
		"dir.yaml/x":  ScriptFormat,
	}
	for name, want := range tests {
		if got := FromSuffix(name); got != want {
			t.Errorf("%s: got %s want %s", name, got, want)
		}
	}
}

func TestFormatNames(t *testing.T) {
	tests := []struct {
		in     string
		want   Format
		suffix string
	}{
		{"y", YAMLFormat, ".yaml"},
		{"yml", YAMLFormat, ".yaml"},
		{"j", JSONFormat, ".json"},
		{"json", JSONFormat, ".json"},
		{"vsc", ScriptFormat, ".vsc"},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if f != tt.want || f.Suffix() != tt.suffix {
			t.Errorf("%q: got %s %q want %s %q", tt.in, f, f.Suffix(), tt.want, tt.suffix)
		}
	}
	bad := Format(7)
	if bad.String() != "Format(7)" || bad.Suffix() != "" {
		t.Errorf("unexpected %s %q", bad, bad.Suffix())
	}
	if _, err := bad.MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}
