package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/vscript/format"
	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/parse"
	"github.com/signadot/vscript/schema"
)

func mustParse(t *testing.T, s string, opts ...parse.ParseOption) *ir.Node {
	t.Helper()
	y, err := parse.ParseString(s, opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return y
}

func TestInFormat(t *testing.T) {
	y := format.YAMLFormat
	cases := []struct {
		cfg  *MainConfig
		file string
		want format.Format
	}{
		{&MainConfig{}, "-", format.ScriptFormat},
		{&MainConfig{}, "a.json", format.JSONFormat},
		{&MainConfig{}, "a.yml", format.YAMLFormat},
		{&MainConfig{}, "a.vsc", format.ScriptFormat},
		{&MainConfig{J: true}, "a.yaml", format.JSONFormat},
		{&MainConfig{J: true, InFormat: &y}, "a.json", format.YAMLFormat},
	}
	for _, c := range cases {
		if got := c.cfg.inFormat(c.file); got != c.want {
			t.Errorf("inFormat(%q): got %s want %s", c.file, got, c.want)
		}
	}
}

func TestViewReader(t *testing.T) {
	cases := []struct {
		in, file, want string
	}{
		{"a = 1\n---\nb = 2", "-", "a = 1\n---\nb = 2\n"},
		{`{"a": 1, "b": [true, "x"]}`, "in.json", "a = 1\nb = [true, x]\n"},
		{"server { port = 8080 }", "-", "server {\n  port = 8080\n}\n"},
	}
	for _, c := range cases {
		buf := bytes.NewBuffer(nil)
		if err := viewReader(&MainConfig{}, buf, strings.NewReader(c.in), c.file); err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if diff := cmp.Diff(c.want, buf.String()); diff != "" {
			t.Errorf("%q (-want +got):\n%s", c.in, diff)
		}
	}
}

func TestViewReaderError(t *testing.T) {
	err := viewReader(&MainConfig{}, bytes.NewBuffer(nil), strings.NewReader("a = 1\n---\nb {"), "-")
	if err == nil || !strings.Contains(err.Error(), "document 1") {
		t.Errorf("expected error on document 1, got %v", err)
	}
}

func TestFormatDoc(t *testing.T) {
	in := "a=1\nserver{port=8080 tags=[\"a\",\"b\"]}"
	out, err := formatDoc(&MainConfig{}, []byte(in), "a.vsc")
	if err != nil {
		t.Fatal(err)
	}
	want := "a = 1\nserver {\n  port = 8080\n  tags = [a, b]\n}\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	again, err := formatDoc(&MainConfig{}, out, "a.vsc")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, again) {
		t.Errorf("formatting is not stable:\n%s", again)
	}
}

func TestGetDoc(t *testing.T) {
	y := mustParse(t, `server { port = 8080 tags = [ "a", "b" ] enabled }`)
	buf := bytes.NewBuffer(nil)
	found, err := getDoc(&MainConfig{}, buf, y, normPath(".server.tags[1]"), false)
	if err != nil {
		t.Fatal(err)
	}
	if !found || buf.String() != "b\n" {
		t.Errorf("got %t %q", found, buf.String())
	}
	found, err = getDoc(&MainConfig{}, buf, y, "$.server.nope", true)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Errorf("expected nothing at $.server.nope")
	}
}

func TestSetDoc(t *testing.T) {
	y := mustParse(t, `server { port = 8080 }`)
	if err := setDoc(y, "$.server.port", "9090", false); err != nil {
		t.Fatal(err)
	}
	if err := setDoc(y, "$.server.host", "9090", true); err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `server { port = 9090 host = "9090" }`)
	if !ir.Equal(want, y) {
		t.Errorf("got %v", y)
	}
	if err := setDoc(y, "$.nope.x", "1", false); err == nil {
		t.Errorf("expected error setting under a missing node")
	}
}

func TestCheckDocs(t *testing.T) {
	s, err := schema.Load(mustParse(t, `
template server {
    kind = Node
    fields = [Integer]
}`))
	if err != nil {
		t.Fatal(err)
	}
	docs := []*ir.Node{
		mustParse(t, "server { port = 1 }"),
		mustParse(t, "server { port = x }"),
	}
	buf := bytes.NewBuffer(nil)
	if checkDocs(buf, s, "a.vsc", docs) {
		t.Errorf("expected failure")
	}
	if !strings.HasPrefix(buf.String(), "a.vsc[1]:\n") {
		t.Errorf("unexpected report %q", buf.String())
	}
	buf.Reset()
	if !checkDocs(buf, s, "a.vsc", docs[:1]) || buf.Len() != 0 {
		t.Errorf("expected success, got %q", buf.String())
	}
}

func TestDiffNodes(t *testing.T) {
	a := mustParse(t, "a = 1")
	b := mustParse(t, "a = 2")
	cases := []struct {
		cfg  *DiffConfig
		want string
	}{
		{&DiffConfig{MainConfig: &MainConfig{}}, "replace $.a: 1 -> 2\n"},
		{&DiffConfig{MainConfig: &MainConfig{}, Text: true}, "- a = 1\n+ a = 2\n"},
		{&DiffConfig{MainConfig: &MainConfig{}, Tree: true},
			"change {\n  op = replace\n  path = $.a\n  from = 1\n  to = 2\n}\n"},
	}
	for _, c := range cases {
		buf := bytes.NewBuffer(nil)
		differs, err := diffNodes(c.cfg, buf, a, b)
		if err != nil {
			t.Fatal(err)
		}
		if !differs {
			t.Errorf("expected a difference")
		}
		if diff := cmp.Diff(c.want, buf.String()); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
		buf.Reset()
		differs, err = diffNodes(c.cfg, buf, a, a.Clone())
		if err != nil {
			t.Fatal(err)
		}
		if differs || buf.Len() != 0 {
			t.Errorf("expected no difference, got %q", buf.String())
		}
	}
}

func TestPatchDoc(t *testing.T) {
	y := mustParse(t, "a = 1\nb = 2")
	merge := &PatchConfig{MainConfig: &MainConfig{}, Merge: true}
	res, err := patchDoc(merge, y, mustParse(t, `{"b": null, "c": 3}`, parse.ParseJSON()))
	if err != nil {
		t.Fatal(err)
	}
	if want := mustParse(t, "a = 1\nc = 3"); !ir.Equal(want, res) {
		t.Errorf("merge: got %v", res)
	}

	jp := &PatchConfig{MainConfig: &MainConfig{}}
	res, err = patchDoc(jp, y, mustParse(t, `{ op = replace, path = "/a", value = 5 }`))
	if err != nil {
		t.Fatal(err)
	}
	if want := mustParse(t, "a = 5\nb = 2"); !ir.Equal(want, res) {
		t.Errorf("json patch: got %v", res)
	}
}

func TestPatchFormat(t *testing.T) {
	cfg := &PatchConfig{MainConfig: &MainConfig{}}
	if f := cfg.patchFormat(false, `[]`); f != format.JSONFormat {
		t.Errorf("string patch: got %s", f)
	}
	if f := cfg.patchFormat(true, "p.vsc"); f != format.ScriptFormat {
		t.Errorf("file patch: got %s", f)
	}
	y := format.YAMLFormat
	cfg.PatchFormat = &y
	if f := cfg.patchFormat(true, "p.json"); f != format.YAMLFormat {
		t.Errorf("-P: got %s", f)
	}
}

func TestMatchDocs(t *testing.T) {
	docs := []*ir.Node{
		mustParse(t, "server { port = 80 host = a }"),
		mustParse(t, "server { port = 81 host = b }"),
		mustParse(t, "client { port = 80 }"),
	}
	pattern := mustParse(t, "server { port = 80 }")
	res := matchDocs(nil, false, pattern, docs)
	if len(res) != 1 || res[0] != docs[0] {
		t.Fatalf("expected the first document, got %d results", len(res))
	}
	res = matchDocs(nil, true, mustParse(t, "server { host = null }"), docs)
	if len(res) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res))
	}
	if want := mustParse(t, "server { host = b }"); !ir.Equal(want, res[1]) {
		t.Errorf("got %v", res[1])
	}
}
