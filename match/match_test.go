package match

import (
	"testing"

	"github.com/signadot/vscript/encode"
	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/parse"
)

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{in: "a = 1", match: "a = 1", res: true},
	{in: "a = 0", match: "a = 1", res: false},
	{in: "xs = [1]", match: "xs = [1]", res: true},
	{in: "xs = []", match: "xs = []", res: true},
	{in: "xs = [1]", match: "xs = [2]", res: false},
	{in: "xs = [1]", match: "xs = [1, 2]", res: false},
	{in: "xs = [1]", match: "xs = hello", res: false},
	{in: "a = b\nc = d", match: "a = b", res: true},
	{in: "a = b", match: "a = b\nc = d", res: false},
	{in: "a = b", match: "a = null", res: true},
	{in: "a = b", match: "", res: true},
	{in: "a = 1", match: "a = 1.0", res: false},
	{in: `a = "1"`, match: "a = 1", res: false},
	{in: "server { port = 80, enabled, debug }", match: "server { debug }", res: true},
	{in: "server { port = 80, enabled, debug }", match: "server { enabled, debug }", res: true},
	{in: "server { port = 80, enabled, debug }", match: "server { debug, enabled }", res: false},
	{in: "server { port = 80, enabled, debug }", match: "server { port = null, tags = null }", res: false},
	{in: "listen 0.0.0.0 80", match: "listen 0.0.0.0", res: true},
	{in: "listen 0.0.0.0 80", match: "listen 80", res: true},
	{in: "listen 0.0.0.0 80", match: "listen 81", res: false},
	{in: "listen 0.0.0.0 80", match: "bind 0.0.0.0", res: false},
	{in: "xs = [{ a = 1, b = 2 }]", match: "xs = [{ b = 2 }]", res: true},
}

func TestMatch(t *testing.T) {
	for i := range matchTests {
		mt := &matchTests[i]
		doc, err := parse.ParseString(mt.in)
		if err != nil {
			t.Fatalf("# could not decode\n%s\n# error %v\n", mt.in, err)
		}
		m, err := parse.ParseString(mt.match)
		if err != nil {
			t.Fatalf("# could not decode\n%s\n# error %v\n", mt.match, err)
		}
		if res := Match(doc, m); res != mt.res {
			t.Errorf("match %q against %q: got %t want %t", mt.in, mt.match, res, mt.res)
		}
	}
}

func TestMatchScalarRoot(t *testing.T) {
	if !Match(ir.FromInt(1), ir.Null()) {
		t.Errorf("null should match anything")
	}
	if Match(ir.Null(), ir.FromInt(1)) {
		t.Errorf("1 should not match null")
	}
}

func TestTrim(t *testing.T) {
	cases := []struct {
		pattern, in, want string
	}{
		{
			pattern: "server { port = null }",
			in:      "server { port = 80 tags = [a] enabled }\nother = 1",
			want:    "server { port = 80 }",
		},
		{
			pattern: "server { enabled }",
			in:      "server { port = 80, debug, enabled }",
			want:    "server { enabled }",
		},
		{
			pattern: "xs = [null, { a = null }]",
			in:      "xs = [1, { a = 2, b = 3 }]",
			want:    "xs = [1, { a = 2 }]",
		},
		{
			pattern: "listen 80",
			in:      "listen 0.0.0.0 80\nx = 1",
			want:    "listen 80",
		},
	}
	for _, c := range cases {
		p, err := parse.ParseString(c.pattern)
		if err != nil {
			t.Fatal(err)
		}
		doc, err := parse.ParseString(c.in)
		if err != nil {
			t.Fatal(err)
		}
		want, err := parse.ParseString(c.want)
		if err != nil {
			t.Fatal(err)
		}
		if !Match(doc, p) {
			t.Fatalf("%q does not match %q", c.in, c.pattern)
		}
		got := Trim(p, doc)
		if !ir.Equal(want, got) {
			t.Errorf("trim %q with %q: got\n%s\nwant\n%s", c.in, c.pattern, encode.String(got), encode.String(want))
		}
	}
}
