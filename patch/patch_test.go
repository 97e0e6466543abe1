package patch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/vscript/encode"
	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := parse.ParseString(s)
	require.Nil(t, err)
	return y
}

func assertTree(t *testing.T, want string, got *ir.Node) {
	t.Helper()
	w := mustParse(t, want)
	assert.True(t, ir.Equal(w, got), "want:\n%s\ngot:\n%s", encode.String(w), encode.String(got))
}

func TestApply(t *testing.T) {
	doc := mustParse(t, `server { port = 8080 tags = [ "a", "b" ] }`)
	p := `[
		{"op": "replace", "path": "/server/port", "value": 9090},
		{"op": "add", "path": "/server/tags/-", "value": "c"},
		{"op": "add", "path": "/server/host", "value": "localhost"}
	]`
	res, err := Apply(doc, []byte(p))
	require.Nil(t, err)
	assertTree(t, `server { port = 9090 tags = [ "a", "b", "c" ] host = localhost }`, res)

	// doc is left alone
	assertTree(t, `server { port = 8080 tags = [ "a", "b" ] }`, doc)
}

func TestApplyNode(t *testing.T) {
	doc := mustParse(t, `server { port = 8080 tags = [ "a", "b" ] }`)
	p := mustParse(t, `{ op = remove, path = "/server/tags/0" }
{ op = test, path = "/server/port", value = 8080 }`)
	res, err := ApplyNode(doc, p)
	require.Nil(t, err)
	assertTree(t, `server { port = 8080 tags = [ "b" ] }`, res)
}

func TestApplyErrors(t *testing.T) {
	doc := mustParse(t, `a = 1`)
	cases := []string{
		`not json`,
		`[{"op": "remove", "path": "/nope"}]`,
		`[{"op": "test", "path": "/a", "value": 2}]`,
	}
	for _, p := range cases {
		res, err := Apply(doc, []byte(p))
		assert.Nil(t, res, p)
		assert.True(t, errors.Is(err, ErrPatch), "%s: %v", p, err)
	}
}

func TestMerge(t *testing.T) {
	doc := mustParse(t, `server { port = 8080 host = a }
name = x`)
	res, err := Merge(doc, []byte(`{"server": {"port": null, "debug": true}}`))
	require.Nil(t, err)
	assertTree(t, `server { host = a debug = true }
name = x`, res)
}

func TestMergeNode(t *testing.T) {
	doc := mustParse(t, `a = 1
b { c = 2 }`)
	res, err := MergeNode(doc, mustParse(t, `b { c = 3 }`))
	require.Nil(t, err)
	assertTree(t, `a = 1
b { c = 3 }`, res)
}

func TestCreateMerge(t *testing.T) {
	from := mustParse(t, "a = 1\nb = 2")
	to := mustParse(t, "a = 1\nb = 3\nc = x")
	p, err := CreateMerge(from, to)
	require.Nil(t, err)
	assertTree(t, "b = 3\nc = x", p)

	res, err := MergeNode(from, p)
	require.Nil(t, err)
	assertTree(t, "a = 1\nb = 3\nc = x", res)
}

func TestRestoreOrder(t *testing.T) {
	orig := mustParse(t, "z = 1\ny { b = 1, a = 2 }\nx = 3")
	y := mustParse(t, "new = 0\nx = 3\ny { a = 2, b = 1 }\nz = 1")
	restoreOrder(orig, y)
	assertTree(t, "z = 1\ny { b = 1, a = 2 }\nx = 3\nnew = 0", y)
}
