package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/parse"
)

const serverTemplates = `
template server {
    kind = Node
    names = [server, backend]
    fields = [Integer, Array, "String|Boolean?"]
    children {
        tags {
            kind = Array
            allowEmpty = false
            fields = [String, String?]
        }
    }
}
template port {
    kind = Integer
}
`

func loadSet(t *testing.T, src string) *Set {
	t.Helper()
	doc, err := parse.ParseString(src)
	require.Nil(t, err)
	s, err := Load(doc)
	require.Nil(t, err)
	return s
}

func TestLoad(t *testing.T) {
	s := loadSet(t, serverTemplates)
	require.Equal(t, 2, len(s.Rules()))

	server := s.Lookup("server")
	require.Equal(t, true, server != nil)
	assert.Equal(t, ir.NodeKind, server.Template.Kind)
	assert.Equal(t, []string{"server", "backend"}, server.Template.Names)
	assert.Equal(t, []Field[ir.Kind]{
		{Kind: ir.IntegerKind},
		{Kind: ir.ArrayKind},
		{Kind: ir.StringKind | ir.BooleanKind, Optional: true},
	}, server.Template.Fields)
	assert.Equal(t, false, server.Template.DenyEmpty)

	tags := server.Children["tags"]
	require.Equal(t, true, tags != nil)
	assert.Equal(t, true, tags.Template.DenyEmpty)
	assert.Equal(t, ir.ArrayKind, tags.Template.Kind)

	port := s.Lookup("port")
	require.Equal(t, true, port != nil)
	assert.Equal(t, 0, len(port.Template.Fields))
	assert.Equal(t, true, s.Lookup("nope") == nil)
}

func TestCheck(t *testing.T) {
	s := loadSet(t, serverTemplates)

	good, err := parse.ParseString("server { port = 8080 tags = [a, b] enabled }\nbackend { port = 9 tags = [x] }")
	require.Nil(t, err)
	assert.Nil(t, s.Check(good))

	bad, err := parse.ParseString("server { port = x tags = [a, 1, c] }")
	require.Nil(t, err)
	err = s.Check(bad)
	require.Equal(t, true, err != nil)
	assert.Equal(t, true, errors.Is(err, ErrKind))
	assert.Equal(t, true, errors.Is(err, ErrLayout))
	msg := err.Error()
	for _, want := range []string{
		`$.server: template "server": layout mismatch: child 0 is String, want Integer`,
		`$.server.port: template "port": kind not permitted`,
		`$.server.tags: template "tags": layout mismatch: 3 children, at most 2 permitted`,
	} {
		assert.Equal(t, true, strings.Contains(msg, want), want)
	}

	empty, err := parse.ParseString("server { port = 1 tags = [] }")
	require.Nil(t, err)
	err = s.Check(empty)
	assert.Equal(t, true, errors.Is(err, ErrLayout))
}

func TestLoadErrors(t *testing.T) {
	for i, src := range []string{
		"x = 1",
		"template { }",
		"template a b { }",
		"template a { bogus = 1 }",
		"template a { kind = Nope }",
		"template a { kind = 1 }",
		"template a { names = x }",
		"template a { names = [{}] }",
		"template a { allowEmpty = yes }",
		"template a { fields = [Integer, Nope] }",
		"template a { fields = [1] }",
		"template a { children = 1 }",
		"template a { children { [] } }",
		`template "" { }`,
	} {
		doc, err := parse.ParseString(src)
		require.Nil(t, err, src)
		_, err = Load(doc)
		assert.Equal(t, true, errors.Is(err, ErrTemplate), "#%d %s: %v", i, src, err)
	}
}
