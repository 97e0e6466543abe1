package gomap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/vscript/format"
	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/parse"
)

type server struct {
	Port    int      `yaml:"port"`
	Tags    []string `yaml:"tags"`
	Enabled bool     `yaml:"enabled"`
}

type config struct {
	Server server `yaml:"server"`
	Name   string `yaml:"name"`
}

func TestLoad(t *testing.T) {
	var cfg config
	err := Load([]byte("server { port = 8080 tags = [a, b] enabled = true }\nname = x"), &cfg)
	require.Nil(t, err)
	assert.Equal(t, config{
		Server: server{Port: 8080, Tags: []string{"a", "b"}, Enabled: true},
		Name:   "x",
	}, cfg)
}

func TestLoadJSON(t *testing.T) {
	var cfg config
	err := Load([]byte(`{"server": {"port": 1}}`), &cfg, LoadFormat(format.JSONFormat))
	require.Nil(t, err)
	assert.Equal(t, 1, cfg.Server.Port)
}

func TestLoadParseError(t *testing.T) {
	var cfg config
	err := Load([]byte("server {"), &cfg)
	assert.True(t, errors.Is(err, parse.ErrUnbalanced), "%v", err)
}

type counted struct {
	n int
}

func (c *counted) FromIR(node *ir.Node) error {
	c.n = node.Len()
	return nil
}

func TestFromIRHook(t *testing.T) {
	c := &counted{}
	node, err := parse.ParseString("a = 1\nb = 2\nc")
	require.Nil(t, err)
	require.Nil(t, FromIR(node, c))
	assert.Equal(t, 3, c.n)
}

func TestToIR(t *testing.T) {
	y, err := ToIR(config{Server: server{Port: 80, Tags: []string{"a"}}, Name: "svc"})
	require.Nil(t, err)
	want, err := parse.ParseString("server { port = 80 tags = [a] enabled = false }\nname = svc")
	require.Nil(t, err)
	assert.True(t, ir.Equal(want, y), "got %v", y)
}
