// Package gomap decodes documents into Go values and encodes Go values as
// documents.
//
// Values travel through the plain projection of the tree (see
// ir.ToPlain) and goccy/go-yaml, so struct fields are mapped with yaml
// struct tags:
//
//	type Server struct {
//		Port int      `yaml:"port"`
//		Tags []string `yaml:"tags"`
//	}
//	var cfg struct {
//		Server Server `yaml:"server"`
//	}
//	err := gomap.Load([]byte(`server { port = 8080 tags = [a, b] }`), &cfg)
package gomap

import (
	"github.com/goccy/go-yaml"

	"github.com/signadot/vscript/format"
	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/parse"
)

type fromOpts struct {
	format format.Format
}

func (do *fromOpts) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(do.format),
	}
}

type FromOption func(*fromOpts)

func LoadFormat(f format.Format) FromOption { return func(o *fromOpts) { o.format = f } }

// IRFromer is implemented by values that decode themselves from a tree.
type IRFromer interface {
	FromIR(*ir.Node) error
}

// Load parses d and decodes it into p, which must be a pointer.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	node, err := parse.Parse(d, do.parseOpts()...)
	if err != nil {
		return err
	}
	return FromIR(node, p)
}

// FromIR decodes node into p, which must be a pointer.
func FromIR(node *ir.Node, p any) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node)
	}
	d, err := yaml.Marshal(ir.ToPlain(node))
	if err != nil {
		return err
	}
	return yaml.Unmarshal(d, p)
}

// ToIR encodes v as a tree. Mappings keep the field order of structs and
// yaml.MapSlice values; Go maps come out sorted by key.
func ToIR(v any) (*ir.Node, error) {
	d, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, parse.ParseYAML())
}
