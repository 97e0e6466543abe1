package parse

import (
	"github.com/signadot/vscript/format"
	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/token"
)

type parseOpts struct {
	format    format.Format
	positions map[*ir.Node]token.Pos
}

type ParseOption func(*parseOpts)

func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}

// ParsePositions records the start position of every node parsed from
// script format text in m. The root maps to the position of the first
// token.
func ParsePositions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

func (o *parseOpts) trackPos(y *ir.Node, pos token.Pos) {
	if o.positions != nil {
		o.positions[y] = pos
	}
}
