package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/vscript/debug"
	"github.com/signadot/vscript/format"
	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/token"
)

// EncState is the state of a single call to Encode.
type EncState struct {
	depth, indent int

	root             bool
	quoteNames       bool
	quoteValues      bool
	escapeWhitespace bool
	wire             bool

	format format.Format

	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes node to w. A failed write to w aborts with a
// *SinkError.
//
// Identifiers are written as their name followed by their values. An
// identifier must start with a scalar value to read back as an
// identifier: with no values it reads back as a bare string, and with a
// leading node or array it reads back as a collection of that name.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		root:   true,
	}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode %v as %s root=%t wire=%t\n", node, es.format, es.root, es.wire)
	}
	s := &sink{w: w}
	if es.format != format.ScriptFormat {
		return encodePlain(node, s, es)
	}
	if es.root && node.Kind() == ir.NodeKind {
		if err := encodeMembers(node, s, es); err != nil {
			return err
		}
	} else {
		name := node.Name()
		if es.root {
			name = ""
		}
		if err := encodeMember(node, name, s, es); err != nil {
			return err
		}
	}
	if es.wire || s.n == 0 {
		return nil
	}
	return writeString(s, "\n")
}

// String returns the encoding of node.
func String(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	// writes to a bytes.Buffer do not fail
	_ = Encode(node, buf, opts...)
	return buf.String()
}

func writeNL(w io.Writer, es *EncState) error {
	indentString := strings.Repeat(" ", es.indent*es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, k ir.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}

func writeSep(w io.Writer, es *EncState, k ir.Kind, sep string) error {
	return writeString(w, applyColor(es, k, SepColor, sep))
}

// encodeMembers writes the children of a document root, one per line.
func encodeMembers(node *ir.Node, w io.Writer, es *EncState) error {
	for i, c := range node.Children() {
		if i > 0 {
			var err error
			if es.wire {
				err = writeSep(w, es, ir.NodeKind, ", ")
			} else {
				err = writeNL(w, es)
			}
			if err != nil {
				return err
			}
		}
		if err := encodeMember(c, c.Name(), w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeMember(y *ir.Node, name string, w io.Writer, es *EncState) error {
	switch y.Kind() {
	case ir.IdentifierKind:
		return encodeIdentifier(y, w, es)
	case ir.NodeKind:
		if name != "" {
			if err := writeName(w, name, ir.NodeKind, es); err != nil {
				return err
			}
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		return encodeNode(y, w, es)
	}
	if name != "" {
		if err := writeName(w, name, y.Kind(), es); err != nil {
			return err
		}
		if err := writeSep(w, es, y.Kind(), " = "); err != nil {
			return err
		}
	}
	if y.Kind() == ir.ArrayKind {
		return encodeArray(y, w, es)
	}
	return encodeValue(y, w, es)
}

func encodeNode(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Len() == 0 {
		return writeSep(w, es, ir.NodeKind, "{}")
	}
	if err := writeSep(w, es, ir.NodeKind, "{"); err != nil {
		return err
	}
	es.depth++
	for i, c := range node.Children() {
		var err error
		switch {
		case !es.wire:
			err = writeNL(w, es)
		case i == 0:
			err = writeString(w, " ")
		default:
			err = writeSep(w, es, ir.NodeKind, ", ")
		}
		if err != nil {
			return err
		}
		if err := encodeMember(c, c.Name(), w, es); err != nil {
			return err
		}
	}
	es.depth--
	if es.wire {
		if err := writeString(w, " "); err != nil {
			return err
		}
	} else if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.NodeKind, "}")
}

// encodeArray writes an array inline when all its elements are scalars,
// otherwise one element per line.
func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Len() == 0 {
		return writeSep(w, es, ir.ArrayKind, "[]")
	}
	multi := false
	if !es.wire {
		for _, c := range node.Children() {
			if c.Kind().IsCollection() {
				multi = true
				break
			}
		}
	}
	if err := writeSep(w, es, ir.ArrayKind, "["); err != nil {
		return err
	}
	if multi {
		es.depth++
	}
	for i, c := range node.Children() {
		if i > 0 {
			sep := ", "
			if multi {
				sep = ","
			}
			if err := writeSep(w, es, ir.ArrayKind, sep); err != nil {
				return err
			}
		}
		if multi {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := encodeMember(c, c.Name(), w, es); err != nil {
			return err
		}
	}
	if multi {
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ArrayKind, "]")
}

// encodeIdentifier writes the statement form: the name followed by the
// values. Names of the values are not written.
func encodeIdentifier(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeName(w, node.Name(), ir.IdentifierKind, es); err != nil {
		return err
	}
	for _, c := range node.Children() {
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := encodeMember(c, "", w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeValue(y *ir.Node, w io.Writer, es *EncState) error {
	var v string
	switch y.Kind() {
	case ir.StringKind:
		v = y.Str()
		if es.quoteValues || token.NeedsQuote(v) {
			v = token.Quote(v, true, es.escapeWhitespace)
		}
	default:
		v = ir.Literal(y)
	}
	return writeString(w, applyColor(es, y.Kind(), ValueColor, v))
}

func writeName(w io.Writer, name string, k ir.Kind, es *EncState) error {
	if es.quoteNames || token.NeedsQuoteName(name) {
		name = token.Quote(name, true, es.escapeWhitespace)
	}
	return writeString(w, applyColor(es, k, NameColor, name))
}

// encodePlain writes the plain projection of node as YAML or JSON.
func encodePlain(node *ir.Node, w io.Writer, es *EncState) error {
	v := ir.ToPlain(node)
	if !es.root && node.Name() != "" {
		v = yaml.MapSlice{{Key: node.Name(), Value: v}}
	}
	yOpts := []yaml.EncodeOption{yaml.Indent(es.indent)}
	if es.format.IsJSON() {
		yOpts = append(yOpts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(v, yOpts...)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncoding, es.format, err)
	}
	_, err = w.Write(d)
	return err
}
