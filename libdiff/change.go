package libdiff

import (
	"fmt"

	"github.com/signadot/vscript/encode"
	"github.com/signadot/vscript/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Change is one difference between two trees. From is nil for inserts
// and To is nil for deletes. Path addresses the changed node in the
// source tree, or in the destination tree for inserts.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c *Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, summary(c.To))
	case Delete:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, summary(c.From))
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op, c.Path, summary(c.From), summary(c.To))
	}
}

// summary renders a node on one line. Names are kept only where they are
// part of the value, that is for identifiers.
func summary(y *ir.Node) string {
	if y.Kind() != ir.IdentifierKind && y.Name() != "" {
		y = y.Clone().WithName("")
	}
	return encode.String(y, encode.Root(false), encode.Wire(true))
}

// ToNode renders changes as a tree of "change" nodes, each holding op and
// path fields followed by from and to when present.
func ToNode(changes []Change) *ir.Node {
	res := ir.NewNode()
	for i := range changes {
		c := &changes[i]
		n := ir.NewNode(
			ir.FromString(c.Op.String()).WithName("op"),
			ir.FromString(c.Path).WithName("path"),
		).WithName("change")
		if c.From != nil {
			n.Append(valueAs(c.From, "from"))
		}
		if c.To != nil {
			n.Append(valueAs(c.To, "to"))
		}
		res.Append(n)
	}
	return res
}

func valueAs(y *ir.Node, name string) *ir.Node {
	if y.Kind() == ir.IdentifierKind {
		// the identifier's own name is its statement word
		return ir.NewNode(y.Clone()).WithName(name)
	}
	return y.Clone().WithName(name)
}
