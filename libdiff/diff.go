package libdiff

import (
	"strconv"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/vscript/debug"
	"github.com/signadot/vscript/ir"
)

// Diff returns the changes turning from into to, in document order. It
// returns nil when the trees are equal. The root names are compared only
// when from and to are identifiers.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diffNode(from, to, &res)
	if debug.Patch() {
		debug.Logf("diff %v -> %v: %d changes\n", from, to, len(res))
	}
	return res
}

func diffNode(from, to *ir.Node, res *[]Change) {
	fk, tk := from.Kind(), to.Kind()
	if fk != tk {
		*res = append(*res, replace(from, to))
		return
	}
	if fk == ir.IdentifierKind && from.Name() != to.Name() {
		*res = append(*res, replace(from, to))
		return
	}
	if !fk.IsCollection() {
		if ir.CompareValue(from, to) != 0 {
			*res = append(*res, replace(from, to))
		}
		return
	}
	diffChildren(from, to, res)
}

func replace(from, to *ir.Node) Change {
	return Change{Op: Replace, Path: from.Path(), From: from, To: to}
}

// diffChildren aligns the children of two collections of the same kind
// by diffing their summary strings, each mapped to a rune.
func diffChildren(from, to *ir.Node, res *[]Change) {
	m := map[string]rune{}
	fromRunes := mapChildren(m, from)
	toRunes := mapChildren(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var deleted []int
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			deleted = deleted[:0]
			for range n {
				fc := from.Child(fi)
				deleted = append(deleted, len(*res))
				*res = append(*res, Change{Op: Delete, Path: fc.Path(), From: fc})
				fi++
			}
		case diffpatch.DiffEqual:
			deleted = deleted[:0]
			for range n {
				diffNode(from.Child(fi), to.Child(ti), res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				tc := to.Child(ti)
				if len(deleted) != 0 {
					c := &(*res)[deleted[0]]
					c.Op = Replace
					c.To = tc
					deleted = deleted[1:]
				} else {
					*res = append(*res, Change{Op: Insert, Path: tc.Path(), To: tc})
				}
				ti++
			}
			deleted = deleted[:0]
		}
	}
}

func mapChildren(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, node.Len())
	for i, c := range node.Children() {
		sum := summaryStr(c)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summaryStr keys a child for alignment. Named children are keyed by
// name and kind so that changed values are compared in place; nameless
// scalars carry their value.
func summaryStr(node *ir.Node) string {
	k := node.Kind()
	if name := node.Name(); name != "" {
		return k.String() + ":" + name
	}
	switch k {
	case ir.BooleanKind:
		return k.String() + "-" + strconv.FormatBool(node.Bool())
	case ir.IntegerKind, ir.FloatKind:
		return k.String() + "-" + ir.Literal(node)
	case ir.StringKind:
		if strings.Contains(node.Str(), "\n") {
			return k.String() + "/m"
		}
		return k.String() + "-" + node.Str()
	default:
		return k.String()
	}
}
