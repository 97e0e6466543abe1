package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Names compare first, then values (see CompareValue).
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.name, b.name); c != 0 {
		return c
	}
	return CompareValue(a, b)
}

// CompareValue compares two nodes ignoring their own names.
// Order: Null < Boolean < Integer < Float < String < Array < Node < Identifier
//
// Collections of the same kind compare by size first and then child by
// child with Compare, stopping at the first difference.
func CompareValue(a, b *Node) int {
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return cmp.Compare(rank(ka), rank(kb))
	}
	switch ka {
	case NullKind:
		return 0
	case BooleanKind:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case IntegerKind:
		return cmp.Compare(a.i64, b.i64)
	case FloatKind:
		return cmp.Compare(a.f64, b.f64)
	case StringKind:
		return strings.Compare(a.str, b.str)
	default:
		return compareChildren(a, b)
	}
}

func compareChildren(a, b *Node) int {
	if c := cmp.Compare(len(a.children), len(b.children)); c != 0 {
		return c
	}
	for i := range a.children {
		if c := Compare(a.children[i], b.children[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether a and b have the same names and values.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
