// Package match compares documents against patterns.
//
// A pattern is an ordinary tree read as a partial description of a
// document:
//
//   - null matches anything
//   - a scalar matches an equal scalar of the same kind
//   - an array matches an array of the same length whose elements match
//     element by element
//   - a node matches a node when every named pattern member matches the
//     first document member with that name, and the nameless pattern
//     members match nameless document members in order, skipping any
//     others
//   - an identifier matches like a node, and the names must be equal
package match

import (
	"github.com/signadot/vscript/debug"
	"github.com/signadot/vscript/ir"
)

// Match reports whether doc matches pattern.
func Match(doc, pattern *ir.Node) bool {
	if debug.Match() {
		debug.Logf("match %s at %s\n", pattern.Kind(), pattern.Path())
	}
	pk := pattern.Kind()
	if pk == ir.NullKind {
		return true
	}
	if doc.Kind() != pk {
		return false
	}
	switch pk {
	case ir.ArrayKind:
		return matchArray(doc, pattern)
	case ir.IdentifierKind:
		if doc.Name() != pattern.Name() {
			return false
		}
		return matchMembers(doc, pattern) != nil
	case ir.NodeKind:
		return matchMembers(doc, pattern) != nil
	default:
		return ir.CompareValue(doc, pattern) == 0
	}
}

func matchArray(doc, pattern *ir.Node) bool {
	if doc.Len() != pattern.Len() {
		return false
	}
	for i := range doc.Len() {
		if !Match(doc.Child(i), pattern.Child(i)) {
			return false
		}
	}
	return true
}

// matchMembers returns, for each child of pattern, the matching child of
// doc, or nil if some pattern child has no match.
func matchMembers(doc, pattern *ir.Node) []*ir.Node {
	res := make([]*ir.Node, 0, pattern.Len())
	docs := doc.Children()
	di := 0
	for _, pc := range pattern.Children() {
		if name := pc.Name(); name != "" {
			dc := doc.Find(name)
			if dc == nil || !Match(dc, pc) {
				return nil
			}
			res = append(res, dc)
			continue
		}
		var found *ir.Node
		for ; di < len(docs); di++ {
			dc := docs[di]
			if dc.Name() == "" && Match(dc, pc) {
				found = dc
				di++
				break
			}
		}
		if found == nil {
			return nil
		}
		res = append(res, found)
	}
	return res
}

// Trim returns a copy of doc restricted to the parts pattern describes.
// Members of nodes that no pattern member matches are dropped; array
// elements are trimmed position by position. doc is expected to match
// pattern.
func Trim(pattern, doc *ir.Node) *ir.Node {
	switch pk := pattern.Kind(); pk {
	case ir.NodeKind, ir.IdentifierKind:
		if doc.Kind() != pk {
			return doc.Clone()
		}
		matched := matchMembers(doc, pattern)
		if matched == nil {
			return doc.Clone()
		}
		keep := make(map[*ir.Node]*ir.Node, len(matched))
		for i, dc := range matched {
			keep[dc] = pattern.Child(i)
		}
		res := ir.New(pk).WithName(doc.Name())
		for _, dc := range doc.Children() {
			if pc := keep[dc]; pc != nil {
				res.Append(Trim(pc, dc))
			}
		}
		return res
	case ir.ArrayKind:
		if doc.Kind() != ir.ArrayKind {
			return doc.Clone()
		}
		res := ir.New(ir.ArrayKind).WithName(doc.Name())
		for i := range min(doc.Len(), pattern.Len()) {
			res.Append(Trim(pattern.Child(i), doc.Child(i)))
		}
		return res
	default:
		return doc.Clone()
	}
}
