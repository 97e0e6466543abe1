// Package ir provides the in-memory tree for vscript documents.
//
// # Overview
//
// Every document, whether parsed from text, built programmatically or
// converted from YAML or JSON, is represented as a tree of [Node] values.
// The tree carries no position or comment information and is purely
// semantic.
//
// # Node Structure
//
// A Node is a tagged union. Its [Kind] selects exactly one active payload:
//
//   - NullKind: no payload
//   - StringKind: a string
//   - IntegerKind: an int64
//   - FloatKind: a float64
//   - BooleanKind: a bool
//   - ArrayKind, NodeKind, IdentifierKind: an ordered list of children
//
// Any node may carry a name, since scalars appear as named fields inside
// collections. Children keep insertion order and point back to their
// parent.
//
// Kinds are bits, so masks such as [ValueKinds] or [CollectionKinds] test
// membership with [Kind.Has].
//
// # Creating Nodes
//
//	port := ir.FromInt(8080).WithName("port")
//	tags := ir.NewArray(ir.FromString("a"), ir.FromString("b")).WithName("tags")
//	server := ir.NewNode(port, tags).WithName("server")
//	root := ir.NewNode(server)
//
// Freeform text is typed with [FromLiteral]:
//
//	ir.FromLiteral("42")    // Integer 42
//	ir.FromLiteral("-3.5")  // Float -3.5
//	ir.FromLiteral("true")  // Boolean true
//	ir.FromLiteral("3.5.1") // String "3.5.1"
//
// # Misuse
//
// Reading or writing a payload that does not match the node's kind, or
// touching the children of a scalar, is a bug in the caller. These
// operations panic with a [*KindError] rather than returning an error.
//
// # Changing Kinds
//
// [Node.Morph] switches a node's kind. The payload resets to the new
// kind's default, except that children are kept when both the old and the
// new kind are collections.
//
// # Comparison
//
// [Compare] orders nodes by name and then by value. Scalars of different
// kinds never compare equal; collections compare by kind, size and then
// child by child.
//
// # Paths
//
// [Node.Path] and [Node.GetPath] use a small path syntax: "$" is the root,
// ".name" selects the first child with that name, "[i]" selects a child by
// position.
//
//	n, err := root.GetPath("$.server.tags[1]")
//
// # Related Packages
//
//   - github.com/signadot/vscript/parse - Parse text to IR
//   - github.com/signadot/vscript/encode - Encode IR to text
//   - github.com/signadot/vscript/schema - Validate IR against templates
package ir
