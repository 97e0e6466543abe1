// Package libdiff compares vscript trees.
//
// # Usage
//
//	// structural changes between two trees
//	changes := libdiff.Diff(oldNode, newNode)
//	for _, c := range changes {
//		fmt.Println(c)
//	}
//
//	// line diff of the canonical encodings
//	txt, err := libdiff.TextNodes(oldNode, newNode)
//
// Children of collections are aligned before comparing: named children
// are matched by name and kind and compared recursively, nameless
// children are matched by kind and value. Unmatched children become
// inserts and deletes, and a delete directly followed by an insert is
// reported as a replace.
//
// Changes can themselves be rendered as a tree with [ToNode], so a diff
// can be written in any output format.
//
// # Related Packages
//
//   - github.com/signadot/vscript/ir - IR representation
//   - github.com/signadot/vscript/patch - JSON patch and merge patch
package libdiff
