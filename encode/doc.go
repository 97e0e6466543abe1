// Package encode writes [ir.Node] trees as script format text, or as YAML
// or JSON through their plain projection.
//
// # Usage
//
//	node := ir.NewNode(
//	    ir.NewNode(ir.FromInt(8080).WithName("port")).WithName("server"),
//	)
//	err := encode.Encode(node, os.Stdout)
//
//	// single line, every string quoted
//	s := encode.String(node, encode.Wire(true), encode.QuoteValues(true))
//
//	// YAML
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// The script format output is canonical: parsing it yields a tree equal
// to the input for any combination of quoting options.
//
// # Related Packages
//
//   - github.com/signadot/vscript/ir - the tree
//   - github.com/signadot/vscript/parse - reading text into trees
package encode
