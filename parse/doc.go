// Package parse reads script format text into an [ir.Node] tree.
//
// The parser is an explicit state machine over a [token.Reader] with one
// token of lookahead. It owns a stack of open collections; a document is
// accepted only when every opener has been closed by its matching closer,
// and on any error no tree is returned.
//
// A document is the contents of an implicit root node:
//
//	server {
//	    port = 8080
//	    tags = ["a", "b"]
//	    enabled
//	}
//	listen 0.0.0.0 8080
//
// Here "server" is a named node with an integer, an array and a nameless
// string member, and "listen" is an identifier (a statement) with two
// nameless values.
//
// YAML and JSON input is accepted with [ParseFormat] and maps through
// [ir.FromPlain].
package parse
