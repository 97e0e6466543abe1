// Package eval expands $[...] expressions in the string values of a
// tree.
//
// Expressions are evaluated with expr-lang against an environment of
// named values. A string value consisting of exactly .[expr] is replaced
// by the value of expr, of whatever kind; elsewhere $[expr] and .[expr]
// are replaced by the text of the value.
//
// Within expressions the functions whereami(), getpath(path),
// truthy(path) and getenv(name) are available. LoadEnv reads a base
// environment from $VS_ENV.
//
// # Related Packages
//
//   - github.com/signadot/vscript/ir - paths and the plain projection
//   - github.com/signadot/vscript/encode - rendering non-string results
package eval
