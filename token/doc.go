// Package token provides tokenization support for the vscript format.
//
// A [Cursor] walks decoded code points with one code point of lookahead
// and tracks line and column. A [Reader] turns a cursor into [Token]
// values: bare words, quoted strings, numbers, the structural characters
// '{' '}' '[' ']' '=' ',' and newlines. Comments ("//" to end of line and
// "/* ... */") produce no tokens.
//
// [Tokenize] is a function for tokenizing bytes.
//
// [Quote] and [NeedsQuote] are the inverse of the reader's string rules
// and are used by package encode.
package token
