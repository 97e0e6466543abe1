package token

import (
	"fmt"

	"github.com/signadot/vscript/ir"
)

type TokenType int

const (
	TEOF TokenType = iota
	TString
	TQuoted
	TNumber
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TEquals
	TComma
	TNewline
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:     "TEOF",
		TString:  "TString",
		TQuoted:  "TQuoted",
		TNumber:  "TNumber",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TEquals:  "TEquals",
		TComma:   "TComma",
		TNewline: "TNewline",
	}[t]
}

// IsScalar reports whether tokens of this type carry a scalar value.
func (t TokenType) IsScalar() bool {
	switch t {
	case TString, TQuoted, TNumber:
		return true
	default:
		return false
	}
}

// Token is a lexical token. Text holds the raw text of bare words and
// numbers and the unescaped contents of quoted strings.
type Token struct {
	Type TokenType
	Pos  Pos
	Text string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// Describe renders the token for error messages.
func (t *Token) Describe() string {
	switch t.Type {
	case TEOF:
		return "end of input"
	case TNewline:
		return "newline"
	case TQuoted:
		return Quote(t.Text, true, true)
	default:
		return fmt.Sprintf("%q", t.Text)
	}
}

// Node returns the scalar value of a scalar token. Bare words and numbers
// are typed by ir.FromLiteral; quoted strings are always strings.
func (t *Token) Node() *ir.Node {
	switch t.Type {
	case TQuoted:
		return ir.FromString(t.Text)
	case TString, TNumber:
		return ir.FromLiteral(t.Text)
	default:
		panic(fmt.Sprintf("token: %s has no value", t.Type))
	}
}
