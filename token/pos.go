package token

import "fmt"

// Pos is a position in a document. Line and Col start at 1; I is the
// byte offset.
type Pos struct {
	I    int
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.I, p.Line, p.Col)
}

// Short renders the position as "line:col".
func (p Pos) Short() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
