package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/vscript/token"
)

var (
	// ErrUnbalanced reports a closer with nothing to close or input that
	// ends with collections still open.
	ErrUnbalanced = errors.New("unbalanced")
	// ErrMismatch reports a closer of the wrong kind for the innermost
	// open collection.
	ErrMismatch = errors.New("mismatched closer")
	// ErrUnterminated reports an unterminated quoted string or block
	// comment.
	ErrUnterminated = token.ErrUnterminated
	ErrUnexpected   = token.ErrUnexpected
)

// Error is a parse error with the position of the offending token and a
// description of the enclosing scope.
type Error struct {
	Err   error
	Pos   token.Pos
	Scope string
}

func (e *Error) Error() string {
	if e.Scope == "" {
		return fmt.Sprintf("%s at line %d, column %d", e.Err, e.Pos.Line, e.Pos.Col)
	}
	return fmt.Sprintf("%s at line %d, column %d %s", e.Err, e.Pos.Line, e.Pos.Col, e.Scope)
}

func (e *Error) Unwrap() error {
	return e.Err
}
