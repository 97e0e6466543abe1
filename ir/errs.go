package ir

import (
	"errors"
	"fmt"

	"github.com/signadot/vscript/format"
)

var (
	ErrKind      = errors.New("wrong kind")
	ErrAttached  = errors.New("node already attached")
	ErrPath      = errors.New("bad path")
	ErrPlain     = errors.New("unsupported plain value")
	ErrBadFormat = format.ErrBadFormat
)

// KindError is the panic value for payload or child access that does not
// match a node's kind.
type KindError struct {
	Op   string
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s: %s needs %s, node is %s", ErrKind, e.Op, e.Want, e.Got)
}

func (e *KindError) Unwrap() error {
	return ErrKind
}
