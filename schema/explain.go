package schema

import (
	"errors"
	"fmt"
)

var (
	ErrKind   = errors.New("kind not permitted")
	ErrName   = errors.New("name not permitted")
	ErrLayout = errors.New("layout mismatch")
)

// Explain is Validate reporting the first failing check as an error, or
// nil if s is valid.
func (t *Template[K]) Explain(s Subject[K]) error {
	if !t.ValidateKind(s) {
		return fmt.Errorf("%w: %v is not %v", ErrKind, s.Kind(), t.Kind)
	}
	if !t.ValidateIdentity(s) {
		return fmt.Errorf("%w: %q is not one of %q", ErrName, s.Name(), t.Names)
	}
	if s.Kind()&t.Collections == 0 {
		return nil
	}
	i, ok := t.checkLayout(s)
	if ok {
		return nil
	}
	n := s.Len()
	switch {
	case len(t.Fields) == 0:
		return fmt.Errorf("%w: empty %v", ErrLayout, s.Kind())
	case n > len(t.Fields):
		return fmt.Errorf("%w: %d children, at most %d permitted", ErrLayout, n, len(t.Fields))
	case i < n:
		return fmt.Errorf("%w: child %d is %v, want %v", ErrLayout, i, s.KindAt(i), t.Fields[i].Kind)
	default:
		return fmt.Errorf("%w: missing child %d of kind %v", ErrLayout, i, t.Fields[i].Kind)
	}
}
