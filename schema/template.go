package schema

import (
	"slices"

	"github.com/signadot/vscript/ir"
)

// Mask is a bit mask of kinds.
type Mask interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Subject is what a Template validates. Len and KindAt are only called
// on subjects whose kind is a collection kind.
type Subject[K Mask] interface {
	Kind() K
	Name() string
	Len() int
	KindAt(i int) K
}

// Field is the expected kind of one child of a collection.
type Field[K Mask] struct {
	Kind     K
	Optional bool
}

type Template[K Mask] struct {
	// Kind is the set of permitted kinds.
	Kind K
	// Names lists permitted names. An empty list permits any name.
	Names []string
	// Fields is the layout of collection children.
	Fields []Field[K]
	// DenyEmpty rejects empty collections when Fields is empty.
	DenyEmpty bool
	// Collections is the set of kinds whose children are checked
	// against Fields.
	Collections K
}

type NodeTemplate = Template[ir.Kind]

// NewNodeTemplate returns a template for ir.Node trees accepting kinds
// in k.
func NewNodeTemplate(k ir.Kind, fields ...Field[ir.Kind]) *NodeTemplate {
	return &NodeTemplate{
		Kind:        k,
		Fields:      fields,
		Collections: ir.CollectionKinds,
	}
}

func (t *Template[K]) ValidateKind(s Subject[K]) bool {
	return s.Kind()&t.Kind != 0
}

func (t *Template[K]) ValidateIdentity(s Subject[K]) bool {
	return len(t.Names) == 0 || slices.Contains(t.Names, s.Name())
}

// ValidateLayout checks the children of a collection against the
// fields. There may not be more children than fields. Each child must
// match its field's kind, and fields left over after the last child must
// be optional, either themselves or because an optional field came
// before them.
func (t *Template[K]) ValidateLayout(s Subject[K]) bool {
	_, ok := t.checkLayout(s)
	return ok
}

// checkLayout returns the index of the first offending child, or the
// child count when the problem is a missing field.
func (t *Template[K]) checkLayout(s Subject[K]) (int, bool) {
	n := s.Len()
	if len(t.Fields) == 0 {
		return 0, n > 0 || !t.DenyEmpty
	}
	if n > len(t.Fields) {
		return len(t.Fields), false
	}
	optional := false
	for i := range n {
		f := &t.Fields[i]
		if f.Optional {
			optional = true
		}
		if s.KindAt(i)&f.Kind == 0 {
			return i, false
		}
	}
	if n == len(t.Fields) || optional {
		return n, true
	}
	return n, t.Fields[n].Optional
}

func (t *Template[K]) Validate(s Subject[K]) bool {
	if !t.ValidateKind(s) || !t.ValidateIdentity(s) {
		return false
	}
	return s.Kind()&t.Collections == 0 || t.ValidateLayout(s)
}
