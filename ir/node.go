package ir

import (
	"fmt"
	"slices"
)

// Node is a tree element. The zero value is a nameless null.
type Node struct {
	Parent *Node

	name     string
	kind     Kind
	str      string
	i64      int64
	f64      float64
	b        bool
	children []*Node
}

// New returns a nameless node of kind k holding k's default payload.
func New(k Kind) *Node {
	n := &Node{}
	return n.Morph(k)
}

func Null() *Node {
	return &Node{kind: NullKind}
}

func FromString(v string) *Node {
	return &Node{kind: StringKind, str: v}
}

func FromInt(v int64) *Node {
	return &Node{kind: IntegerKind, i64: v}
}

func FromFloat(f float64) *Node {
	return &Node{kind: FloatKind, f64: f}
}

func FromBool(v bool) *Node {
	return &Node{kind: BooleanKind, b: v}
}

func NewArray(children ...*Node) *Node {
	return New(ArrayKind).Append(children...)
}

func NewNode(children ...*Node) *Node {
	return New(NodeKind).Append(children...)
}

func NewIdentifier(name string, children ...*Node) *Node {
	return New(IdentifierKind).WithName(name).Append(children...)
}

func (y *Node) Kind() Kind {
	if y.kind == 0 {
		return NullKind
	}
	return y.kind
}

func (y *Node) Name() string {
	return y.name
}

func (y *Node) SetName(name string) {
	y.name = name
}

func (y *Node) WithName(name string) *Node {
	y.name = name
	return y
}

func (y *Node) must(op string, want Kind) {
	if got := y.Kind(); !got.Has(want) {
		panic(&KindError{Op: op, Want: want, Got: got})
	}
}

// Morph changes the node's kind. The payload is reset to the default of
// k unless both the current kind and k are collections, in which case the
// children are kept.
func (y *Node) Morph(k Kind) *Node {
	if !k.IsSingle() {
		panic(&KindError{Op: "Morph", Want: AnyKind, Got: k})
	}
	keep := y.Kind().Has(CollectionKinds) && k.Has(CollectionKinds)
	y.kind = k
	y.str = ""
	y.i64 = 0
	y.f64 = 0
	y.b = false
	if keep {
		return y
	}
	for _, c := range y.children {
		c.Parent = nil
	}
	y.children = nil
	return y
}

func (y *Node) Str() string {
	y.must("Str", StringKind)
	return y.str
}

func (y *Node) SetStr(v string) {
	y.must("SetStr", StringKind)
	y.str = v
}

func (y *Node) Int() int64 {
	y.must("Int", IntegerKind)
	return y.i64
}

func (y *Node) SetInt(v int64) {
	y.must("SetInt", IntegerKind)
	y.i64 = v
}

func (y *Node) Float() float64 {
	y.must("Float", FloatKind)
	return y.f64
}

func (y *Node) SetFloat(v float64) {
	y.must("SetFloat", FloatKind)
	y.f64 = v
}

// Number returns the value of an Integer or Float node as a float64.
func (y *Node) Number() float64 {
	y.must("Number", NumericKinds)
	if y.kind == IntegerKind {
		return float64(y.i64)
	}
	return y.f64
}

func (y *Node) Bool() bool {
	y.must("Bool", BooleanKind)
	return y.b
}

func (y *Node) SetBool(v bool) {
	y.must("SetBool", BooleanKind)
	y.b = v
}

// Len returns the number of children of a collection.
func (y *Node) Len() int {
	y.must("Len", CollectionKinds)
	return len(y.children)
}

func (y *Node) Child(i int) *Node {
	y.must("Child", CollectionKinds)
	return y.children[i]
}

// KindAt returns the kind of the i'th child.
func (y *Node) KindAt(i int) Kind {
	return y.Child(i).Kind()
}

// Children returns a copy of the child list.
func (y *Node) Children() []*Node {
	y.must("Children", CollectionKinds)
	return slices.Clone(y.children)
}

// Append attaches children at the end of a collection and returns y.
func (y *Node) Append(children ...*Node) *Node {
	y.must("Append", CollectionKinds)
	for _, c := range children {
		y.adopt(c)
	}
	y.children = append(y.children, children...)
	return y
}

// Insert attaches children before position i.
func (y *Node) Insert(i int, children ...*Node) {
	y.must("Insert", CollectionKinds)
	if i < 0 || i > len(y.children) {
		panic(fmt.Sprintf("ir: insert index %d out of range [0,%d]", i, len(y.children)))
	}
	for _, c := range children {
		y.adopt(c)
	}
	y.children = slices.Insert(y.children, i, children...)
}

// Remove detaches and returns the i'th child.
func (y *Node) Remove(i int) *Node {
	y.must("Remove", CollectionKinds)
	c := y.children[i]
	y.children = slices.Delete(y.children, i, i+1)
	c.Parent = nil
	return c
}

// Replace swaps the i'th child for c and returns the old child.
func (y *Node) Replace(i int, c *Node) *Node {
	y.must("Replace", CollectionKinds)
	old := y.children[i]
	y.adopt(c)
	old.Parent = nil
	y.children[i] = c
	return old
}

func (y *Node) adopt(c *Node) {
	if c == nil {
		panic("ir: nil child")
	}
	if c.Parent != nil {
		panic(fmt.Errorf("%w: %s", ErrAttached, c.Path()))
	}
	c.Parent = y
}

// Find returns the first child named name, or nil.
func (y *Node) Find(name string) *Node {
	y.must("Find", CollectionKinds)
	for _, c := range y.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// FindAll returns all children named name, in order.
func (y *Node) FindAll(name string) []*Node {
	y.must("FindAll", CollectionKinds)
	var res []*Node
	for _, c := range y.children {
		if c.name == name {
			res = append(res, c)
		}
	}
	return res
}

// Index returns the position of c among y's children, or -1.
func (y *Node) Index(c *Node) int {
	y.must("Index", CollectionKinds)
	return slices.Index(y.children, c)
}

// Clone returns a deep copy of y without a parent.
func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = nil
	dst.name = y.name
	dst.kind = y.kind
	dst.str = y.str
	dst.i64 = y.i64
	dst.f64 = y.f64
	dst.b = y.b
	dst.children = nil
	if y.children != nil {
		dst.children = make([]*Node, len(y.children))
		for i, yc := range y.children {
			dc := yc.CloneTo(&Node{})
			dc.Parent = dst
			dst.children[i] = dc
		}
	}
	return dst
}

// Visit walks the tree depth first, calling f before (isPost false) and
// after (isPost true) each node's children. Children are only visited if
// the pre-order call returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.children {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
