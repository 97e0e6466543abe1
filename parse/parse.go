package parse

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/vscript/debug"
	"github.com/signadot/vscript/format"
	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/token"
)

// Parse parses d into a tree whose root is a nameless node holding the
// document's members.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newOpts(opts)
	if pOpts.format != format.ScriptFormat {
		return parsePlain(d, pOpts)
	}
	return parseScript(token.NewCursorBytes(d), pOpts)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader parses the contents of r. Script format input is read
// incrementally; read errors wrap token.ErrSource.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newOpts(opts)
	if pOpts.format != format.ScriptFormat {
		d, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", token.ErrSource, err)
		}
		return parsePlain(d, pOpts)
	}
	return parseScript(token.NewCursorReader(r), pOpts)
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{format: format.ScriptFormat}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

func parsePlain(d []byte, opts *parseOpts) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", opts.format, err)
	}
	if v == nil {
		return ir.NewNode(), nil
	}
	y, err := ir.FromPlain(v)
	if err != nil {
		return nil, err
	}
	if y.Kind() != ir.NodeKind {
		y = ir.NewNode(y)
	}
	return y, nil
}

type state int

const (
	// at the start of a node member
	stMember state = iota
	// a scalar was read and waits for what follows to give it a role
	stPending
	// after "name =", expecting the value
	stValue
	// inside an identifier, collecting its values
	stStatement
	// inside an array, expecting an element or ']'
	stArrayElem
	// inside an array, after an element
	stArraySep
)

func (s state) String() string {
	switch s {
	case stMember:
		return "member"
	case stPending:
		return "pending"
	case stValue:
		return "value"
	case stStatement:
		return "statement"
	case stArrayElem:
		return "array-element"
	case stArraySep:
		return "array-separator"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// frame is an open collection. open is the token that opened it: the
// brace or bracket for nodes and arrays, the naming word for identifiers.
// The root frame has no opener.
type frame struct {
	node *ir.Node
	open token.Token
}

type parser struct {
	r     *token.Reader
	opts  *parseOpts
	look  *token.Token
	stack []frame
	state state

	// the scalar awaiting its role in stPending, or the name of an
	// assignment in stValue
	pending *token.Token
}

func parseScript(c *token.Cursor, opts *parseOpts) (*ir.Node, error) {
	root := ir.NewNode()
	p := &parser{
		r:     token.NewReader(c),
		opts:  opts,
		stack: []frame{{node: root}},
	}
	first, err := p.peek()
	if err != nil {
		return nil, err
	}
	opts.trackPos(root, first.Pos)
	if err := p.run(); err != nil {
		if opts.positions != nil {
			clearPositions(root, opts.positions)
		}
		return nil, err
	}
	return root, nil
}

func clearPositions(root *ir.Node, m map[*ir.Node]token.Pos) {
	_ = root.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if !isPost {
			delete(m, y)
		}
		return true, nil
	})
}

func (p *parser) run() error {
	for {
		t, err := p.next()
		if err != nil {
			return err
		}
		if debug.Parse() {
			debug.Logf("parse: %-15s %s %s\n", p.state, t.Info(), t.Describe())
		}
		done, err := p.step(t)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (p *parser) step(t token.Token) (bool, error) {
	switch p.state {
	case stMember:
		return p.member(t)
	case stPending:
		return false, p.pendingScalar(t)
	case stValue:
		return false, p.value(t)
	case stStatement:
		return false, p.statement(t)
	case stArrayElem:
		return false, p.arrayElem(t)
	case stArraySep:
		return false, p.arraySep(t)
	}
	panic(fmt.Sprintf("parse: bad state %d", p.state))
}

func (p *parser) member(t token.Token) (bool, error) {
	switch t.Type {
	case token.TNewline, token.TComma:
	case token.TString, token.TQuoted, token.TNumber:
		p.pending = &t
		p.state = stPending
	case token.TLCurl:
		p.openCollection(ir.NodeKind, nil, t)
	case token.TLSquare:
		p.openCollection(ir.ArrayKind, nil, t)
	case token.TRCurl:
		return false, p.closeCollection(ir.NodeKind, t)
	case token.TRSquare:
		return false, p.closeCollection(ir.ArrayKind, t)
	case token.TEquals:
		return false, p.errAt(fmt.Errorf("%w '=' with no name before it", ErrUnexpected), t.Pos)
	case token.TEOF:
		if len(p.stack) > 1 {
			return false, p.unclosed(t)
		}
		return true, nil
	}
	return false, nil
}

func (p *parser) pendingScalar(t token.Token) error {
	inStatement := p.top().node.Kind() == ir.IdentifierKind
	switch t.Type {
	case token.TEquals:
		if inStatement {
			p.endStatement()
		}
		p.state = stValue
		return nil
	case token.TLCurl, token.TLSquare:
		if !inStatement {
			k := ir.NodeKind
			if t.Type == token.TLSquare {
				k = ir.ArrayKind
			}
			p.openCollection(k, p.pending, t)
			p.pending = nil
			return nil
		}
	case token.TString, token.TQuoted, token.TNumber:
		if p.top().node.Kind() == ir.NodeKind {
			p.attachName(*p.pending)
			p.pending = nil
			p.unread(t)
			return nil
		}
	}
	p.attachValue(p.pending.Node(), p.pending.Pos)
	p.pending = nil
	p.resume()
	p.unread(t)
	return nil
}

func (p *parser) value(t token.Token) error {
	name := p.pending
	switch t.Type {
	case token.TNewline:
		return nil
	case token.TString, token.TQuoted, token.TNumber:
		p.pending = nil
		p.attachValue(t.Node().WithName(name.Text), name.Pos)
		p.resume()
		return nil
	case token.TLCurl:
		p.pending = nil
		p.openCollection(ir.NodeKind, name, t)
		return nil
	case token.TLSquare:
		p.pending = nil
		p.openCollection(ir.ArrayKind, name, t)
		return nil
	}
	return p.errAt(fmt.Errorf("%w %s, expected a value for %q", ErrUnexpected, t.Describe(), name.Text), t.Pos)
}

func (p *parser) statement(t token.Token) error {
	switch t.Type {
	case token.TString, token.TQuoted, token.TNumber:
		p.pending = &t
		p.state = stPending
	case token.TLCurl:
		p.openCollection(ir.NodeKind, nil, t)
	case token.TLSquare:
		p.openCollection(ir.ArrayKind, nil, t)
	case token.TEquals:
		return p.errAt(fmt.Errorf("%w '=' with no name before it", ErrUnexpected), t.Pos)
	default:
		p.endStatement()
		p.unread(t)
	}
	return nil
}

func (p *parser) arrayElem(t token.Token) error {
	switch t.Type {
	case token.TNewline:
	case token.TString, token.TQuoted, token.TNumber:
		p.pending = &t
		p.state = stPending
	case token.TLCurl:
		p.openCollection(ir.NodeKind, nil, t)
	case token.TLSquare:
		p.openCollection(ir.ArrayKind, nil, t)
	case token.TRSquare:
		return p.closeCollection(ir.ArrayKind, t)
	case token.TRCurl:
		return p.closeCollection(ir.NodeKind, t)
	case token.TEOF:
		return p.unclosed(t)
	default:
		return p.errAt(fmt.Errorf("%w %s, expected an array element", ErrUnexpected, t.Describe()), t.Pos)
	}
	return nil
}

func (p *parser) arraySep(t token.Token) error {
	switch t.Type {
	case token.TNewline:
	case token.TComma:
		p.state = stArrayElem
	case token.TRSquare:
		return p.closeCollection(ir.ArrayKind, t)
	case token.TRCurl:
		return p.closeCollection(ir.NodeKind, t)
	case token.TEOF:
		return p.unclosed(t)
	default:
		return p.errAt(fmt.Errorf("%w %s, expected ',' or ']'", ErrUnexpected, t.Describe()), t.Pos)
	}
	return nil
}

// openCollection starts a collection of kind k as a child of the
// innermost open collection, named by name if it is not nil.
func (p *parser) openCollection(k ir.Kind, name *token.Token, open token.Token) {
	y := ir.New(k)
	pos := open.Pos
	if name != nil {
		y.SetName(name.Text)
		pos = name.Pos
	}
	p.top().node.Append(y)
	p.opts.trackPos(y, pos)
	p.stack = append(p.stack, frame{node: y, open: open})
	if k == ir.ArrayKind {
		p.state = stArrayElem
	} else {
		p.state = stMember
	}
}

// closeCollection closes the innermost open collection, which must be of
// kind k.
func (p *parser) closeCollection(k ir.Kind, t token.Token) error {
	if len(p.stack) == 1 {
		return p.errAt(fmt.Errorf("%w: %s with nothing to close", ErrUnbalanced, t.Describe()), t.Pos)
	}
	if got := p.top().node.Kind(); got != k {
		return p.errAt(fmt.Errorf("%w: %s cannot close %s", ErrMismatch, t.Describe(), kindWord(got)), t.Pos)
	}
	p.stack = p.stack[:len(p.stack)-1]
	p.resume()
	return nil
}

// attachValue adds a scalar to the innermost open collection.
func (p *parser) attachValue(v *ir.Node, pos token.Pos) {
	p.top().node.Append(v)
	p.opts.trackPos(v, pos)
}

// attachName opens an identifier named by the word in t.
func (p *parser) attachName(t token.Token) {
	y := ir.NewIdentifier(t.Text)
	p.top().node.Append(y)
	p.opts.trackPos(y, t.Pos)
	p.stack = append(p.stack, frame{node: y, open: t})
	p.state = stStatement
}

// endStatement closes the innermost identifier. An identifier that
// collected no values is the scalar of its word.
func (p *parser) endStatement() {
	f := p.top()
	p.stack = p.stack[:len(p.stack)-1]
	if f.node.Len() == 0 {
		parent := p.top().node
		v := f.open.Node()
		parent.Replace(parent.Index(f.node), v)
		if p.opts.positions != nil {
			delete(p.opts.positions, f.node)
			p.opts.positions[v] = f.open.Pos
		}
	}
	p.resume()
}

// resume sets the state for continuing in the innermost open collection
// after one of its members is complete.
func (p *parser) resume() {
	switch p.top().node.Kind() {
	case ir.ArrayKind:
		p.state = stArraySep
	case ir.IdentifierKind:
		p.state = stStatement
	default:
		p.state = stMember
	}
}

func (p *parser) top() *frame {
	return &p.stack[len(p.stack)-1]
}

func (p *parser) next() (token.Token, error) {
	if p.look != nil {
		t := *p.look
		p.look = nil
		return t, nil
	}
	return p.read()
}

func (p *parser) peek() (token.Token, error) {
	if p.look == nil {
		t, err := p.read()
		if err != nil {
			return t, err
		}
		p.look = &t
	}
	return *p.look, nil
}

func (p *parser) unread(t token.Token) {
	if p.look != nil {
		panic("parse: double unread")
	}
	p.look = &t
}

func (p *parser) read() (token.Token, error) {
	t, err := p.r.Next()
	if err != nil {
		var te *token.TokenizeErr
		if errors.As(err, &te) {
			return t, p.errAt(te.Err, te.Pos)
		}
		return t, err
	}
	return t, nil
}

func (p *parser) unclosed(t token.Token) error {
	return p.errAt(fmt.Errorf("%w: %s before %s was closed", ErrUnbalanced, t.Describe(), kindWord(p.top().node.Kind())), t.Pos)
}

func (p *parser) errAt(err error, pos token.Pos) error {
	return &Error{Err: err, Pos: pos, Scope: p.scope()}
}

// scope describes the innermost open collection.
func (p *parser) scope() string {
	if len(p.stack) <= 1 {
		return ""
	}
	f := p.top()
	what := kindWord(f.node.Kind())
	if name := f.node.Name(); name != "" {
		what = fmt.Sprintf("%s %q", what, name)
	}
	return fmt.Sprintf("in %s opened at line %d, column %d", what, f.open.Pos.Line, f.open.Pos.Col)
}

func kindWord(k ir.Kind) string {
	switch k {
	case ir.NodeKind:
		return "node"
	case ir.ArrayKind:
		return "array"
	case ir.IdentifierKind:
		return "identifier"
	}
	return k.String()
}
