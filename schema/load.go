package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/vscript/debug"
	"github.com/signadot/vscript/ir"
)

var ErrTemplate = errors.New("bad template")

// Rule is a template loaded from a document, with rules for named
// children.
type Rule struct {
	Name     string
	Template *NodeTemplate
	Children map[string]*Rule
}

// Set is a collection of rules, each applying to nodes with the rule's
// name or, if the rule lists names, with one of those.
type Set struct {
	rules  []*Rule
	byName map[string][]*Rule
}

func NewSet(rules ...*Rule) *Set {
	s := &Set{byName: map[string][]*Rule{}}
	for _, r := range rules {
		s.Add(r)
	}
	return s
}

func (s *Set) Add(r *Rule) {
	s.rules = append(s.rules, r)
	names := r.Template.Names
	if len(names) == 0 {
		names = []string{r.Name}
	}
	for _, name := range names {
		s.byName[name] = append(s.byName[name], r)
	}
}

func (s *Set) Rules() []*Rule {
	return s.rules
}

// Lookup returns the rule named name, or nil.
func (s *Set) Lookup(name string) *Rule {
	for _, r := range s.rules {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Load reads a set of rules from a document whose members are all of
// the form
//
//	template NAME { ... }
//
// The body of a template holds the keys kind, names, allowEmpty, fields
// and children.
func Load(doc *ir.Node) (*Set, error) {
	if doc.Kind() != ir.NodeKind {
		return nil, fmt.Errorf("%w: document is %s, not Node", ErrTemplate, doc.Kind())
	}
	s := NewSet()
	for _, c := range doc.Children() {
		if c.Kind() != ir.IdentifierKind || c.Name() != "template" || c.Len() != 2 ||
			c.KindAt(0) != ir.StringKind || c.KindAt(1) != ir.NodeKind {
			return nil, fmt.Errorf("%w: %s: expected template NAME { ... }", ErrTemplate, c.Path())
		}
		name := c.Child(0).Str()
		if name == "" {
			return nil, fmt.Errorf("%w: %s: empty template name", ErrTemplate, c.Path())
		}
		r, err := loadRule(name, c.Child(1))
		if err != nil {
			return nil, err
		}
		s.Add(r)
	}
	return s, nil
}

func loadRule(name string, body *ir.Node) (*Rule, error) {
	r := &Rule{
		Name:     name,
		Template: NewNodeTemplate(ir.AnyKind),
	}
	for _, f := range body.Children() {
		var err error
		switch f.Name() {
		case "kind":
			r.Template.Kind, err = kindOf(f)
		case "names":
			r.Template.Names, err = namesOf(f)
		case "allowEmpty":
			if f.Kind() != ir.BooleanKind {
				err = fmt.Errorf("%w: %s: allowEmpty must be true or false", ErrTemplate, f.Path())
				break
			}
			r.Template.DenyEmpty = !f.Bool()
		case "fields":
			r.Template.Fields, err = fieldsOf(f)
		case "children":
			r.Children, err = childrenOf(f)
		default:
			err = fmt.Errorf("%w: %s: unknown key %q", ErrTemplate, f.Path(), f.Name())
		}
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

func kindOf(f *ir.Node) (ir.Kind, error) {
	if f.Kind() != ir.StringKind {
		return 0, fmt.Errorf("%w: %s: kind must be a string", ErrTemplate, f.Path())
	}
	k, err := ir.ParseKind(f.Str())
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrTemplate, f.Path(), err)
	}
	return k, nil
}

func namesOf(f *ir.Node) ([]string, error) {
	if f.Kind() != ir.ArrayKind {
		return nil, fmt.Errorf("%w: %s: names must be an array", ErrTemplate, f.Path())
	}
	res := make([]string, 0, f.Len())
	for _, c := range f.Children() {
		if !c.Kind().IsValue() {
			return nil, fmt.Errorf("%w: %s: names must be scalars", ErrTemplate, c.Path())
		}
		res = append(res, ir.Literal(c))
	}
	return res, nil
}

func fieldsOf(f *ir.Node) ([]Field[ir.Kind], error) {
	if f.Kind() != ir.ArrayKind {
		return nil, fmt.Errorf("%w: %s: fields must be an array", ErrTemplate, f.Path())
	}
	res := make([]Field[ir.Kind], 0, f.Len())
	for _, c := range f.Children() {
		if c.Kind() != ir.StringKind {
			return nil, fmt.Errorf("%w: %s: field must be a kind", ErrTemplate, c.Path())
		}
		v, opt := strings.CutSuffix(c.Str(), "?")
		k, err := ir.ParseKind(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrTemplate, c.Path(), err)
		}
		res = append(res, Field[ir.Kind]{Kind: k, Optional: opt})
	}
	return res, nil
}

func childrenOf(f *ir.Node) (map[string]*Rule, error) {
	if f.Kind() != ir.NodeKind {
		return nil, fmt.Errorf("%w: %s: children must be a node", ErrTemplate, f.Path())
	}
	res := make(map[string]*Rule, f.Len())
	for _, c := range f.Children() {
		if c.Kind() != ir.NodeKind || c.Name() == "" {
			return nil, fmt.Errorf("%w: %s: child templates must be named nodes", ErrTemplate, c.Path())
		}
		r, err := loadRule(c.Name(), c)
		if err != nil {
			return nil, err
		}
		res[c.Name()] = r
	}
	return res, nil
}

// Check validates every node below doc that a rule applies to, along
// with the named children the rule has rules for. The error joins all
// failures, each prefixed with the path of the failing node.
func (s *Set) Check(doc *ir.Node) error {
	var errs []error
	_ = doc.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y == doc || y.Name() == "" {
			return true, nil
		}
		for _, r := range s.byName[y.Name()] {
			errs = append(errs, r.check(y)...)
		}
		return true, nil
	})
	return errors.Join(errs...)
}

func (r *Rule) check(y *ir.Node) []error {
	if debug.Schema() {
		debug.Logf("schema: check %s against %q\n", y.Path(), r.Name)
	}
	var errs []error
	if err := r.Template.Explain(y); err != nil {
		errs = append(errs, fmt.Errorf("%s: template %q: %w", y.Path(), r.Name, err))
	}
	if len(r.Children) == 0 || !y.Kind().IsCollection() {
		return errs
	}
	for _, c := range y.Children() {
		if cr := r.Children[c.Name()]; cr != nil && c.Name() != "" {
			errs = append(errs, cr.check(c)...)
		}
	}
	return errs
}
