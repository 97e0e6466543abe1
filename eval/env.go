package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/vscript/ir"
)

type Env = map[string]any

// ParseEnvArg parses "name=value" into env. The value is typed like a
// bare word: ints, floats, booleans and null become those kinds.
func ParseEnvArg(env Env, arg string) error {
	name, val, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return fmt.Errorf("invalid env assignment %q, expected name=value", arg)
	}
	env[name] = ToAny(ir.FromLiteral(val))
	return nil
}

// ToAny maps a node to values expressions can work with: nodes whose
// children are all uniquely named become map[string]any, other
// collections []any.
func ToAny(y *ir.Node) any {
	switch y.Kind() {
	case ir.NullKind:
		return nil
	case ir.StringKind:
		return y.Str()
	case ir.IntegerKind:
		return int(y.Int())
	case ir.FloatKind:
		return y.Float()
	case ir.BooleanKind:
		return y.Bool()
	}
	children := y.Children()
	if y.Kind() == ir.NodeKind && uniquelyNamed(children) {
		res := make(map[string]any, len(children))
		for _, c := range children {
			res[c.Name()] = ToAny(c)
		}
		return res
	}
	res := make([]any, len(children))
	for i, c := range children {
		res[i] = ToAny(c)
	}
	return res
}

func uniquelyNamed(children []*ir.Node) bool {
	seen := make(map[string]bool, len(children))
	for _, c := range children {
		if c.Name() == "" || seen[c.Name()] {
			return false
		}
		seen[c.Name()] = true
	}
	return true
}

// FromAny maps the result of an expression back to a node.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		if x == nil {
			return ir.Null(), nil
		}
		return x.Clone(), nil
	case []*ir.Node:
		res := ir.NewArray()
		for _, c := range x {
			res.Append(c.Clone())
		}
		return res, nil
	}
	return ir.FromPlain(v)
}
