package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/vscript/debug"
	"github.com/signadot/vscript/encode"
	"github.com/signadot/vscript/ir"
)

func evalExpr(input string, env Env, doc *ir.Node) (any, error) {
	program, err := expr.Compile(input, exprOpts(doc)...)
	if err != nil {
		return nil, err
	}
	res, err := vm.Run(program, env)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", input, res)
	}
	return res, nil
}

// ExpandIR returns a copy of node with all string values expanded. A
// string that is exactly .[expr] is replaced by the value of expr,
// keeping its name.
func ExpandIR(node *ir.Node, env Env) (*ir.Node, error) {
	switch k := node.Kind(); k {
	case ir.ArrayKind, ir.NodeKind, ir.IdentifierKind:
		res := ir.New(k).WithName(node.Name())
		for _, c := range node.Children() {
			xc, err := ExpandIR(c, env)
			if err != nil {
				return nil, err
			}
			res.Append(xc)
		}
		return res, nil
	case ir.StringKind:
		if raw := GetRaw(node.Str()); raw != "" {
			val, err := evalExpr(raw, env, node)
			if err != nil {
				return nil, fmt.Errorf("%s: error evaluating %q: %w", node.Path(), raw, err)
			}
			repl, err := FromAny(val)
			if err != nil {
				return nil, fmt.Errorf("%s: could not translate evaluation result: %w", node.Path(), err)
			}
			return repl.WithName(node.Name()), nil
		}
		xs, err := expandString(node.Str(), env, node)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", node.Path(), err)
		}
		return ir.FromString(xs).WithName(node.Name()), nil
	default:
		return node.Clone(), nil
	}
}

// GetRaw extracts expr from a string of the form .[expr], or returns
// the empty string.
func GetRaw(v string) string {
	if !strings.HasPrefix(v, ".[") || !strings.HasSuffix(v, "]") {
		return ""
	}
	return strings.TrimSpace(v[2 : len(v)-1])
}

// ExpandString expands $[...] and .[...] expressions in a string.
//
// Within expressions, backslash escapes the next character, so \] does
// not close the expression. An expression without a closing ] is kept as
// literal text.
func ExpandString(v string, env Env) (string, error) {
	return expandString(v, env, nil)
}

func expandString(v string, env Env, doc *ir.Node) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	exprStart := -1
	i := 0
	n := len(v)
	var outBuf []byte
	var keyBuf []byte

	flush := func() error {
		key := strings.TrimSpace(string(keyBuf))
		x, err := evalExpr(key, env, doc)
		if err != nil {
			return fmt.Errorf("error evaluating %q: %w", key, err)
		}
		d, err := anyToBytes(x)
		if err != nil {
			return fmt.Errorf("could not render evaluation result of %q: %w", key, err)
		}
		outBuf = append(outBuf, d...)
		exprStart = -1
		return nil
	}

	for i < n-1 {
		c, next := v[i], v[i+1]
		i++
		switch c {
		case '$', '.':
			if next == '[' && exprStart == -1 {
				exprStart = i - 1
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		case '\\':
			if exprStart != -1 {
				keyBuf = append(keyBuf, next)
				i++
				continue
			}
			outBuf = append(outBuf, c)
		case ']':
			if exprStart != -1 {
				if err := flush(); err != nil {
					return "", err
				}
				continue
			}
			outBuf = append(outBuf, c)
		default:
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		}
	}
	if i >= n {
		// the last byte was consumed by an escape or an opener
		if exprStart != -1 {
			outBuf = append(outBuf, v[exprStart:]...)
		}
		return string(outBuf), nil
	}
	if exprStart == -1 {
		outBuf = append(outBuf, v[n-1])
		return string(outBuf), nil
	}
	if v[n-1] != ']' {
		outBuf = append(outBuf, v[exprStart:]...)
		return string(outBuf), nil
	}
	if err := flush(); err != nil {
		return "", err
	}
	return string(outBuf), nil
}

func anyToBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case int:
		return []byte(strconv.Itoa(x)), nil
	case int64:
		return []byte(strconv.FormatInt(x, 10)), nil
	case float64:
		return []byte(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	case nil:
		return []byte("null"), nil
	}
	node, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	node.SetName("")
	return []byte(encode.String(node, encode.Root(false), encode.Wire(true))), nil
}
