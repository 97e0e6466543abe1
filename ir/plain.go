package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/goccy/go-yaml"
)

// ToPlain projects y onto plain data: nil, string, int64, float64, bool,
// []any and yaml.MapSlice.
//
// A Node whose children all carry distinct names becomes a yaml.MapSlice.
// Other nodes, arrays and identifiers become []any, with named children
// wrapped in a single entry yaml.MapSlice. The projection drops the kind
// of identifiers and the names of collections at the top.
func ToPlain(y *Node) any {
	switch y.Kind() {
	case NullKind:
		return nil
	case StringKind:
		return y.str
	case IntegerKind:
		return y.i64
	case FloatKind:
		return y.f64
	case BooleanKind:
		return y.b
	case NodeKind:
		if uniquelyNamed(y.children) {
			res := make(yaml.MapSlice, len(y.children))
			for i, c := range y.children {
				res[i] = yaml.MapItem{Key: c.name, Value: ToPlain(c)}
			}
			return res
		}
		return plainSeq(y.children)
	default:
		return plainSeq(y.children)
	}
}

func plainSeq(children []*Node) []any {
	res := make([]any, len(children))
	for i, c := range children {
		if c.name == "" {
			res[i] = ToPlain(c)
			continue
		}
		res[i] = yaml.MapSlice{{Key: c.name, Value: ToPlain(c)}}
	}
	return res
}

func uniquelyNamed(children []*Node) bool {
	seen := make(map[string]bool, len(children))
	for _, c := range children {
		if c.name == "" || seen[c.name] {
			return false
		}
		seen[c.name] = true
	}
	return true
}

// FromPlain builds a tree from plain data as produced by ToPlain or by
// decoding YAML or JSON. Mappings become Node kinds with named children,
// sequences become arrays.
func FromPlain(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case yaml.MapSlice:
		res := NewNode()
		for _, item := range x {
			c, err := FromPlain(item.Value)
			if err != nil {
				return nil, err
			}
			res.Append(c.WithName(fmt.Sprint(item.Key)))
		}
		return res, nil
	case map[string]any:
		res := NewNode()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			c, err := FromPlain(x[k])
			if err != nil {
				return nil, err
			}
			res.Append(c.WithName(k))
		}
		return res, nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = v
		}
		return FromPlain(m)
	case []any:
		res := NewArray()
		for _, e := range x {
			c, err := FromPlain(e)
			if err != nil {
				return nil, err
			}
			res.Append(c)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrPlain, v)
	}
}

func fromUint(u uint64) (*Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrPlain, u)
	}
	return FromInt(int64(u)), nil
}
