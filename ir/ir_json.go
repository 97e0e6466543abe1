package ir

import (
	"encoding/json"
	"fmt"
)

type irBase struct {
	Kind     Kind     `json:"kind"`
	Name     string   `json:"name,omitempty"`
	String   *string  `json:"string,omitempty"`
	Int      *int64   `json:"int,omitempty"`
	Float    *float64 `json:"float,omitempty"`
	Bool     *bool    `json:"bool,omitempty"`
	Children []*Node  `json:"children,omitempty"`
}

// MarshalJSON renders the IR itself as JSON, losslessly.
func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Kind: y.Kind(),
		Name: y.name,
	}
	switch base.Kind {
	case StringKind:
		base.String = &y.str
	case IntegerKind:
		base.Int = &y.i64
	case FloatKind:
		base.Float = &y.f64
	case BooleanKind:
		base.Bool = &y.b
	case ArrayKind, NodeKind, IdentifierKind:
		base.Children = y.children
	}
	return json.Marshal(base)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	if !tmp.Kind.IsSingle() {
		return fmt.Errorf("%w: %s is not a single kind", ErrKind, tmp.Kind)
	}
	*y = Node{}
	y.Morph(tmp.Kind)
	y.name = tmp.Name
	switch tmp.Kind {
	case StringKind:
		if tmp.String != nil {
			y.str = *tmp.String
		}
	case IntegerKind:
		if tmp.Int != nil {
			y.i64 = *tmp.Int
		}
	case FloatKind:
		if tmp.Float != nil {
			y.f64 = *tmp.Float
		}
	case BooleanKind:
		if tmp.Bool != nil {
			y.b = *tmp.Bool
		}
	case ArrayKind, NodeKind, IdentifierKind:
		for _, c := range tmp.Children {
			if c == nil {
				return fmt.Errorf("null child in %s", tmp.Kind)
			}
		}
		y.Append(tmp.Children...)
	}
	return nil
}
