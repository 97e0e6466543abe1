package ir

import (
	"fmt"
	"math/bits"
	"strings"
)

// Kind is a node kind. Each kind is a single bit so that kinds combine
// into masks.
type Kind uint16

const (
	NullKind Kind = 1 << iota
	StringKind
	IntegerKind
	FloatKind
	BooleanKind
	ArrayKind
	NodeKind
	IdentifierKind
)

const (
	ValueKinds       = StringKind | IntegerKind | FloatKind | BooleanKind
	ValueOrNullKinds = ValueKinds | NullKind
	CollectionKinds  = ArrayKind | NodeKind | IdentifierKind
	NumericKinds     = IntegerKind | FloatKind
	AnyKind          = ValueOrNullKinds | CollectionKinds
)

var kindNames = []struct {
	k    Kind
	name string
}{
	{NullKind, "Null"},
	{StringKind, "String"},
	{IntegerKind, "Integer"},
	{FloatKind, "Float"},
	{BooleanKind, "Boolean"},
	{ArrayKind, "Array"},
	{NodeKind, "Node"},
	{IdentifierKind, "Identifier"},
}

var classNames = map[string]Kind{
	"Value":       ValueKinds,
	"ValueOrNull": ValueOrNullKinds,
	"Collection":  CollectionKinds,
	"Numeric":     NumericKinds,
	"Any":         AnyKind,
}

// Has reports whether k intersects mask.
func (k Kind) Has(mask Kind) bool {
	return k&mask != 0
}

// IsSingle reports whether k names exactly one kind.
func (k Kind) IsSingle() bool {
	return k != 0 && k&^AnyKind == 0 && bits.OnesCount16(uint16(k)) == 1
}

func (k Kind) IsCollection() bool {
	return k.IsSingle() && k.Has(CollectionKinds)
}

func (k Kind) IsValue() bool {
	return k.IsSingle() && k.Has(ValueKinds)
}

// Kinds splits a mask into its single kinds, in declaration order.
func (k Kind) Kinds() []Kind {
	var res []Kind
	for _, kn := range kindNames {
		if k&kn.k != 0 {
			res = append(res, kn.k)
		}
	}
	return res
}

func (k Kind) String() string {
	if k == AnyKind {
		return "Any"
	}
	if k == 0 {
		return "<no kind>"
	}
	parts := make([]string, 0, 2)
	for _, kn := range kindNames {
		if k&kn.k != 0 {
			parts = append(parts, kn.name)
		}
	}
	if k&^AnyKind != 0 {
		parts = append(parts, fmt.Sprintf("<unknown kind %#x>", uint16(k&^AnyKind)))
	}
	return strings.Join(parts, "|")
}

func (k Kind) MarshalText() ([]byte, error) {
	if k == 0 || k&^AnyKind != 0 {
		return nil, fmt.Errorf("invalid kind %#x", uint16(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// ParseKind parses a kind or a '|' separated mask of kinds and kind
// classes ("Value", "ValueOrNull", "Collection", "Numeric", "Any").
func ParseKind(v string) (Kind, error) {
	var res Kind
	for _, part := range strings.Split(v, "|") {
		part = strings.TrimSpace(part)
		if c, ok := classNames[part]; ok {
			res |= c
			continue
		}
		found := false
		for _, kn := range kindNames {
			if kn.name == part {
				res |= kn.k
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unrecognized kind %q", part)
		}
	}
	return res, nil
}

// Kinds returns all single kinds.
func Kinds() []Kind {
	res := make([]Kind, len(kindNames))
	for i, kn := range kindNames {
		res[i] = kn.k
	}
	return res
}

func rank(k Kind) int {
	switch k {
	case NullKind:
		return 0
	case BooleanKind:
		return 1
	case IntegerKind:
		return 2
	case FloatKind:
		return 3
	case StringKind:
		return 4
	case ArrayKind:
		return 5
	case NodeKind:
		return 6
	case IdentifierKind:
		return 7
	}
	return 100
}
