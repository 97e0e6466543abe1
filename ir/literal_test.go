package ir

import (
	"math"
	"testing"
)

func TestFromLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want *Node
	}{
		{"", FromString("")},
		{"true", FromBool(true)},
		{"false", FromBool(false)},
		{"null", Null()},
		{"FALSE", FromString("FALSE")},
		{"True", FromString("True")},
		{"nullx", FromString("nullx")},
		{"42", FromInt(42)},
		{"+42", FromInt(42)},
		{"-7", FromInt(-7)},
		{"007", FromInt(7)},
		{"-3.5", FromFloat(-3.5)},
		{".5", FromFloat(0.5)},
		{"5.", FromFloat(5)},
		{"3.5.1", FromString("3.5.1")},
		{"--5", FromString("--5")},
		{"5-", FromString("5-")},
		{"+", FromString("+")},
		{"-", FromString("-")},
		{".", FromString(".")},
		{"-.", FromString("-.")},
		{"1e5", FromString("1e5")},
		{"0x10", FromString("0x10")},
		{"12ab", FromString("12ab")},
		{"hello", FromString("hello")},
		{"99999999999999999999", FromInt(0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := FromLiteral(tt.in)
			if !Equal(got, tt.want) {
				t.Errorf("FromLiteral(%q) = %s %q, want %s %q", tt.in, got.Kind(), Literal(got), tt.want.Kind(), Literal(tt.want))
			}
		})
	}
}

func TestFromLiteralNamed(t *testing.T) {
	got := FromLiteralNamed("8080", "port")
	if got.Name() != "port" || got.Kind() != IntegerKind || got.Int() != 8080 {
		t.Errorf("got %s %s", got.Name(), got.Kind())
	}
}

func TestLiteralReadsBack(t *testing.T) {
	nodes := []*Node{
		Null(),
		FromBool(true),
		FromBool(false),
		FromInt(0),
		FromInt(-12),
		FromInt(math.MaxInt64),
		FromInt(math.MinInt64),
		FromFloat(0),
		FromFloat(3),
		FromFloat(-0.25),
		FromFloat(1e21),
		FromFloat(1.5e-7),
	}
	for _, n := range nodes {
		lit := Literal(n)
		back := FromLiteral(lit)
		if !Equal(n, back) {
			t.Errorf("%s %q read back as %s %q", n.Kind(), lit, back.Kind(), Literal(back))
		}
	}
}

func TestLiteralFloatHasPoint(t *testing.T) {
	if got := Literal(FromFloat(2)); got != "2.0" {
		t.Errorf("got %q", got)
	}
}
