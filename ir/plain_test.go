package ir

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestToPlain(t *testing.T) {
	root := NewNode(
		NewNode(
			FromInt(8080).WithName("port"),
			NewArray(FromString("a"), FromString("b")).WithName("tags"),
		).WithName("server"),
		NewNode(
			FromBool(true).WithName("on"),
			FromString("bare"),
		).WithName("mixed"),
		NewIdentifier("listen", FromInt(80), Null()),
	)
	want := yaml.MapSlice{
		{Key: "server", Value: yaml.MapSlice{
			{Key: "port", Value: int64(8080)},
			{Key: "tags", Value: []any{"a", "b"}},
		}},
		{Key: "mixed", Value: []any{
			yaml.MapSlice{{Key: "on", Value: true}},
			"bare",
		}},
		{Key: "listen", Value: []any{int64(80), nil}},
	}
	if diff := cmp.Diff(want, ToPlain(root)); diff != "" {
		t.Errorf("ToPlain mismatch (-want +got):\n%s", diff)
	}
}

func TestFromPlain(t *testing.T) {
	in := yaml.MapSlice{
		{Key: "b", Value: uint64(2)},
		{Key: "a", Value: []any{1.5, "x", nil, map[string]any{"z": true, "y": int8(-1)}}},
	}
	got, err := FromPlain(in)
	if err != nil {
		t.Fatal(err)
	}
	want := NewNode(
		FromInt(2).WithName("b"),
		NewArray(
			FromFloat(1.5),
			FromString("x"),
			Null(),
			NewNode(FromInt(-1).WithName("y"), FromBool(true).WithName("z")),
		).WithName("a"),
	)
	if !Equal(got, want) {
		t.Errorf("FromPlain mismatch")
	}
}

func TestFromPlainErrors(t *testing.T) {
	if _, err := FromPlain(struct{}{}); err == nil {
		t.Error("expected error for struct")
	}
	if _, err := FromPlain(uint64(1 << 63)); err == nil {
		t.Error("expected overflow error")
	}
}

func TestPlainRoundTripNamed(t *testing.T) {
	root := NewNode(
		FromString("v").WithName("k"),
		NewNode(FromFloat(0.5).WithName("x")).WithName("sub"),
	)
	back, err := FromPlain(ToPlain(root))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(root, back) {
		t.Error("named node projection should round trip")
	}
}
