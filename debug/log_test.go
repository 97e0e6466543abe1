package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/vscript/ir"
)

func TestLogf(t *testing.T) {
	buf := &bytes.Buffer{}
	old := out
	out = buf
	defer func() { out = old }()

	Logf("node %v n=%d\n", ir.FromInt(3).WithName("port"), 2)
	got := buf.String()
	if !strings.HasPrefix(got, "node {") || !strings.Contains(got, `"name": "port"`) {
		t.Errorf("unexpected log output %q", got)
	}
	if !strings.HasSuffix(got, "n=2\n") {
		t.Errorf("unexpected log tail %q", got)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("VS_TEST_FLAG", "true")
	if !boolEnv("VS_TEST_FLAG") {
		t.Error("expected true")
	}
	t.Setenv("VS_TEST_FLAG", "nope")
	if boolEnv("VS_TEST_FLAG") {
		t.Error("expected false for unparsable value")
	}
	if boolEnv("VS_TEST_FLAG_UNSET") {
		t.Error("expected false for unset")
	}
}
