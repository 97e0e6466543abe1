package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvEnv, "")
	env, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if len(env) != 0 {
		t.Errorf("expected empty env, got %v", env)
	}

	t.Setenv(EnvEnv, "debug = true, replicas = 3, tags = [a, b]")
	env, err = LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	want := Env{
		"debug":    true,
		"replicas": 3,
		"tags":     []any{"a", "b"},
	}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	for _, bad := range []string{"x", "a = {"} {
		t.Setenv(EnvEnv, bad)
		if _, err := LoadEnv(); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}
