package eval

import (
	"fmt"
	"os"

	"github.com/signadot/vscript/debug"
	"github.com/signadot/vscript/parse"
)

const (
	EnvEnv = "VS_ENV"
)

// LoadEnv reads a base environment from $VS_ENV, a script document such
// as "debug = true, replicas = 3". It returns an empty Env when the
// variable is unset.
func LoadEnv() (Env, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return Env{}, nil
	}
	yEnv, err := parse.ParseString(envEnv)
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	res := Env{}
	for _, c := range yEnv.Children() {
		if c.Name() == "" {
			return nil, fmt.Errorf("error decoding env $%s: nameless value at %s", EnvEnv, c.Path())
		}
		res[c.Name()] = ToAny(c)
	}
	if debug.Eval() {
		debug.Logf("loaded env from $%s: %v\n", EnvEnv, res)
	}
	return res, nil
}
