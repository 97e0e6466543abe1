package main

import (
	"fmt"
	"maps"

	"github.com/scott-cotton/cli"

	"github.com/signadot/vscript/eval"
	"github.com/signadot/vscript/ir"
)

func vsEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	env, err := eval.LoadEnv()
	if err != nil {
		return err
	}
	// -e takes precedence over $VS_ENV
	maps.Copy(env, cfg.Env)
	var all []*ir.Node
	for _, file := range filesOrStdin(args) {
		docs, err := readFileDocs(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		for i, y := range docs {
			res, err := eval.ExpandIR(y, env)
			if err != nil {
				return fmt.Errorf("error evaluating %s document %d: %w", file, i, err)
			}
			all = append(all, res)
		}
	}
	return writeDocs(cfg.MainConfig, cc.Out, all)
}
