package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/parse"
	"github.com/signadot/vscript/patch"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	var all []*ir.Node
	for _, file := range filesOrStdin(args[1:]) {
		docs, err := readFileDocs(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		for _, y := range docs {
			res, err := patchDoc(cfg, y, p)
			if err != nil {
				return fmt.Errorf("error patching %s: %w", file, err)
			}
			all = append(all, res)
		}
	}
	return writeDocs(cfg.MainConfig, cc.Out, all)
}

func patchDoc(cfg *PatchConfig, y, p *ir.Node) (*ir.Node, error) {
	if cfg.Merge {
		return patch.MergeNode(y, p)
	}
	return patch.ApplyNode(y, p)
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	d, _, err := readArg(cfg.String, cfg.File, cc, arg)
	if err != nil {
		return nil, err
	}
	res, err := parse.Parse(d, parse.ParseFormat(cfg.patchFormat(cfg.File, arg)))
	if err != nil {
		return nil, fmt.Errorf("%w: error decoding patch: %w", cli.ErrUsage, err)
	}
	return res, nil
}
