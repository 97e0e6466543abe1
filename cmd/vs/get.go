package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/vscript/encode"
	"github.com/signadot/vscript/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a document path", cli.ErrUsage)
	}
	path := normPath(args[0])
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	n := 0
	for _, file := range filesOrStdin(args[1:]) {
		docs, err := readFileDocs(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		for _, y := range docs {
			found, err := getDoc(cfg.MainConfig, cc.Out, y, path, n > 0)
			if err != nil {
				return fmt.Errorf("error querying %s with %s: %w", file, path, err)
			}
			if found {
				n++
			}
		}
	}
	return nil
}

func normPath(p string) string {
	if p != "" && p[0] != '$' {
		return "$" + p
	}
	return p
}

// getDoc writes the node at path in y, if there is one.
func getDoc(cfg *MainConfig, w io.Writer, y *ir.Node, path string, sep bool) (bool, error) {
	res, err := y.GetPath(path)
	if err != nil {
		return false, err
	}
	if res == nil {
		// nothing to write, and not an error
		return false, nil
	}
	if sep {
		if err := writeSep(cfg, w); err != nil {
			return false, err
		}
	}
	if err := encode.Encode(res, w, cfg.encOpts(w)...); err != nil {
		return false, fmt.Errorf("error encoding result: %w", err)
	}
	return true, nil
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a document path and a value", cli.ErrUsage)
	}
	path, value := normPath(args[0]), args[1]
	var all []*ir.Node
	for _, file := range filesOrStdin(args[2:]) {
		docs, err := readFileDocs(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		for _, y := range docs {
			if err := setDoc(y, path, value, cfg.String); err != nil {
				return fmt.Errorf("error setting %s in %s: %w", path, file, err)
			}
		}
		all = append(all, docs...)
	}
	return writeDocs(cfg.MainConfig, cc.Out, all)
}

func setDoc(y *ir.Node, path, value string, asString bool) error {
	v := ir.FromLiteral(value)
	if asString {
		v = ir.FromString(value)
	}
	return y.SetPath(path, v)
}
