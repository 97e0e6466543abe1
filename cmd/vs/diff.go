package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/vscript/encode"
	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Text && cfg.Tree {
		return fmt.Errorf("%w: only one of -t, -tree may be specified", cli.ErrUsage)
	}
	y1, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffNodes(cfg, cc.Out, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffNodes writes the differences between a and b and reports whether
// there were any.
func diffNodes(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	if cfg.Text {
		txt, err := libdiff.TextNodes(a, b, encode.EncodeFormat(cfg.outFormat()),
			encode.QuoteNames(cfg.QN), encode.QuoteValues(cfg.QV), encode.EscapeWhitespace(cfg.EW))
		if err != nil {
			return false, err
		}
		if txt == "" {
			return false, nil
		}
		_, err = io.WriteString(w, txt)
		return true, err
	}
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	if cfg.Tree {
		if err := encode.Encode(libdiff.ToNode(changes), w, cfg.encOpts(w)...); err != nil {
			return false, err
		}
		return true, nil
	}
	for i := range changes {
		if _, err := fmt.Fprintln(w, changes[i].String()); err != nil {
			return false, err
		}
	}
	return true, nil
}
