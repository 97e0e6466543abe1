package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/match"
	"github.com/signadot/vscript/parse"
)

func matchCmd(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern document", cli.ErrUsage)
	}
	pattern, err := getish(cfg.MainConfig, cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	var res []*ir.Node
	for _, file := range filesOrStdin(args[1:]) {
		docs, err := readFileDocs(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res = matchDocs(res, cfg.Trim, pattern, docs)
	}
	return writeDocs(cfg.MainConfig, cc.Out, res)
}

func matchDocs(dst []*ir.Node, trim bool, pattern *ir.Node, docs []*ir.Node) []*ir.Node {
	for _, y := range docs {
		if !match.Match(y, pattern) {
			continue
		}
		if trim {
			y = match.Trim(pattern, y)
		}
		dst = append(dst, y)
	}
	return dst
}

// getish reads a document given either inline (-s, the default) or as a
// file (-f).
func getish(cfg *MainConfig, s, f bool, cc *cli.Context, arg string) (*ir.Node, error) {
	d, file, err := readArg(s, f, cc, arg)
	if err != nil {
		return nil, err
	}
	res, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return res, nil
}

// readArg returns the contents of arg, or of the file it names when f is
// set, along with the file name for format detection.
func readArg(s, f bool, cc *cli.Context, arg string) ([]byte, string, error) {
	if s && f {
		return nil, "", fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if !f {
		return []byte(arg), "-", nil
	}
	r, err := openFile(cc, arg)
	if err != nil {
		return nil, "", err
	}
	defer r.Close()
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("error reading %s: %w", arg, err)
	}
	return d, arg, nil
}
