package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/schema"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: check requires at least 1 argument (template file)", cli.ErrUsage)
	}
	tmplDoc, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	s, err := schema.Load(tmplDoc)
	if err != nil {
		return fmt.Errorf("failed to load templates %s: %w", args[0], err)
	}
	ok := true
	for _, file := range filesOrStdin(args[1:]) {
		docs, err := readFileDocs(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if !checkDocs(cc.Out, s, file, docs) {
			ok = false
		}
	}
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkDocs reports every failing document of file to w and returns
// whether all passed.
func checkDocs(w io.Writer, s *schema.Set, file string, docs []*ir.Node) bool {
	ok := true
	for i, y := range docs {
		err := s.Check(y)
		if err == nil {
			continue
		}
		ok = false
		name := file
		if len(docs) > 1 {
			name = fmt.Sprintf("%s[%d]", file, i)
		}
		fmt.Fprintf(w, "%s:\n%v\n", name, err)
	}
	return ok
}
