package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/vscript/encode"
	"github.com/signadot/vscript/format"
	"github.com/signadot/vscript/parse"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for i, file := range filesOrStdin(args) {
		if i > 0 {
			if err := writeSep(cfg.MainConfig, cc.Out); err != nil {
				return err
			}
		}
		if err := viewFile(cfg.MainConfig, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *MainConfig, cc *cli.Context, file string) error {
	f, err := openFile(cc, file)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := viewReader(cfg, cc.Out, f, file); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *MainConfig, w io.Writer, r io.Reader, file string) error {
	docs, err := readDocs(cfg, r, file)
	if err != nil {
		return err
	}
	return writeDocs(cfg, w, docs)
}

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		if cfg.Write {
			return fmt.Errorf("%w: cannot use -w with standard input", cli.ErrUsage)
		}
		args = []string{"-"}
	}
	for _, file := range args {
		if err := fmtFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	f, err := openFile(cc, file)
	if err != nil {
		return err
	}
	d, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("error reading %q: %w", file, err)
	}
	out, err := formatDoc(cfg.MainConfig, d, file)
	if err != nil {
		return fmt.Errorf("error formatting %s: %w", file, err)
	}
	changed := !bytes.Equal(d, out)
	if cfg.List {
		if changed {
			fmt.Fprintln(cc.Out, file)
		}
		return nil
	}
	if cfg.Write {
		if !changed {
			return nil
		}
		info, err := os.Stat(file)
		if err != nil {
			return err
		}
		return os.WriteFile(file, out, info.Mode().Perm())
	}
	_, err = cc.Out.Write(out)
	return err
}

// formatDoc rewrites a script document in canonical form. Output format
// options are ignored; quoting and wire options apply.
func formatDoc(cfg *MainConfig, d []byte, file string) ([]byte, error) {
	y, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	opts := append(cfg.encOpts(buf), encode.EncodeFormat(format.ScriptFormat))
	if err := encode.Encode(y, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
