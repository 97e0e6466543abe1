package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/vscript/encode"
	"github.com/signadot/vscript/eval"
	"github.com/signadot/vscript/format"
	"github.com/signadot/vscript/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output on a single line'"`
	QN      bool `cli:"name=qn desc='quote all names'"`
	QV      bool `cli:"name=qv desc='quote all string values'"`
	EW      bool `cli:"name=ew desc='escape tabs and newlines in quoted strings'"`
	Indent  int  `cli:"name=indent desc='indentation width'"`

	V bool `cli:"name=v aliases=vsc desc='do i/o in script format'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// ioFormat returns the format selected by -v, -j or -y, if any.
func (cfg *MainConfig) ioFormat() (format.Format, bool) {
	switch {
	case cfg.V:
		return format.ScriptFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.ScriptFormat, false
}

// inFormat is the format for reading file. Without any format option it
// is guessed from the file name.
func (cfg *MainConfig) inFormat(file string) format.Format {
	fmat, ok := cfg.ioFormat()
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if ok || file == "" || file == "-" {
		return fmat
	}
	return format.FromSuffix(file)
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat(file))}
}

func (cfg *MainConfig) outFormat() format.Format {
	fmat, _ := cfg.ioFormat()
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.Wire(cfg.WireOut),
		encode.QuoteNames(cfg.QN),
		encode.QuoteValues(cfg.QV),
		encode.EscapeWhitespace(cfg.EW),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return res
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='set the value as a string, without typing it'"`

	Set *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text bool `cli:"name=t aliases=text desc='line diff of the encoded documents'"`
	Tree bool `cli:"name=tree desc='output the changes as a document'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m aliases=merge desc='apply a merge patch (RFC 7386)'"`
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	PatchFormat *format.Format

	Patch *cli.Command
}

// patchFormat is the format of the patch argument: -P if given, the file
// suffix for patch files, and json otherwise.
func (cfg *PatchConfig) patchFormat(file bool, arg string) format.Format {
	if cfg.PatchFormat != nil {
		return *cfg.PatchFormat
	}
	if file && arg != "-" {
		return format.FromSuffix(arg)
	}
	return format.JSONFormat
}

type EvalConfig struct {
	*MainConfig
	Env eval.Env

	Eval *cli.Command
}

type MatchConfig struct {
	*MainConfig
	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
	File   bool `cli:"name=f desc='consider match a file path'"`

	Match *cli.Command
}
