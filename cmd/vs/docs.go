package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/vscript/encode"
	"github.com/signadot/vscript/ir"
	"github.com/signadot/vscript/parse"
)

var docSep = []byte("\n---\n")

func openFile(cc *cli.Context, file string) (io.ReadCloser, error) {
	if file == "-" {
		return io.NopCloser(cc.In), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return f, nil
}

// readDocs reads the documents of r, separated by "---" lines. file
// selects the input format when no format option is given.
func readDocs(cfg *MainConfig, r io.Reader, file string) ([]*ir.Node, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	docs := bytes.Split(in, docSep)
	res := make([]*ir.Node, 0, len(docs))
	for i, doc := range docs {
		y, err := parse.Parse(doc, cfg.parseOpts(file)...)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, y)
	}
	return res, nil
}

func readFileDocs(cfg *MainConfig, cc *cli.Context, file string) ([]*ir.Node, error) {
	f, err := openFile(cc, file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	docs, err := readDocs(cfg, f, file)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", file, err)
	}
	return docs, nil
}

// getObjFile reads a single document.
func getObjFile(cfg *MainConfig, cc *cli.Context, file string) (*ir.Node, error) {
	f, err := openFile(cc, file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	return parse.Parse(d, cfg.parseOpts(file)...)
}

func writeSep(cfg *MainConfig, w io.Writer) error {
	sep := docSep[1:]
	if cfg.WireOut {
		sep = docSep
	}
	_, err := w.Write(sep)
	return err
}

// writeDocs encodes docs to w, separated by "---" lines.
func writeDocs(cfg *MainConfig, w io.Writer, docs []*ir.Node) error {
	opts := cfg.encOpts(w)
	for i, y := range docs {
		if i > 0 {
			if err := writeSep(cfg, w); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
		if err := encode.Encode(y, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}

func filesOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
