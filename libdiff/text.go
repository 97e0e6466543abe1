package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/vscript/encode"
	"github.com/signadot/vscript/ir"
)

// Text returns a line diff of from and to. Every line is prefixed with
// "+ ", "- " or two spaces. Text returns "" when from and to are equal.
func Text(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var buf strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String()
}

// TextNodes encodes both trees with opts and returns their line diff.
func TextNodes(from, to *ir.Node, opts ...encode.EncodeOption) (string, error) {
	var fb, tb strings.Builder
	if err := encode.Encode(from, &fb, opts...); err != nil {
		return "", err
	}
	if err := encode.Encode(to, &tb, opts...); err != nil {
		return "", err
	}
	return Text(fb.String(), tb.String()), nil
}
