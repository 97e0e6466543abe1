package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/vscript/ir"
)

var out io.Writer = os.Stderr

// Logf writes a formatted debug line to stderr. Nodes and plain
// collections are rendered as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case *ir.Node, map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(out, msg, args...)
}
