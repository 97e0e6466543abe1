package eval

import (
	"os"

	"github.com/expr-lang/expr"

	"github.com/signadot/vscript/ir"
)

func exprOpts(doc *ir.Node) []expr.Option {
	if doc == nil {
		return nil
	}
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return doc.Path(), nil
		},
			new(func() string)),
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.Root().GetPath(path)
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("truthy", func(params ...any) (any, error) {
			res, err := doc.Root().GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return res != nil && ir.Truth(res), nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
