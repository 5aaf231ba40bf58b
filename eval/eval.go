// Package eval runs expression queries against a parsed document. The
// expression language is expr-lang/expr; the document is exposed as a
// nested map environment plus a few lookup helpers.
package eval

import (
	"os"

	"github.com/expr-lang/expr"

	"github.com/keygrove/keygrove/debug"
	"github.com/keygrove/keygrove/doc"
)

// Query compiles src and runs it against d. Group keys are plain
// identifiers in the expression scope; values carry their semantic Go
// types (int64, float64, bool, time.Time, string, []any).
func Query(d *doc.Document, src string) (any, error) {
	if debug.Eval() {
		debug.Logf("eval: %s\n", src)
	}
	env := doc.ToAny(d)
	prg, err := expr.Compile(src, exprOpts(d, env)...)
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, env)
}

func exprOpts(d *doc.Document, env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.Function("get", func(params ...any) (any, error) {
			e, err := d.GetValue(params[0].(string))
			if err != nil {
				return nil, err
			}
			return doc.EntryAny(e), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			_, ok := d.TryGetValue(params[0].(string))
			return ok, nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
