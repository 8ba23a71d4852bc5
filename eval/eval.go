// Package eval runs expressions against jot documents using
// expr-lang/expr. The document is exposed to programs as "doc" along
// with a few navigation helpers.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/jot-format/jot"
	"github.com/jot-format/jot/debug"
)

// Eval compiles and runs src against doc and converts the result back
// to a document. Programs address the document as doc, for example
// "doc.elems[0] * 2", or through the helper functions getpath,
// typeof and haspath.
func Eval(doc *jot.Object, src string) (*jot.Object, error) {
	if debug.Eval() {
		debug.Logf("eval %q on %s\n", src, doc.JSON())
	}
	env := map[string]any{"doc": doc.GoValue()}
	opts := append(exprOpts(doc), expr.Env(env))
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	out, err := expr.Run(prog, env)
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", src, err)
	}
	return jot.From(out)
}

func exprOpts(doc *jot.Object) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path, err := pathArg("getpath", params)
			if err != nil {
				return nil, err
			}
			item, err := doc.Lookup(path)
			if err != nil {
				return nil, err
			}
			return item.GoValue(), nil
		}),
		expr.Function("haspath", func(params ...any) (any, error) {
			path, err := pathArg("haspath", params)
			if err != nil {
				return nil, err
			}
			_, err = doc.Lookup(path)
			return err == nil, nil
		}),
		expr.Function("typeof", func(params ...any) (any, error) {
			path, err := pathArg("typeof", params)
			if err != nil {
				return nil, err
			}
			item, err := doc.Lookup(path)
			if err != nil {
				return nil, err
			}
			return item.Type().String(), nil
		}),
	}
}

func pathArg(fn string, params []any) (string, error) {
	if len(params) != 1 {
		return "", fmt.Errorf("%s takes one path argument", fn)
	}
	path, ok := params[0].(string)
	if !ok {
		return "", fmt.Errorf("%s takes a string path, got %T", fn, params[0])
	}
	return path, nil
}
