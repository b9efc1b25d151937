package xmldiff

import (
	"fmt"

	"github.com/expr-lang/expr"
)

type entryEnv struct {
	Path   string `expr:"path"`
	ToPath string `expr:"toPath"`
	Name   string `expr:"name"`
	Change string `expr:"change"`
	From   string `expr:"from"`
	To     string `expr:"to"`
}

// Filter returns a new Result holding only the entries for which the
// boolean expression holds. The expression sees one entry at a time
// as path, toPath, name, change, from and to, e.g.
//
//	change == "Modified" && path startsWith "/catalog/book"
func (r *Result) Filter(expression string) (*Result, error) {
	prg, err := expr.Compile(expression, expr.Env(entryEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadOption, err)
	}
	res := &Result{
		FromLabel: r.FromLabel,
		ToLabel:   r.ToLabel,
		Options:   r.Options,
	}
	for _, e := range r.Entries {
		out, err := expr.Run(prg, entryEnv{
			Path:   e.Path,
			ToPath: e.ToPath,
			Name:   e.Name,
			Change: e.Change.String(),
			From:   e.From,
			To:     e.To,
		})
		if err != nil {
			return nil, err
		}
		if out.(bool) {
			res.Entries = append(res.Entries, e)
		}
	}
	return res, nil
}
