package intcode

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Eval evaluates a Starlark integer expression, such as "base + 4 * n",
// with defines available as predeclared names.
func Eval(expr string, defines map[string]Value) (value Value, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, def := range defines {
		pred[key] = starlark.MakeBigInt(def.Big())
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = FromBig(st_int.BigInt())
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}
