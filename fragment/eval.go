package fragment

import (
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"

	"github.com/asm-block/asmblock/token"
)

// EvalArg evaluates src as an expression against env and returns the
// result both as a Go value (so later defines can refer to earlier
// ones) and as its token form, ready to be used as a fragment body or
// argument.
func EvalArg(src string, env map[string]any) (any, []token.Token, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, nil, fmt.Errorf("could not compile %q: %w", src, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, nil, fmt.Errorf("could not evaluate %q: %w", src, err)
	}
	var text string
	switch v := res.(type) {
	case string:
		text = v
	case int:
		text = strconv.Itoa(v)
	case int64:
		text = strconv.FormatInt(v, 10)
	case float64:
		text = strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		text = strconv.FormatBool(v)
	default:
		return nil, nil, fmt.Errorf("expression %q evaluated to unusable type %T", src, res)
	}
	toks, err := token.Tokenize(nil, []byte(text))
	if err != nil {
		return nil, nil, fmt.Errorf("result of %q does not tokenize: %w", src, err)
	}
	nested, err := token.Nest(toks)
	if err != nil {
		return nil, nil, fmt.Errorf("result of %q does not nest: %w", src, err)
	}
	return res, nested, nil
}
