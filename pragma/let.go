package pragma

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/perky-format/go-perky/ir"
)

// Let evaluates an expression into the current frame.  In a mapping
// frame the argument is `key expression`; in a sequence frame it is
// the expression alone.  The result is stringified through ir.FromAny,
// so `=let replicas 2 + 1` binds replicas to "3".
type Let struct {
	name
	env map[string]any
}

// NewLet returns the let handler.  env provides the identifiers
// visible to expressions and may be nil.
func NewLet(env map[string]any) *Let {
	return &Let{name: "let", env: env}
}

func (h *Let) Handle(ctx Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: let expects an expression, got %d arguments", ErrArgs, len(args))
	}
	src := args[0]
	key := ""
	if ctx.Kind() == ir.MappingType {
		k, rest, ok := strings.Cut(src, " ")
		if !ok {
			return fmt.Errorf("%w: let expects `key expression` in a mapping", ErrArgs)
		}
		key, src = k, strings.TrimSpace(rest)
	}
	program, err := expr.Compile(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArgs, err)
	}
	out, err := expr.Run(program, h.env)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArgs, err)
	}
	v, err := ir.FromAny(out)
	if err != nil {
		return err
	}
	if key != "" {
		return ctx.Insert(key, v)
	}
	return ctx.Append(v)
}
