package interp

import (
	"fmt"

	"github.com/RobinBoers/signo/token"
)

// installIOBuiltins registers print, bound to the root Environment's
// own configured stdout via closure, since BuiltinFunc has no env
// parameter: builtins only ever see their evaluated argument vector
// and the call position.
func installIOBuiltins(env *Environment) {
	rt := env.runtime
	register(env, "print", func(args []*Expression, pos token.Position) (*Expression, error) {
		return builtinPrint(rt, args, pos)
	})
}

// builtinPrint writes x's display form to the configured stdout
// followed by a newline, and returns the hidden ok atom the REPL
// knows to suppress. The write blocks the single-threaded evaluator.
func builtinPrint(rt *runtime, args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 1, pos, "print"); err != nil {
		return nil, err
	}
	fmt.Fprintln(rt.stdout, args[0].Display())
	return Hidden, nil
}
