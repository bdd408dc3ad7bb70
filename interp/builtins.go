package interp

import "github.com/RobinBoers/signo/token"

func installBuiltins(env *Environment) {
	installLogicBuiltins(env)
	installCompareBuiltins(env)
	installArithBuiltins(env)
	installMathBuiltins(env)
	installStringBuiltins(env)
	installListBuiltins(env)
	installIOBuiltins(env)
}

func register(env *Environment, name string, fn BuiltinFunc) {
	env.Assign(name, &Expression{Kind: BuiltinKind, BuiltinName: name, Builtin: fn})
}

func requireArgc(args []*Expression, n int, pos token.Position, name string) error {
	if len(args) != n {
		return TypeErrorf(pos, "%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func requireNumber(e *Expression, pos token.Position, name string) (Number, error) {
	if e.Kind != NumberKind {
		return Number{}, TypeErrorf(pos, "%s: expected a number, got %s", name, e.Kind)
	}
	return e.Number, nil
}

func requireString(e *Expression, pos token.Position, name string) (string, error) {
	if e.Kind != StringKind {
		return "", TypeErrorf(pos, "%s: expected a string, got %s", name, e.Kind)
	}
	return e.Str, nil
}

func requireList(e *Expression, pos token.Position, name string) ([]*Expression, error) {
	switch e.Kind {
	case ListKind:
		return e.List, nil
	case NilKind:
		return nil, nil
	default:
		return nil, TypeErrorf(pos, "%s: expected a list, got %s", name, e.Kind)
	}
}

func requireCallable(e *Expression, pos token.Position, name string) (*Expression, error) {
	if !e.Callable() {
		return nil, TypeErrorf(pos, "%s: expected a callable, got %s", name, e.Kind)
	}
	return e, nil
}
