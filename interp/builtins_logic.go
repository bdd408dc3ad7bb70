package interp

import "github.com/RobinBoers/signo/token"

// installLogicBuiltins registers not/and/or/nor/xor. These accept any
// values via truthiness and are NOT short-circuiting: every argument is
// already evaluated by the time the builtin runs.
func installLogicBuiltins(env *Environment) {
	register(env, "not", builtinNot)
	register(env, "and", builtinAnd)
	register(env, "or", builtinOr)
	register(env, "nor", builtinNor)
	register(env, "xor", builtinXor)
}

func builtinNot(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 1, pos, "not"); err != nil {
		return nil, err
	}
	return BoolAtom(!args[0].IsTruthy()), nil
}

func builtinAnd(args []*Expression, pos token.Position) (*Expression, error) {
	if len(args) == 0 {
		return nil, TypeErrorf(pos, "and expects at least 1 argument, got 0")
	}
	for _, a := range args {
		if !a.IsTruthy() {
			return False, nil
		}
	}
	return True, nil
}

func builtinOr(args []*Expression, pos token.Position) (*Expression, error) {
	if len(args) == 0 {
		return nil, TypeErrorf(pos, "or expects at least 1 argument, got 0")
	}
	for _, a := range args {
		if a.IsTruthy() {
			return True, nil
		}
	}
	return False, nil
}

func builtinNor(args []*Expression, pos token.Position) (*Expression, error) {
	v, err := builtinOr(args, pos)
	if err != nil {
		return nil, err
	}
	return BoolAtom(!v.IsTruthy()), nil
}

func builtinXor(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 2, pos, "xor"); err != nil {
		return nil, err
	}
	return BoolAtom(args[0].IsTruthy() != args[1].IsTruthy()), nil
}
