package interp

import "github.com/RobinBoers/signo/token"

// installCompareBuiltins registers ==/!= (any values) and the ordering
// comparisons (numbers only).
func installCompareBuiltins(env *Environment) {
	register(env, "==", builtinEq)
	register(env, "!=", builtinNeq)
	register(env, ">", builtinGt)
	register(env, ">=", builtinGte)
	register(env, "<", builtinLt)
	register(env, "<=", builtinLte)
}

func builtinEq(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 2, pos, "=="); err != nil {
		return nil, err
	}
	return BoolAtom(Equal(args[0], args[1])), nil
}

func builtinNeq(args []*Expression, pos token.Position) (*Expression, error) {
	v, err := builtinEq(args, pos)
	if err != nil {
		return nil, err
	}
	return BoolAtom(!v.IsTruthy()), nil
}

func numberPair(args []*Expression, pos token.Position, name string) (Number, Number, error) {
	if err := requireArgc(args, 2, pos, name); err != nil {
		return Number{}, Number{}, err
	}
	a, err := requireNumber(args[0], pos, name)
	if err != nil {
		return Number{}, Number{}, err
	}
	b, err := requireNumber(args[1], pos, name)
	if err != nil {
		return Number{}, Number{}, err
	}
	return a, b, nil
}

func builtinGt(args []*Expression, pos token.Position) (*Expression, error) {
	a, b, err := numberPair(args, pos, ">")
	if err != nil {
		return nil, err
	}
	return BoolAtom(a.AsFloat() > b.AsFloat()), nil
}

func builtinGte(args []*Expression, pos token.Position) (*Expression, error) {
	a, b, err := numberPair(args, pos, ">=")
	if err != nil {
		return nil, err
	}
	return BoolAtom(a.AsFloat() >= b.AsFloat()), nil
}

func builtinLt(args []*Expression, pos token.Position) (*Expression, error) {
	a, b, err := numberPair(args, pos, "<")
	if err != nil {
		return nil, err
	}
	return BoolAtom(a.AsFloat() < b.AsFloat()), nil
}

func builtinLte(args []*Expression, pos token.Position) (*Expression, error) {
	a, b, err := numberPair(args, pos, "<=")
	if err != nil {
		return nil, err
	}
	return BoolAtom(a.AsFloat() <= b.AsFloat()), nil
}
