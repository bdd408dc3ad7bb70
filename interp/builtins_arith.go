package interp

import (
	"math"

	"github.com/RobinBoers/signo/token"
)

// installArithBuiltins registers +, -, *, /, ^, sqrt, abs over the
// unified int/float numeric type.
func installArithBuiltins(env *Environment) {
	register(env, "+", builtinAdd)
	register(env, "-", builtinSub)
	register(env, "*", builtinMul)
	register(env, "/", builtinDiv)
	register(env, "^", builtinPow)
	register(env, "sqrt", builtinSqrt)
	register(env, "abs", builtinAbs)
}

func numbers(args []*Expression, pos token.Position, name string) ([]Number, error) {
	if len(args) == 0 {
		return nil, TypeErrorf(pos, "%s expects at least 1 argument, got 0", name)
	}
	out := make([]Number, len(args))
	for i, a := range args {
		n, err := requireNumber(a, pos, name)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func numAdd(a, b Number) Number {
	if !a.IsFloat && !b.IsFloat {
		return IntNumber(a.Int + b.Int)
	}
	return FloatNumber(a.AsFloat() + b.AsFloat())
}

func numSub(a, b Number) Number {
	if !a.IsFloat && !b.IsFloat {
		return IntNumber(a.Int - b.Int)
	}
	return FloatNumber(a.AsFloat() - b.AsFloat())
}

func numMul(a, b Number) Number {
	if !a.IsFloat && !b.IsFloat {
		return IntNumber(a.Int * b.Int)
	}
	return FloatNumber(a.AsFloat() * b.AsFloat())
}

// numDiv: integer / integer stays an integer only when the division is
// exact; otherwise (or when either operand is already a float) the
// result is a float.
func numDiv(a, b Number, pos token.Position) (Number, error) {
	if !a.IsFloat && !b.IsFloat {
		if b.Int == 0 {
			return Number{}, TypeErrorf(pos, "division by zero")
		}
		if a.Int%b.Int == 0 {
			return IntNumber(a.Int / b.Int), nil
		}
		return FloatNumber(float64(a.Int) / float64(b.Int)), nil
	}
	return FloatNumber(a.AsFloat() / b.AsFloat()), nil
}

func builtinAdd(args []*Expression, pos token.Position) (*Expression, error) {
	ns, err := numbers(args, pos, "+")
	if err != nil {
		return nil, err
	}
	result := ns[0]
	for _, n := range ns[1:] {
		result = numAdd(result, n)
	}
	return NewNumber(result), nil
}

func builtinSub(args []*Expression, pos token.Position) (*Expression, error) {
	ns, err := numbers(args, pos, "-")
	if err != nil {
		return nil, err
	}
	if len(ns) == 1 {
		return NewNumber(numSub(IntNumber(0), ns[0])), nil
	}
	result := ns[0]
	for _, n := range ns[1:] {
		result = numSub(result, n)
	}
	return NewNumber(result), nil
}

func builtinMul(args []*Expression, pos token.Position) (*Expression, error) {
	ns, err := numbers(args, pos, "*")
	if err != nil {
		return nil, err
	}
	result := ns[0]
	for _, n := range ns[1:] {
		result = numMul(result, n)
	}
	return NewNumber(result), nil
}

func builtinDiv(args []*Expression, pos token.Position) (*Expression, error) {
	ns, err := numbers(args, pos, "/")
	if err != nil {
		return nil, err
	}
	if len(ns) == 1 {
		result, err := numDiv(IntNumber(1), ns[0], pos)
		if err != nil {
			return nil, err
		}
		return NewNumber(result), nil
	}
	result := ns[0]
	for _, n := range ns[1:] {
		var err error
		result, err = numDiv(result, n, pos)
		if err != nil {
			return nil, err
		}
	}
	return NewNumber(result), nil
}

// builtinPow: ^ always returns a float.
func builtinPow(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 2, pos, "^"); err != nil {
		return nil, err
	}
	a, err := requireNumber(args[0], pos, "^")
	if err != nil {
		return nil, err
	}
	b, err := requireNumber(args[1], pos, "^")
	if err != nil {
		return nil, err
	}
	return NewNumber(FloatNumber(math.Pow(a.AsFloat(), b.AsFloat()))), nil
}

func builtinSqrt(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 1, pos, "sqrt"); err != nil {
		return nil, err
	}
	n, err := requireNumber(args[0], pos, "sqrt")
	if err != nil {
		return nil, err
	}
	if n.AsFloat() < 0 {
		return nil, TypeErrorf(pos, "sqrt: domain error, negative argument %s", n)
	}
	return NewNumber(FloatNumber(math.Sqrt(n.AsFloat()))), nil
}

func builtinAbs(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 1, pos, "abs"); err != nil {
		return nil, err
	}
	n, err := requireNumber(args[0], pos, "abs")
	if err != nil {
		return nil, err
	}
	if n.IsFloat {
		return NewNumber(FloatNumber(math.Abs(n.Float))), nil
	}
	if n.Int < 0 {
		return NewNumber(IntNumber(-n.Int)), nil
	}
	return NewNumber(n), nil
}
