package interp

import (
	"math"

	"github.com/RobinBoers/signo/token"
)

// installMathBuiltins registers math constants and trigonometric/
// logarithmic functions. log is fixed at base 10, ln at natural log,
// and logn(n, x) at base n.
func installMathBuiltins(env *Environment) {
	register(env, "pi", builtinPi)
	register(env, "tau", builtinTau)
	register(env, "sin", unaryMath("sin", math.Sin))
	register(env, "cos", unaryMath("cos", math.Cos))
	register(env, "tan", unaryMath("tan", math.Tan))
	register(env, "asin", unaryMath("asin", math.Asin))
	register(env, "acos", unaryMath("acos", math.Acos))
	register(env, "atan", unaryMath("atan", math.Atan))
	register(env, "ln", unaryMath("ln", math.Log))
	register(env, "log", unaryMath("log", math.Log10))
	register(env, "logn", builtinLogn)
}

func builtinPi(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 0, pos, "pi"); err != nil {
		return nil, err
	}
	return NewNumber(FloatNumber(math.Pi)), nil
}

func builtinTau(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 0, pos, "tau"); err != nil {
		return nil, err
	}
	return NewNumber(FloatNumber(2 * math.Pi)), nil
}

func unaryMath(name string, fn func(float64) float64) BuiltinFunc {
	return func(args []*Expression, pos token.Position) (*Expression, error) {
		if err := requireArgc(args, 1, pos, name); err != nil {
			return nil, err
		}
		n, err := requireNumber(args[0], pos, name)
		if err != nil {
			return nil, err
		}
		return NewNumber(FloatNumber(fn(n.AsFloat()))), nil
	}
}

func builtinLogn(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 2, pos, "logn"); err != nil {
		return nil, err
	}
	base, err := requireNumber(args[0], pos, "logn")
	if err != nil {
		return nil, err
	}
	x, err := requireNumber(args[1], pos, "logn")
	if err != nil {
		return nil, err
	}
	return NewNumber(FloatNumber(math.Log(x.AsFloat()) / math.Log(base.AsFloat()))), nil
}
