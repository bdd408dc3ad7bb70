package interp

import (
	"strings"

	"github.com/RobinBoers/signo/token"
)

// installListBuiltins registers the core list operations (tie, push, pop,
// sum, product, join) plus the functional-programming additions (map,
// filter, reduce, reverse, range, zip). first, last and nth are shared
// with strings and registered by installStringBuiltins.
func installListBuiltins(env *Environment) {
	register(env, "tie", builtinTie)
	register(env, "push", builtinPush)
	register(env, "pop", builtinPop)
	register(env, "sum", builtinSum)
	register(env, "product", builtinProduct)
	register(env, "join", builtinJoin)
	register(env, "map", builtinMap)
	register(env, "filter", builtinFilter)
	register(env, "reduce", builtinReduce)
	register(env, "reverse", builtinReverse)
	register(env, "range", builtinRange)
	register(env, "zip", builtinZip)
}

// builtinTie collects its (already-evaluated) arguments into a List,
// the evaluated-argument counterpart to the quote prefix:
// (tie 1 2 (+ 1 2)) = (1 2 3) while '(1 2 (+ 1 2)) keeps the inner
// expression unevaluated.
func builtinTie(args []*Expression, pos token.Position) (*Expression, error) {
	if len(args) == 0 {
		return Nil(), nil
	}
	return NewList(args, pos), nil
}

func builtinPush(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 2, pos, "push"); err != nil {
		return nil, err
	}
	elems, err := requireList(args[1], pos, "push")
	if err != nil {
		return nil, err
	}
	// push appends at the tail.
	out := make([]*Expression, len(elems)+1)
	copy(out, elems)
	out[len(elems)] = args[0]
	return NewList(out, pos), nil
}

// builtinPop returns a two-element list (head rest), or (() ()) for an
// empty list.
func builtinPop(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 1, pos, "pop"); err != nil {
		return nil, err
	}
	elems, err := requireList(args[0], pos, "pop")
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return NewList([]*Expression{Nil(), Nil()}, pos), nil
	}
	rest := NewList(append([]*Expression{}, elems[1:]...), pos)
	return NewList([]*Expression{elems[0], rest}, pos), nil
}

func builtinSum(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 1, pos, "sum"); err != nil {
		return nil, err
	}
	elems, err := requireList(args[0], pos, "sum")
	if err != nil {
		return nil, err
	}
	result := IntNumber(0)
	for _, e := range elems {
		n, err := requireNumber(e, pos, "sum")
		if err != nil {
			return nil, err
		}
		result = numAdd(result, n)
	}
	return NewNumber(result), nil
}

func builtinProduct(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 1, pos, "product"); err != nil {
		return nil, err
	}
	elems, err := requireList(args[0], pos, "product")
	if err != nil {
		return nil, err
	}
	result := IntNumber(1)
	for _, e := range elems {
		n, err := requireNumber(e, pos, "product")
		if err != nil {
			return nil, err
		}
		result = numMul(result, n)
	}
	return NewNumber(result), nil
}

func builtinJoin(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 2, pos, "join"); err != nil {
		return nil, err
	}
	elems, err := requireList(args[0], pos, "join")
	if err != nil {
		return nil, err
	}
	sep, err := requireString(args[1], pos, "join")
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.Display()
	}
	return NewString(strings.Join(parts, sep)), nil
}

func builtinMap(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 2, pos, "map"); err != nil {
		return nil, err
	}
	fn, err := requireCallable(args[0], pos, "map")
	if err != nil {
		return nil, err
	}
	elems, err := requireList(args[1], pos, "map")
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return Nil(), nil
	}
	out := make([]*Expression, len(elems))
	for i, e := range elems {
		v, err := Apply(fn, []*Expression{e}, pos)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return NewList(out, pos), nil
}

func builtinFilter(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 2, pos, "filter"); err != nil {
		return nil, err
	}
	pred, err := requireCallable(args[0], pos, "filter")
	if err != nil {
		return nil, err
	}
	elems, err := requireList(args[1], pos, "filter")
	if err != nil {
		return nil, err
	}
	var out []*Expression
	for _, e := range elems {
		v, err := Apply(pred, []*Expression{e}, pos)
		if err != nil {
			return nil, err
		}
		if v.IsTruthy() {
			out = append(out, e)
		}
	}
	if out == nil {
		return Nil(), nil
	}
	return NewList(out, pos), nil
}

func builtinReduce(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 3, pos, "reduce"); err != nil {
		return nil, err
	}
	fn, err := requireCallable(args[0], pos, "reduce")
	if err != nil {
		return nil, err
	}
	acc := args[1]
	elems, err := requireList(args[2], pos, "reduce")
	if err != nil {
		return nil, err
	}
	for _, e := range elems {
		acc, err = Apply(fn, []*Expression{acc, e}, pos)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func builtinReverse(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 1, pos, "reverse"); err != nil {
		return nil, err
	}
	elems, err := requireList(args[0], pos, "reverse")
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return Nil(), nil
	}
	out := make([]*Expression, len(elems))
	for i, e := range elems {
		out[len(elems)-1-i] = e
	}
	return NewList(out, pos), nil
}

func builtinRange(args []*Expression, pos token.Position) (*Expression, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, TypeErrorf(pos, "range expects 2 or 3 arguments, got %d", len(args))
	}
	start, err := requireNumber(args[0], pos, "range")
	if err != nil {
		return nil, err
	}
	stop, err := requireNumber(args[1], pos, "range")
	if err != nil {
		return nil, err
	}
	step := IntNumber(1)
	if len(args) == 3 {
		step, err = requireNumber(args[2], pos, "range")
		if err != nil {
			return nil, err
		}
	}
	if step.AsFloat() == 0 {
		return nil, TypeErrorf(pos, "range: step must not be zero")
	}

	var out []*Expression
	if step.AsFloat() > 0 {
		for v := start; v.AsFloat() < stop.AsFloat(); v = numAdd(v, step) {
			out = append(out, NewNumber(v))
		}
	} else {
		for v := start; v.AsFloat() > stop.AsFloat(); v = numAdd(v, step) {
			out = append(out, NewNumber(v))
		}
	}
	if out == nil {
		return Nil(), nil
	}
	return NewList(out, pos), nil
}

func builtinZip(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 2, pos, "zip"); err != nil {
		return nil, err
	}
	xs, err := requireList(args[0], pos, "zip")
	if err != nil {
		return nil, err
	}
	ys, err := requireList(args[1], pos, "zip")
	if err != nil {
		return nil, err
	}
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 0 {
		return Nil(), nil
	}
	out := make([]*Expression, n)
	for i := 0; i < n; i++ {
		out[i] = NewList([]*Expression{xs[i], ys[i]}, pos)
	}
	return NewList(out, pos), nil
}
