package interp

import (
	"github.com/RobinBoers/signo/token"
)

// Eval evaluates expr in env, returning (value, env'). The returned
// Environment lets a top-level let extend the caller's scope; inside
// nested scopes the caller discards the child env on exit.
func Eval(expr *Expression, env *Environment) (*Expression, *Environment, error) {
	switch expr.Kind {
	case NilKind, NumberKind, AtomKind, StringKind, LambdaKind, BuiltinKind, SpecialFormKind:
		return expr, env, nil
	case SymbolKind:
		v, err := env.Lookup(expr.SymbolName, expr.Pos)
		if err != nil {
			return nil, env, err
		}
		return v, env, nil
	case QuotedKind:
		return expr.Inner, env, nil
	case ListKind:
		return evalList(expr, env)
	default:
		return nil, env, RuntimeErrorf(expr.Pos, "cannot evaluate expression of kind %s", expr.Kind)
	}
}

func evalList(list *Expression, env *Environment) (*Expression, *Environment, error) {
	if len(list.List) == 0 {
		return Nil(), env, nil
	}
	head := list.List[0]
	tail := list.List[1:]

	headVal, _, err := Eval(head, env)
	if err != nil {
		return nil, env, err
	}

	switch headVal.Kind {
	case LambdaKind:
		args, err := evalArgs(tail, env)
		if err != nil {
			return nil, env, err
		}
		result, err := apply(headVal, args, list.Pos)
		return result, env, err
	case BuiltinKind:
		args, err := evalArgs(tail, env)
		if err != nil {
			return nil, env, err
		}
		result, err := headVal.Builtin(args, list.Pos)
		return result, env, err
	case SpecialFormKind:
		return headVal.SpecialForm(tail, env, list.Pos)
	default:
		return nil, env, RuntimeErrorf(list.Pos, "not callable: %s", headVal)
	}
}

// evalArgs evaluates exprs strictly left-to-right.
func evalArgs(exprs []*Expression, env *Environment) ([]*Expression, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	out := make([]*Expression, len(exprs))
	for i, e := range exprs {
		v, _, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Apply invokes a Lambda or Builtin value with an already-evaluated
// argument vector. It is exported so higher-order builtins (map, filter,
// reduce) can invoke a Lambda or Builtin value they received as an
// argument, the same way the List-application step above does for a
// callable head.
func Apply(fn *Expression, args []*Expression, pos token.Position) (*Expression, error) {
	switch fn.Kind {
	case LambdaKind:
		return apply(fn, args, pos)
	case BuiltinKind:
		return fn.Builtin(args, pos)
	default:
		return nil, RuntimeErrorf(pos, "not callable: %s", fn)
	}
}

func apply(fn *Expression, args []*Expression, pos token.Position) (*Expression, error) {
	if len(args) != len(fn.LambdaParams) {
		return nil, TypeErrorf(pos, "%s expects %d argument(s), got %d", fn, len(fn.LambdaParams), len(args))
	}

	rt := fn.LambdaEnv.runtime
	rt.depth++
	defer func() { rt.depth-- }()
	if rt.depth > rt.maxCallDepth {
		return nil, RuntimeErrorf(pos, "maximum call depth exceeded (%d)", rt.maxCallDepth)
	}

	bindings := make(map[string]*Expression, len(fn.LambdaParams)+1)
	for i, param := range fn.LambdaParams {
		bindings[param] = args[i]
	}
	callEnv := fn.LambdaEnv.Child(bindings)
	if fn.LambdaSelf != "" {
		callEnv.Assign(fn.LambdaSelf, fn)
	}

	result, _, err := Eval(fn.LambdaBody, callEnv)
	return result, err
}

// Load evaluates a sequence of top-level expressions, threading env
// across them. An empty program returns Nil.
func Load(exprs []*Expression, env *Environment) (*Expression, *Environment, error) {
	result := Nil()
	for _, expr := range exprs {
		var err error
		result, env, err = Eval(expr, env)
		if err != nil {
			return nil, env, err
		}
	}
	return result, env, nil
}
