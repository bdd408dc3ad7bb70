package interp

import (
	"os"
	"path/filepath"

	"github.com/RobinBoers/signo/token"
)

func installSpecialForms(env *Environment) {
	forms := map[string]SpecialFormFunc{
		"let":     specialLet,
		"if":      specialIf,
		"do":      specialDo,
		"lambda":  specialLambda,
		"def":     specialDef,
		"eval":    specialEval,
		"include": specialInclude,
	}
	for name, fn := range forms {
		env.Assign(name, &Expression{Kind: SpecialFormKind, FormName: name, SpecialForm: fn})
	}
}

func symbolName(e *Expression, pos token.Position, form string) (string, error) {
	if e.Kind != SymbolKind {
		return "", TypeErrorf(pos, "%s: expected a symbol, got %s", form, e.Kind)
	}
	return e.SymbolName, nil
}

// specialLet evaluates expr in the current env and binds it to name in
// a new child scope, rather than mutating env itself: a lambda that
// already captured env as its LambdaEnv must keep seeing env's
// bindings as they were at capture time, not whatever a later let
// rebinds them to.
func specialLet(args []*Expression, env *Environment, pos token.Position) (*Expression, *Environment, error) {
	if len(args) != 2 {
		return nil, env, TypeErrorf(pos, "let expects 2 arguments (name, expr), got %d", len(args))
	}
	name, err := symbolName(args[0], pos, "let")
	if err != nil {
		return nil, env, err
	}
	v, _, err := Eval(args[1], env)
	if err != nil {
		return nil, env, err
	}
	return v, env.Child(map[string]*Expression{name: v}), nil
}

// specialIf evaluates the condition and then only its chosen branch;
// the branch's value is returned together with the original
// (unextended) env.
func specialIf(args []*Expression, env *Environment, pos token.Position) (*Expression, *Environment, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, env, TypeErrorf(pos, "if expects 2 or 3 arguments, got %d", len(args))
	}
	cond, _, err := Eval(args[0], env)
	if err != nil {
		return nil, env, err
	}
	if cond.IsTruthy() {
		v, _, err := Eval(args[1], env)
		return v, env, err
	}
	if len(args) == 3 {
		v, _, err := Eval(args[2], env)
		return v, env, err
	}
	return Nil(), env, nil
}

// specialDo evaluates every expr in a fresh child scope, then discards
// that scope, keeping only the result.
func specialDo(args []*Expression, env *Environment, pos token.Position) (*Expression, *Environment, error) {
	if len(args) == 0 {
		return nil, env, TypeErrorf(pos, "do expects at least one expression")
	}
	child := env.Child(nil)
	result := Nil()
	for _, expr := range args {
		var err error
		var nextChild *Environment
		result, nextChild, err = Eval(expr, child)
		if err != nil {
			return nil, env, err
		}
		child = nextChild
	}
	return result, env, nil
}

func parseParams(paramsExpr *Expression, pos token.Position) ([]string, error) {
	switch paramsExpr.Kind {
	case SymbolKind:
		return []string{paramsExpr.SymbolName}, nil
	case ListKind:
		names := make([]string, len(paramsExpr.List))
		for i, p := range paramsExpr.List {
			name, err := symbolName(p, pos, "lambda")
			if err != nil {
				return nil, err
			}
			names[i] = name
		}
		return names, nil
	case NilKind:
		return nil, nil
	default:
		return nil, TypeErrorf(pos, "lambda: parameter list must be a symbol or list of symbols, got %s", paramsExpr.Kind)
	}
}

// specialLambda builds a closure: params desugars a bare Symbol into a
// one-element parameter list; body is kept unevaluated until the
// lambda is applied.
func specialLambda(args []*Expression, env *Environment, pos token.Position) (*Expression, *Environment, error) {
	if len(args) != 2 {
		return nil, env, TypeErrorf(pos, "lambda expects 2 arguments (params, body), got %d", len(args))
	}
	params, err := parseParams(args[0], pos)
	if err != nil {
		return nil, env, err
	}
	fn := &Expression{
		Kind:         LambdaKind,
		LambdaParams: params,
		LambdaBody:   args[1],
		LambdaEnv:    env,
	}
	return fn, env, nil
}

// specialDef is like (let name (lambda params body)) but records name
// as the lambda's self-name so the body can call itself recursively.
// Like let, it threads a new child scope rather than mutating env, so
// an earlier lambda that captured env is unaffected by this binding.
func specialDef(args []*Expression, env *Environment, pos token.Position) (*Expression, *Environment, error) {
	if len(args) != 3 {
		return nil, env, TypeErrorf(pos, "def expects 3 arguments (name, params, body), got %d", len(args))
	}
	name, err := symbolName(args[0], pos, "def")
	if err != nil {
		return nil, env, err
	}
	params, err := parseParams(args[1], pos)
	if err != nil {
		return nil, env, err
	}
	fn := &Expression{
		Kind:         LambdaKind,
		LambdaSelf:   name,
		LambdaParams: params,
		LambdaBody:   args[2],
		LambdaEnv:    env,
	}
	return fn, env.Child(map[string]*Expression{name: fn}), nil
}

// specialEval is the quote/eval duality: evaluating expr yields inner;
// evaluating inner yields the result, turning program-data back into
// program-code.
func specialEval(args []*Expression, env *Environment, pos token.Position) (*Expression, *Environment, error) {
	if len(args) != 1 {
		return nil, env, TypeErrorf(pos, "eval expects 1 argument, got %d", len(args))
	}
	inner, _, err := Eval(args[0], env)
	if err != nil {
		return nil, env, err
	}
	result, _, err := Eval(inner, env)
	return result, env, err
}

// specialInclude resolves path relative to the including file's
// directory, parses and evaluates it in the calling environment, so
// top-level bindings become visible to the includer.
func specialInclude(args []*Expression, env *Environment, pos token.Position) (*Expression, *Environment, error) {
	if len(args) != 1 {
		return nil, env, TypeErrorf(pos, "include expects 1 argument (a path string), got %d", len(args))
	}
	pathVal, _, err := Eval(args[0], env)
	if err != nil {
		return nil, env, err
	}
	if pathVal.Kind != StringKind {
		return nil, env, TypeErrorf(pos, "include: expected a string path, got %s", pathVal.Kind)
	}

	rt := env.root().runtime
	if rt.reader == nil {
		return nil, env, RuntimeErrorf(pos, "include: no source reader configured")
	}

	base := rt.includeRoot
	if pos.Path != "" && pos.Path != token.NoFile {
		base = filepath.Dir(pos.Path)
	}
	path := pathVal.Str
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, env, RuntimeErrorf(pos, "include: %v", err)
	}
	defer f.Close()

	exprs, err := rt.reader.Read(path, f)
	if err != nil {
		return nil, env, RuntimeErrorf(pos, "include: %v", err)
	}

	result, newEnv, err := Load(exprs, env)
	return result, newEnv, err
}
