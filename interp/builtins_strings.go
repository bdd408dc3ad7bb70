package interp

import (
	"strings"

	"github.com/RobinBoers/signo/token"
)

// installStringBuiltins registers the string operations plus
// first/last/nth, which dispatch on element type and so are shared
// between strings and lists.
func installStringBuiltins(env *Environment) {
	register(env, "length", builtinLength)
	register(env, "upcase", stringOnly("upcase", strings.ToUpper))
	register(env, "downcase", stringOnly("downcase", strings.ToLower))
	register(env, "capitalize", stringOnly("capitalize", capitalize))
	register(env, "trim", stringOnly("trim", strings.TrimSpace))
	register(env, "concat", builtinConcat)
	register(env, "first", builtinFirst)
	register(env, "last", builtinLast)
	register(env, "nth", builtinNth)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func stringOnly(name string, fn func(string) string) BuiltinFunc {
	return func(args []*Expression, pos token.Position) (*Expression, error) {
		if err := requireArgc(args, 1, pos, name); err != nil {
			return nil, err
		}
		s, err := requireString(args[0], pos, name)
		if err != nil {
			return nil, err
		}
		return NewString(fn(s)), nil
	}
}

func builtinLength(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 1, pos, "length"); err != nil {
		return nil, err
	}
	switch args[0].Kind {
	case StringKind:
		return NewNumber(IntNumber(int64(len([]rune(args[0].Str))))), nil
	case ListKind:
		return NewNumber(IntNumber(int64(len(args[0].List)))), nil
	case NilKind:
		return NewNumber(IntNumber(0)), nil
	default:
		return nil, TypeErrorf(pos, "length: expected a string or list, got %s", args[0].Kind)
	}
}

// builtinConcat dispatches on element type: strings concatenate to a
// string, lists concatenate to a list.
func builtinConcat(args []*Expression, pos token.Position) (*Expression, error) {
	if len(args) == 0 {
		return nil, TypeErrorf(pos, "concat expects at least 1 argument, got 0")
	}
	switch args[0].Kind {
	case StringKind:
		var b strings.Builder
		for _, a := range args {
			s, err := requireString(a, pos, "concat")
			if err != nil {
				return nil, err
			}
			b.WriteString(s)
		}
		return NewString(b.String()), nil
	case ListKind, NilKind:
		var out []*Expression
		for _, a := range args {
			elems, err := requireList(a, pos, "concat")
			if err != nil {
				return nil, err
			}
			out = append(out, elems...)
		}
		if out == nil {
			return Nil(), nil
		}
		return NewList(out, pos), nil
	default:
		return nil, TypeErrorf(pos, "concat: expected strings or lists, got %s", args[0].Kind)
	}
}

// builtinFirst returns the first element of a string or list: Nil for
// an empty list, the empty string for an empty string.
func builtinFirst(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 1, pos, "first"); err != nil {
		return nil, err
	}
	switch args[0].Kind {
	case NilKind:
		return Nil(), nil
	case StringKind:
		r := []rune(args[0].Str)
		if len(r) == 0 {
			return NewString(""), nil
		}
		return NewString(string(r[0])), nil
	case ListKind:
		if len(args[0].List) == 0 {
			return Nil(), nil
		}
		return args[0].List[0], nil
	default:
		return nil, TypeErrorf(pos, "first: expected a string or list, got %s", args[0].Kind)
	}
}

func builtinLast(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 1, pos, "last"); err != nil {
		return nil, err
	}
	switch args[0].Kind {
	case NilKind:
		return Nil(), nil
	case StringKind:
		r := []rune(args[0].Str)
		if len(r) == 0 {
			return NewString(""), nil
		}
		return NewString(string(r[len(r)-1])), nil
	case ListKind:
		if len(args[0].List) == 0 {
			return Nil(), nil
		}
		return args[0].List[len(args[0].List)-1], nil
	default:
		return nil, TypeErrorf(pos, "last: expected a string or list, got %s", args[0].Kind)
	}
}

func builtinNth(args []*Expression, pos token.Position) (*Expression, error) {
	if err := requireArgc(args, 2, pos, "nth"); err != nil {
		return nil, err
	}
	idx, err := requireNumber(args[0], pos, "nth")
	if err != nil {
		return nil, err
	}
	if idx.IsFloat {
		return nil, TypeErrorf(pos, "nth: index must be an integer, got %s", idx)
	}
	i := int(idx.Int)
	switch args[1].Kind {
	case StringKind:
		r := []rune(args[1].Str)
		if i < 0 || i >= len(r) {
			return nil, TypeErrorf(pos, "nth: index %d out of range (length %d)", i, len(r))
		}
		return NewString(string(r[i])), nil
	case ListKind:
		if i < 0 || i >= len(args[1].List) {
			return nil, TypeErrorf(pos, "nth: index %d out of range (length %d)", i, len(args[1].List))
		}
		return args[1].List[i], nil
	case NilKind:
		return nil, TypeErrorf(pos, "nth: index %d out of range (length 0)", i)
	default:
		return nil, TypeErrorf(pos, "nth: expected a string or list, got %s", args[1].Kind)
	}
}
