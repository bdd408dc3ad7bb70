// Package interp implements Signo's value model, environment, evaluator,
// special forms, and standard library.
package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RobinBoers/signo/symbol"
	"github.com/RobinBoers/signo/token"
)

// Kind is the tag of an Expression. The set is closed; Eval and the
// display/debug renderers switch on it exhaustively.
type Kind uint8

const (
	NilKind Kind = iota
	NumberKind
	AtomKind
	StringKind
	SymbolKind
	ListKind
	QuotedKind
	LambdaKind
	BuiltinKind
	SpecialFormKind
)

var kindStrings = [...]string{
	NilKind:         "nil",
	NumberKind:      "number",
	AtomKind:        "atom",
	StringKind:      "string",
	SymbolKind:      "symbol",
	ListKind:        "list",
	QuotedKind:      "quoted",
	LambdaKind:      "lambda",
	BuiltinKind:     "builtin",
	SpecialFormKind: "special-form",
}

func (k Kind) String() string {
	if int(k) >= len(kindStrings) {
		return "invalid"
	}
	return kindStrings[k]
}

// BuiltinFunc is the Go implementation backing a Builtin value. args has
// already been evaluated left-to-right by the caller.
type BuiltinFunc func(args []*Expression, pos token.Position) (*Expression, error)

// SpecialFormFunc is the Go implementation backing a SpecialForm value.
// args is the unevaluated tail of the call; the handler decides what, if
// anything, to evaluate and may return an extended environment.
type SpecialFormFunc func(args []*Expression, env *Environment, pos token.Position) (*Expression, *Environment, error)

// Expression is Signo's single AST/value sum type: every node the parser
// produces and every value the evaluator manipulates shares this one type.
type Expression struct {
	Kind Kind

	Number Number // NumberKind

	AtomID symbol.ID // AtomKind

	Str string // StringKind

	SymbolName string         // SymbolKind
	Pos        token.Position // SymbolKind, ListKind

	List []*Expression // ListKind

	Inner *Expression // QuotedKind

	LambdaSelf   string        // LambdaKind; "" if the lambda has no self-name
	LambdaParams []string      // LambdaKind
	LambdaBody   *Expression   // LambdaKind
	LambdaEnv    *Environment  // LambdaKind, the captured environment

	BuiltinName string      // BuiltinKind
	Builtin     BuiltinFunc // BuiltinKind

	FormName    string           // SpecialFormKind
	SpecialForm SpecialFormFunc  // SpecialFormKind
}

// Number is Signo's unified int/float numeric value.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

// IntNumber returns an integer Number.
func IntNumber(x int64) Number { return Number{Int: x} }

// FloatNumber returns a float Number.
func FloatNumber(x float64) Number { return Number{IsFloat: true, Float: x} }

// AsFloat returns n's value widened to float64, regardless of which
// representation it holds.
func (n Number) AsFloat() float64 {
	if n.IsFloat {
		return n.Float
	}
	return float64(n.Int)
}

func (n Number) String() string {
	if n.IsFloat {
		s := strconv.FormatFloat(n.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatInt(n.Int, 10)
}

// NumberEqual compares across representation: 1 and 1.0 compare equal.
func NumberEqual(a, b Number) bool {
	if a.IsFloat || b.IsFloat {
		return a.AsFloat() == b.AsFloat()
	}
	return a.Int == b.Int
}

var (
	// Nil is the unique Nil value. Expression's zero value already has
	// Kind NilKind, so Nil is just a convenience constructor call site.
	nilExpr = &Expression{Kind: NilKind}
)

// Nil returns the Nil value ().
func Nil() *Expression { return nilExpr }

// IsNil reports whether e is the Nil value.
func (e *Expression) IsNil() bool { return e.Kind == NilKind }

// NewNumber wraps a Number as an Expression.
func NewNumber(n Number) *Expression { return &Expression{Kind: NumberKind, Number: n} }

// NewAtom interns name and returns an Atom Expression for it.
func NewAtom(name string) *Expression {
	return &Expression{Kind: AtomKind, AtomID: symbol.DefaultTable.Intern(name)}
}

// AtomName returns the interned name of an Atom Expression.
func (e *Expression) AtomName() string {
	return symbol.DefaultTable.Name(e.AtomID)
}

// NewString wraps a string as an Expression.
func NewString(s string) *Expression { return &Expression{Kind: StringKind, Str: s} }

// NewSymbol returns a Symbol referring to name at pos.
func NewSymbol(name string, pos token.Position) *Expression {
	return &Expression{Kind: SymbolKind, SymbolName: name, Pos: pos}
}

// NewList returns a List Expression wrapping elems. An empty elems
// should use Nil instead; NewList does not enforce this itself since
// the parser and builtins need to build lists incrementally.
func NewList(elems []*Expression, pos token.Position) *Expression {
	return &Expression{Kind: ListKind, List: elems, Pos: pos}
}

// NewQuoted wraps inner, deferring its evaluation.
func NewQuoted(inner *Expression) *Expression {
	return &Expression{Kind: QuotedKind, Inner: inner}
}

// True and False are the canonical boolean Atoms.
var (
	True  = NewAtom("true")
	False = NewAtom("false")
)

// BoolAtom returns True or False.
func BoolAtom(b bool) *Expression {
	if b {
		return True
	}
	return False
}

// IsTruthy reports whether e counts as true in a boolean context. Only
// Nil and the atom #false are falsy.
func (e *Expression) IsTruthy() bool {
	if e.Kind == NilKind {
		return false
	}
	if e.Kind == AtomKind && e.AtomName() == "false" {
		return false
	}
	return true
}

// Equal reports whether a and b are structurally equal, recursing into
// lists and quoted expressions.
func Equal(a, b *Expression) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NilKind:
		return true
	case NumberKind:
		return NumberEqual(a.Number, b.Number)
	case AtomKind:
		return a.AtomID == b.AtomID
	case StringKind:
		return a.Str == b.Str
	case SymbolKind:
		return a.SymbolName == b.SymbolName
	case ListKind:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case QuotedKind:
		return Equal(a.Inner, b.Inner)
	default:
		// Lambda, Builtin, SpecialForm: identity only.
		return a == b
	}
}

// String renders e in debug form: strings quoted, atoms with their #
// prefix, lists showing their elements in the same debug form. This is
// the form the REPL's result printer uses.
func (e *Expression) String() string {
	return e.render(true)
}

// Display renders e in the user-facing form print(x) writes: strings
// without quotes, atoms without the # prefix.
func (e *Expression) Display() string {
	return e.render(false)
}

func (e *Expression) render(debug bool) string {
	switch e.Kind {
	case NilKind:
		return "()"
	case NumberKind:
		return e.Number.String()
	case AtomKind:
		if debug {
			return "#" + e.AtomName()
		}
		return e.AtomName()
	case StringKind:
		if debug {
			return strconv.Quote(e.Str)
		}
		return e.Str
	case SymbolKind:
		return e.SymbolName
	case ListKind:
		parts := make([]string, len(e.List))
		for i, el := range e.List {
			parts[i] = el.render(debug)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case QuotedKind:
		return "'" + e.Inner.render(debug)
	case LambdaKind:
		name := e.LambdaSelf
		if name == "" {
			name = "lambda"
		}
		return fmt.Sprintf("<lambda %s(%s)>", name, strings.Join(e.LambdaParams, " "))
	case BuiltinKind:
		return fmt.Sprintf("<builtin %s>", e.BuiltinName)
	case SpecialFormKind:
		return fmt.Sprintf("<special-form %s>", e.FormName)
	default:
		return "<invalid>"
	}
}

// Hidden is the Atom print returns; the REPL suppresses printing it.
var Hidden = NewAtom("ok")

// IsHidden reports whether e is the sentinel value the REPL should not
// echo.
func (e *Expression) IsHidden() bool {
	return e.Kind == AtomKind && e.AtomID == Hidden.AtomID
}

// Callable reports whether e's Kind can appear as the head of a List
// application.
func (e *Expression) Callable() bool {
	switch e.Kind {
	case LambdaKind, BuiltinKind, SpecialFormKind:
		return true
	default:
		return false
	}
}
