package parser

import (
	"testing"

	"github.com/RobinBoers/signo/interp"
	"github.com/RobinBoers/signo/token"
)

func parseOne(t *testing.T, src string) *interp.Expression {
	t.Helper()
	exprs, err := ParseSource(token.NoFile, src)
	if err != nil {
		t.Fatalf("ParseSource(%q) error: %v", src, err)
	}
	if len(exprs) != 1 {
		t.Fatalf("ParseSource(%q) = %d expressions, want 1", src, len(exprs))
	}
	return exprs[0]
}

func TestParseLiterals(t *testing.T) {
	if got := parseOne(t, "42"); got.Kind != interp.NumberKind {
		t.Errorf("42 parsed as %s, want Number", got.Kind)
	}
	if got := parseOne(t, `"hi"`); got.Kind != interp.StringKind || got.Str != "hi" {
		t.Errorf(`"hi" parsed as %v, want String("hi")`, got)
	}
	if got := parseOne(t, "#true"); got.Kind != interp.AtomKind || got.AtomName() != "true" {
		t.Errorf("#true parsed as %v, want Atom(true)", got)
	}
	if got := parseOne(t, "x"); got.Kind != interp.SymbolKind || got.SymbolName != "x" {
		t.Errorf("x parsed as %v, want Symbol(x)", got)
	}
}

func TestParseEmptyListIsNil(t *testing.T) {
	got := parseOne(t, "()")
	if !got.IsNil() {
		t.Errorf("() parsed as %v, want Nil", got)
	}
}

func TestParseNonEmptyList(t *testing.T) {
	got := parseOne(t, "(+ 1 2)")
	if got.Kind != interp.ListKind || len(got.List) != 3 {
		t.Fatalf("(+ 1 2) parsed as %v", got)
	}
	if got.List[0].Kind != interp.SymbolKind || got.List[0].SymbolName != "+" {
		t.Errorf("head = %v, want Symbol(+)", got.List[0])
	}
}

func TestParseQuoteOfSelfEvaluatingIsUnwrapped(t *testing.T) {
	got := parseOne(t, "'42")
	if got.Kind != interp.NumberKind {
		t.Errorf("'42 parsed as %v, want a bare Number", got)
	}
}

func TestParseQuoteOfListIsQuoted(t *testing.T) {
	got := parseOne(t, "'(1 2)")
	if got.Kind != interp.QuotedKind {
		t.Errorf("'(1 2) parsed as %v, want Quoted", got)
	}
	if got.Inner.Kind != interp.ListKind || len(got.Inner.List) != 2 {
		t.Errorf("inner = %v, want a 2-element list", got.Inner)
	}
}

func TestParseUnclosedListIsParseError(t *testing.T) {
	_, err := ParseSource(token.NoFile, "(+ 1 2")
	ierr, ok := err.(*interp.Error)
	if !ok || ierr.Kind != interp.ParseErrorKind {
		t.Fatalf("got error %v, want a ParseError", err)
	}
}

func TestParseProgramMultipleTopLevelExprs(t *testing.T) {
	exprs, err := ParseSource(token.NoFile, "1 2 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exprs) != 3 {
		t.Fatalf("got %d expressions, want 3", len(exprs))
	}
}
