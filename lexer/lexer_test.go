package lexer

import (
	"testing"

	"github.com/RobinBoers/signo/token"
)

func scanAll(source string) []token.Token {
	lex := New(token.Position{Path: token.NoFile, Row: 1, Column: 1}, source)
	var toks []token.Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestNextTokenStructural(t *testing.T) {
	toks := scanAll("(+ 1 2)")
	want := []token.Kind{token.LParen, token.Symbol, token.Number, token.Number, token.RParen, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNextTokenNumbers(t *testing.T) {
	cases := []string{"42", "-3", "2.0", "-0.5"}
	for _, src := range cases {
		toks := scanAll(src)
		if toks[0].Kind != token.Number || toks[0].Lexeme != src {
			t.Errorf("scanAll(%q) = %v, want a single Number token with lexeme %q", src, toks[0], src)
		}
	}
}

func TestNextTokenNegativeFollowedByDigitIsNumber(t *testing.T) {
	toks := scanAll("-5")
	if toks[0].Kind != token.Number {
		t.Errorf("got Kind %s, want Number", toks[0].Kind)
	}
}

func TestNextTokenBareMinusIsSymbol(t *testing.T) {
	toks := scanAll("-")
	if toks[0].Kind != token.Symbol {
		t.Errorf("got Kind %s, want Symbol", toks[0].Kind)
	}
}

func TestNextTokenString(t *testing.T) {
	toks := scanAll(`"hello world"`)
	if toks[0].Kind != token.String || toks[0].Lexeme != "hello world" {
		t.Errorf("got %v, want String(%q)", toks[0], "hello world")
	}
}

func TestNextTokenUnterminatedString(t *testing.T) {
	toks := scanAll(`"oops`)
	if toks[0].Kind != token.Error {
		t.Errorf("got Kind %s, want Error", toks[0].Kind)
	}
}

func TestNextTokenAtom(t *testing.T) {
	toks := scanAll("#true")
	if toks[0].Kind != token.Atom || toks[0].Lexeme != "true" {
		t.Errorf("got %v, want Atom(%q)", toks[0], "true")
	}
}

func TestNextTokenCommentDiscarded(t *testing.T) {
	toks := scanAll("; a comment\n42")
	if toks[0].Kind != token.Number || toks[0].Lexeme != "42" {
		t.Errorf("got %v, want the Number following the comment", toks[0])
	}
}

func TestNextTokenPositionTracksNewlines(t *testing.T) {
	toks := scanAll("1\n2")
	if toks[0].Position.Row != 1 {
		t.Errorf("first token row = %d, want 1", toks[0].Position.Row)
	}
	if toks[1].Position.Row != 2 || toks[1].Position.Column != 1 {
		t.Errorf("second token position = %+v, want row 2 column 1", toks[1].Position)
	}
}

func TestNextTokenEOFIsSticky(t *testing.T) {
	lex := New(token.Position{Path: token.NoFile, Row: 1, Column: 1}, "")
	first := lex.NextToken()
	second := lex.NextToken()
	if first.Kind != token.EOF || second.Kind != token.EOF {
		t.Errorf("expected repeated EOF, got %v then %v", first, second)
	}
}
