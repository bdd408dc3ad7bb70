package token

import "testing"

func TestPositionString(t *testing.T) {
	p := Position{Path: "foo.sg", Row: 3, Column: 7}
	if got, want := p.String(), "foo.sg:3:7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestKindString(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{LParen, "("},
		{RParen, ")"},
		{Quote, "'"},
		{Number, "number"},
		{Kind(255), "invalid"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.k, got, c.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Symbol, Lexeme: "foo", Position: Position{Path: NoFile, Row: 1, Column: 1}}
	if got, want := tok.String(), `symbol("foo")@<repl>:1:1`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
