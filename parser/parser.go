// Package parser implements Signo's recursive-descent parser, producing
// []*interp.Expression from a lexer.Lexer's token stream.
package parser

import (
	"io"

	"github.com/RobinBoers/signo/interp"
	"github.com/RobinBoers/signo/lexer"
	"github.com/RobinBoers/signo/token"
)

// Parser reads a Signo source program one token of lookahead ahead of
// the current token.
type Parser struct {
	lex  *lexer.Lexer
	curr token.Token
	peek token.Token
}

// New returns a Parser reading tokens from lex.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.readToken() // prime peek
	p.readToken() // prime curr, peek
	return p
}

func (p *Parser) readToken() token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

// ParseProgram parses a whole source: a sequence of top-level
// Expressions terminated by end-of-input.
func (p *Parser) ParseProgram() ([]*interp.Expression, error) {
	var exprs []*interp.Expression
	for p.curr.Kind != token.EOF {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		p.readToken()
	}
	return exprs, nil
}

func (p *Parser) parseExpression() (*interp.Expression, error) {
	switch p.curr.Kind {
	case token.Number:
		return p.parseNumber()
	case token.Atom:
		return interp.NewAtom(p.curr.Lexeme), nil
	case token.String:
		return interp.NewString(p.curr.Lexeme), nil
	case token.Symbol:
		return interp.NewSymbol(p.curr.Lexeme, p.curr.Position), nil
	case token.Quote:
		return p.parseQuote()
	case token.LParen:
		return p.parseList()
	case token.Error:
		return nil, interp.LexErrorf(p.curr.Position, "%s", p.curr.Lexeme)
	case token.EOF:
		return nil, interp.ParseErrorf(p.curr.Position, "unexpected end of input")
	default:
		return nil, interp.ParseErrorf(p.curr.Position, "unexpected %s", p.curr)
	}
}

func (p *Parser) parseNumber() (*interp.Expression, error) {
	n, err := parseNumberLexeme(p.curr.Lexeme, p.curr.Position)
	if err != nil {
		return nil, err
	}
	return interp.NewNumber(n), nil
}

// parseQuote handles the quote prefix: if the quoted expression is
// already a self-evaluating Value, the Value itself is produced
// (quoting a Number, for instance, is a no-op); otherwise it is
// wrapped in Quoted.
func (p *Parser) parseQuote() (*interp.Expression, error) {
	p.readToken()
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if selfEvaluating(inner) {
		return inner, nil
	}
	return interp.NewQuoted(inner), nil
}

func selfEvaluating(e *interp.Expression) bool {
	switch e.Kind {
	case interp.NilKind, interp.NumberKind, interp.AtomKind, interp.StringKind:
		return true
	default:
		return false
	}
}

// parseList parses a parenthesized list: an empty list parses to Nil,
// a non-empty one to List with the opening paren's position.
func (p *Parser) parseList() (*interp.Expression, error) {
	open := p.curr.Position
	p.readToken()

	var elems []*interp.Expression
	for {
		if p.curr.Kind == token.EOF {
			return nil, interp.ParseErrorf(open, "unclosed list")
		}
		if p.curr.Kind == token.RParen {
			break
		}
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		p.readToken()
	}
	if len(elems) == 0 {
		return interp.Nil(), nil
	}
	return interp.NewList(elems, open), nil
}

// reader implements interp.Reader, letting interp's include special
// form parse included files without interp importing this package
// (which already imports interp).
type reader struct{}

// NewReader returns an interp.Reader backed by this package's Parser.
func NewReader() interp.Reader {
	return &reader{}
}

func (*reader) Read(name string, r io.Reader) ([]*interp.Expression, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseSource(name, string(src))
}

// ParseSource lexes and parses source, attributing positions to name.
func ParseSource(name string, source string) ([]*interp.Expression, error) {
	lex := lexer.New(token.Position{Path: name, Row: 1, Column: 1}, source)
	return New(lex).ParseProgram()
}
