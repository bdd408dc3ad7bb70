// Package signo is the thin facade the CLI and REPL consume so neither
// has to wire lexer, parser, and interp together itself.
package signo

import (
	"os"

	"github.com/RobinBoers/signo/interp"
	"github.com/RobinBoers/signo/lexer"
	"github.com/RobinBoers/signo/parser"
	"github.com/RobinBoers/signo/token"
)

// Lex tokenizes source, attributing positions to origin (a path, or a
// REPL line index rendered as a string).
func Lex(source, origin string) []token.Token {
	lex := lexer.New(token.Position{Path: origin, Row: 1, Column: 1}, source)
	var tokens []token.Token
	for {
		t := lex.NextToken()
		tokens = append(tokens, t)
		if t.Kind == token.EOF {
			return tokens
		}
	}
}

// Parse parses source into Expressions, attributing positions to origin.
func Parse(source, origin string) ([]*interp.Expression, error) {
	return parser.ParseSource(origin, source)
}

// defaultConfig wires the default parser.Reader into every Environment
// this package builds, so include works without callers supplying a
// Config of their own.
func defaultConfig(opts []interp.Config) []interp.Config {
	return append([]interp.Config{interp.WithReader(parser.NewReader())}, opts...)
}

// Evaluate parses and evaluates source in a fresh Environment containing
// the kernel bindings.
func Evaluate(source, origin string, opts ...interp.Config) (*interp.Expression, *interp.Environment, error) {
	exprs, err := Parse(source, origin)
	if err != nil {
		return nil, nil, err
	}
	env := interp.NewRoot(defaultConfig(opts)...)
	return interp.Load(exprs, env)
}

// EvaluateWith parses and evaluates source in env, threading env across
// calls the way a REPL continues a session.
func EvaluateWith(source, origin string, env *interp.Environment) (*interp.Expression, *interp.Environment, error) {
	exprs, err := Parse(source, origin)
	if err != nil {
		return nil, env, err
	}
	return interp.Load(exprs, env)
}

// EvalFile reads path, evaluates it in a fresh Environment, and resolves
// include relative to the file's own directory by default.
func EvalFile(path string, opts ...interp.Config) (*interp.Expression, *interp.Environment, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, interp.RuntimeErrorf(token.Position{Path: path}, "%v", err)
	}
	return Evaluate(string(src), path, opts...)
}

// EvalSource evaluates source with the REPL sentinel origin, for
// callers with no backing file.
func EvalSource(source string, opts ...interp.Config) (*interp.Expression, *interp.Environment, error) {
	return Evaluate(source, token.NoFile, opts...)
}

// NewEnvironment returns a fresh root Environment wired with the
// default Reader, for callers (e.g. the REPL) that want to manage
// evaluation themselves via EvaluateWith across iterations.
func NewEnvironment(opts ...interp.Config) *interp.Environment {
	return interp.NewRoot(defaultConfig(opts)...)
}
