package interp_test

import (
	"testing"

	"github.com/RobinBoers/signo/signotest"
)

func TestEvalBasics(t *testing.T) {
	signotest.RunTestSuite(t, signotest.TestSuite{
		{
			Name: "arithmetic",
			TestSequence: signotest.TestSequence{
				{Expr: "(+ 40 2)", Result: "42"},
				{Expr: "(- 5 2 1)", Result: "2"},
				{Expr: "(* 2 3 4)", Result: "24"},
				{Expr: "(/ 4 2)", Result: "2"},
				{Expr: "(/ 1 2)", Result: "0.5"},
				{Expr: "(^ 2 10)", Result: "1024.0"},
			},
		},
		{
			Name: "closure-over-rebinding",
			TestSequence: signotest.TestSequence{
				{Expr: "(let x 10)", Result: "10"},
				{Expr: "(def f (n) (+ n x))", Result: "<lambda f(n)>"},
				{Expr: "(let x 20)", Result: "20"},
				{Expr: "(f 1)", Result: "11"},
			},
		},
		{
			Name: "self-recursion",
			TestSequence: signotest.TestSequence{
				{Expr: "(def fact (n) (if (!= n 1) (* n (fact (- n 1))) 1))", Result: "<lambda fact(n)>"},
				{Expr: "(fact 4)", Result: "24"},
			},
		},
		{
			Name: "quote-eval-duality",
			TestSequence: signotest.TestSequence{
				{Expr: "(eval '(+ 1 2))", Result: "3"},
				{Expr: "(eval ''(+ 1 2))", Result: "(+ 1 2)"},
			},
		},
		{
			Name: "tie-and-push",
			TestSequence: signotest.TestSequence{
				{Expr: "(let xs '(1 2 3))", Result: "(1 2 3)"},
				{Expr: "(sum (push 4 xs))", Result: "10"},
			},
		},
		{
			Name: "do-scoping",
			TestSequence: signotest.TestSequence{
				{Expr: "(do (let y 5) y)", Result: "5"},
			},
		},
		{
			Name: "truthiness-boundaries",
			TestSequence: signotest.TestSequence{
				{Expr: "(if #false 1)", Result: "()"},
				{Expr: "(pop ())", Result: "(() ())"},
				{Expr: "(first ())", Result: "()"},
			},
		},
		{
			Name: "higher-order-builtins",
			TestSequence: signotest.TestSequence{
				{Expr: "(def double (n) (* n 2))", Result: "<lambda double(n)>"},
				{Expr: "(map double '(1 2 3))", Result: "(2 4 6)"},
				{Expr: "(filter (lambda (n) (> n 1)) '(1 2 3))", Result: "(2 3)"},
				{Expr: "(reduce + 0 '(1 2 3 4))", Result: "10"},
				{Expr: "(reverse '(1 2 3))", Result: "(3 2 1)"},
				{Expr: "(range 0 5)", Result: "(0 1 2 3 4)"},
				{Expr: "(zip '(1 2) '(3 4))", Result: "((1 3) (2 4))"},
			},
		},
	})
}

func TestEvalDoDiscardsChildScope(t *testing.T) {
	signotest.RunTestSuite(t, signotest.TestSuite{
		{
			Name: "do-does-not-leak-bindings",
			TestSequence: signotest.TestSequence{
				{Expr: "(let y 1)", Result: "1"},
				{Expr: "(do (let y 5) y)", Result: "5"},
				{Expr: "y", Result: "1"},
			},
		},
	})
}
