// Package signotest provides a small table-driven harness for testing
// Signo source against expected debug-printed results.
package signotest

import (
	"testing"

	"github.com/RobinBoers/signo"
	"github.com/RobinBoers/signo/interp"
	"github.com/RobinBoers/signo/token"
)

// TestSequence is a sequence of Signo expressions evaluated in order on
// a single Environment, each checked against its expected debug-form
// result.
type TestSequence []struct {
	Expr   string // a Signo expression
	Result string // its expected debug-printed result
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on its own fresh
// Environment, threading the environment across the steps of a single
// sequence the way a REPL session does.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for _, test := range tests {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			env := signo.NewEnvironment()
			for j, step := range test.TestSequence {
				exprs, err := signo.Parse(step.Expr, token.NoFile)
				if err != nil {
					t.Errorf("expr %d %q: parse error: %v", j, step.Expr, err)
					continue
				}
				var result *interp.Expression
				result, env, err = interp.Load(exprs, env)
				if err != nil {
					t.Errorf("expr %d %q: eval error: %v", j, step.Expr, err)
					continue
				}
				if got := result.String(); got != step.Result {
					t.Errorf("expr %d %q: expected result %s (got %s)", j, step.Expr, step.Result, got)
				}
			}
		})
	}
}
