package interp_test

import (
	"io"
	"testing"

	"github.com/RobinBoers/signo"
	"github.com/RobinBoers/signo/interp"
	"github.com/RobinBoers/signo/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoBlockDoesNotLeakBindingsToOuterScope(t *testing.T) {
	_, env, err := signo.EvalSource("(do (let y 5) (print y))", interp.WithStdout(io.Discard))
	require.NoError(t, err)

	_, _, err = signo.EvaluateWith("(print y)", token.NoFile, env)
	require.Error(t, err)

	ierr, ok := err.(*interp.Error)
	require.True(t, ok, "expected *interp.Error, got %T", err)
	assert.Equal(t, interp.ReferenceErrorKind, ierr.Kind)
}

func TestReferenceErrorCarriesSymbolPosition(t *testing.T) {
	_, _, err := signo.EvalSource("\n  unbound-name")
	require.Error(t, err)
	ierr, ok := err.(*interp.Error)
	require.True(t, ok)
	assert.Equal(t, interp.ReferenceErrorKind, ierr.Kind)
	assert.Equal(t, 2, ierr.Position.Row)
	assert.Equal(t, 3, ierr.Position.Column)
}

func TestLambdaCapturesEnvironmentAtConstruction(t *testing.T) {
	_, env, err := signo.EvalSource("(let x 1)")
	require.NoError(t, err)

	_, env, err = signo.EvaluateWith("(def f (n) (+ n x))", token.NoFile, env)
	require.NoError(t, err)

	lambda, err := env.Lookup("f", token.Position{})
	require.NoError(t, err)
	capturedAt := lambda.LambdaEnv

	_, env, err = signo.EvaluateWith("(let x 99)", token.NoFile, env)
	require.NoError(t, err)

	v, err := capturedAt.Lookup("x", token.Position{})
	require.NoError(t, err)
	assert.Equal(t, interp.IntNumber(1), v.Number, "rebinding x in the outer scope must not alter the lambda's captured view")
}

func TestDivisionByZeroIsTypeError(t *testing.T) {
	_, _, err := signo.EvalSource("(/ 1 0)")
	require.Error(t, err)
	ierr, ok := err.(*interp.Error)
	require.True(t, ok)
	assert.Equal(t, interp.TypeErrorKind, ierr.Kind)
}

func TestEqualityIsSymmetricWithNotEqual(t *testing.T) {
	for _, pair := range [][2]string{{"1", "1.0"}, {"\"a\"", "\"a\""}, {"'(1 2)", "'(1 2)"}} {
		eq, _, err := signo.EvalSource("(== " + pair[0] + " " + pair[1] + ")")
		require.NoError(t, err)
		neq, _, err := signo.EvalSource("(!= " + pair[0] + " " + pair[1] + ")")
		require.NoError(t, err)
		assert.Equal(t, eq.IsTruthy(), !neq.IsTruthy())
	}
}
