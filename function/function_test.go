/*
File    : langcore/function/function_test.go
*/
package function

import (
	"testing"

	"github.com/lenna-dev/langcore/objects"
	"github.com/lenna-dev/langcore/parser"
	"github.com/lenna-dev/langcore/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionToString(t *testing.T) {
	program, errs := parser.Parse("fn(x, y) { x + y; }")
	require.Empty(t, errs)

	lit := program.Statements[0].(*parser.ExpressionStatement).Expression.(*parser.FunctionLiteral)
	fn := &Function{Parameters: lit.Parameters, Body: lit.Body, Env: scope.NewScope(nil)}

	assert.Equal(t, objects.FUNCTION_OBJ, fn.GetType())
	assert.Contains(t, fn.ToString(), "fn(x, y)")
	assert.Contains(t, fn.ToString(), "(x + y)")
}

func TestFunctionSharesCapturedScope(t *testing.T) {
	env := scope.NewScope(nil)
	env.Bind("x", &objects.Integer{Value: 1})

	fn := &Function{Env: env}

	env.Bind("x", &objects.Integer{Value: 2})
	val, ok := fn.Env.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, int64(2), val.(*objects.Integer).Value)
}
