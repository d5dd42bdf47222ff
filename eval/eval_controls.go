/*
File    : langcore/eval/eval_controls.go
*/
package eval

import (
	"github.com/lenna-dev/langcore/function"
	"github.com/lenna-dev/langcore/objects"
	"github.com/lenna-dev/langcore/parser"
	"github.com/lenna-dev/langcore/scope"
)

// evalCallExpression evaluates the callee and arguments, then applies
// the resulting function in a fresh scope enclosed by the function's
// captured environment — lexical, not dynamic, scoping.
func (e *Evaluator) evalCallExpression(node *parser.CallExpression, env *scope.Scope) objects.Object {
	callee := e.Eval(node.Function, env)
	if objects.IsError(callee) {
		return callee
	}

	args := e.evalExpressions(node.Arguments, env)
	if len(args) == 1 && objects.IsError(args[0]) {
		return args[0]
	}

	return e.applyFunction(callee, args)
}

// evalExpressions evaluates a list of expressions left-to-right,
// stopping and returning a single-element slice holding the error as
// soon as one fails.
func (e *Evaluator) evalExpressions(exps []parser.Expression, env *scope.Scope) []objects.Object {
	var result []objects.Object

	for _, exp := range exps {
		evaluated := e.Eval(exp, env)
		if objects.IsError(evaluated) {
			return []objects.Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

// applyFunction invokes fn with args: binds each argument to its
// parameter in a new scope enclosed by the closure's captured
// environment, evaluates the body, and unwraps exactly one level of
// ReturnValue so a `return` inside the callee exits only that call.
func (e *Evaluator) applyFunction(fn objects.Object, args []objects.Object) objects.Object {
	function, ok := fn.(*function.Function)
	if !ok {
		return objects.NewError("not a function: %s", fn.GetType())
	}

	if len(args) != len(function.Parameters) {
		return objects.NewError("wrong number of arguments: want=%d, got=%d",
			len(function.Parameters), len(args))
	}

	e.callDepth++
	if e.callDepth > maxCallDepth {
		e.callDepth--
		return objects.NewError("stack overflow")
	}

	extendedEnv := scope.NewScope(function.Env)
	for i, param := range function.Parameters {
		extendedEnv.Bind(param.Value, args[i])
	}

	evaluated := e.Eval(function.Body, extendedEnv)
	e.callDepth--

	return unwrapReturnValue(evaluated)
}

func unwrapReturnValue(obj objects.Object) objects.Object {
	if returnValue, ok := obj.(*objects.ReturnValue); ok {
		return returnValue.Value
	}
	return obj
}
