/*
File    : langcore/eval/eval_conditionals.go
*/
package eval

import (
	"github.com/lenna-dev/langcore/objects"
	"github.com/lenna-dev/langcore/parser"
	"github.com/lenna-dev/langcore/scope"
)

// evalIfExpression evaluates the condition, then the consequence block
// if it is truthy, else the alternative block if present, else yields
// NULL. No new scope is introduced: an if-expression shares its
// enclosing scope, it does not open its own.
func (e *Evaluator) evalIfExpression(ie *parser.IfExpression, env *scope.Scope) objects.Object {
	condition := e.Eval(ie.Condition, env)
	if objects.IsError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return e.Eval(ie.Alternative, env)
	}
	return objects.NULL
}

// isTruthy implements the language's truthiness rule: NULL and FALSE
// are falsy, everything else (including TRUE, every integer, and every
// function value) is truthy.
func isTruthy(obj objects.Object) bool {
	switch obj {
	case objects.NULL:
		return false
	case objects.FALSE:
		return false
	default:
		return true
	}
}
