/*
File    : langcore/eval/evaluator.go
*/

// Package eval walks the AST produced by package parser and reduces it
// to an objects.Object, threading a scope.Scope for variable lookup and
// treating ReturnValue/Error as short-circuiting control effects rather
// than host exceptions.
package eval

import (
	"github.com/lenna-dev/langcore/function"
	"github.com/lenna-dev/langcore/objects"
	"github.com/lenna-dev/langcore/parser"
	"github.com/lenna-dev/langcore/scope"
)

// maxCallDepth bounds recursive function calls so a runaway program
// returns a first-class Error instead of exhausting the host stack.
const maxCallDepth = 10000

// Evaluator holds the state threaded through one evaluation session: the
// current call depth, used only to turn unbounded recursion into a
// recoverable Error rather than a Go stack overflow.
type Evaluator struct {
	callDepth int
}

// NewEvaluator creates an Evaluator ready to evaluate one or more
// programs against caller-supplied scopes.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Eval evaluates a single program against env and returns its result.
// This is the package-level convenience matching the core's external
// contract: a fresh Evaluator, a ReturnValue unwrapped at the top level.
func Eval(program *parser.Program, env *scope.Scope) objects.Object {
	return NewEvaluator().Eval(program, env)
}

// Eval dispatches on the dynamic type of node. It is the single
// recursive entry point; the evalX helpers in this package recurse
// into sub-nodes only by calling back into it.
func (e *Evaluator) Eval(node parser.Node, env *scope.Scope) objects.Object {
	switch node := node.(type) {

	case *parser.Program:
		return e.evalProgram(node, env)

	case *parser.ExpressionStatement:
		return e.Eval(node.Expression, env)

	case *parser.BlockStatement:
		return e.evalBlockStatement(node, env)

	case *parser.LetStatement:
		val := e.Eval(node.Value, env)
		if objects.IsError(val) {
			return val
		}
		env.Bind(node.Name.Value, val)
		return nil

	case *parser.ReturnStatement:
		val := e.Eval(node.ReturnValue, env)
		if objects.IsError(val) {
			return val
		}
		return &objects.ReturnValue{Value: val}

	case *parser.IntegerLiteral:
		return &objects.Integer{Value: node.Value}

	case *parser.Boolean:
		return objects.NativeBoolToBooleanObject(node.Value)

	case *parser.NullLiteral:
		return objects.NULL

	case *parser.Identifier:
		return e.evalIdentifier(node, env)

	case *parser.PrefixExpression:
		right := e.Eval(node.Right, env)
		if objects.IsError(right) {
			return right
		}
		return e.evalPrefixExpression(node.Operator, right)

	case *parser.InfixExpression:
		left := e.Eval(node.Left, env)
		if objects.IsError(left) {
			return left
		}
		right := e.Eval(node.Right, env)
		if objects.IsError(right) {
			return right
		}
		return e.evalInfixExpression(node.Operator, left, right)

	case *parser.IfExpression:
		return e.evalIfExpression(node, env)

	case *parser.FunctionLiteral:
		return &function.Function{
			Parameters: node.Parameters,
			Body:       node.Body,
			Env:        env,
		}

	case *parser.CallExpression:
		return e.evalCallExpression(node, env)
	}

	return objects.NewError("unknown node: %T", node)
}

// evalProgram evaluates each statement, keeping the last result. A
// ReturnValue is unwrapped immediately, since there is no further
// function boundary at the top level to hand it to. An Error stops
// evaluation outright.
func (e *Evaluator) evalProgram(program *parser.Program, env *scope.Scope) objects.Object {
	var result objects.Object = objects.NULL

	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)

		switch result := result.(type) {
		case *objects.ReturnValue:
			return result.Value
		case *objects.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement evaluates like evalProgram except a ReturnValue is
// left wrapped, so an enclosing call frame (or, transitively, an
// enclosing block) can see that a return happened and keep propagating
// it rather than treating it as an ordinary value.
func (e *Evaluator) evalBlockStatement(block *parser.BlockStatement, env *scope.Scope) objects.Object {
	var result objects.Object = objects.NULL

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)

		if result != nil {
			rt := result.GetType()
			if rt == objects.RETURN_VALUE_OBJ || rt == objects.ERROR_OBJ {
				return result
			}
		}
	}

	return result
}

func (e *Evaluator) evalIdentifier(node *parser.Identifier, env *scope.Scope) objects.Object {
	if val, ok := env.LookUp(node.Value); ok {
		return val
	}
	return objects.NewError("identifier not found: %s", node.Value)
}
