/*
File    : langcore/function/function.go
*/

// Package function defines the runtime representation of a langcore
// closure. It lives in its own package (rather than inside objects)
// because a Function must reference parser.Identifier/BlockStatement
// and scope.Scope, and objects must stay free of both so that neither
// of those packages needs to import the other.
package function

import (
	"bytes"
	"strings"

	"github.com/lenna-dev/langcore/objects"
	"github.com/lenna-dev/langcore/parser"
	"github.com/lenna-dev/langcore/scope"
)

// Function is a closure: the parameter list and body from a
// FunctionLiteral, plus a live pointer to the Scope active at the
// point the literal was evaluated. That pointer is never copied —
// sharing it is what lets the function observe bindings made to its
// defining scope after the function value was created, including the
// function's own name bound for recursion.
type Function struct {
	Parameters []*parser.Identifier
	Body       *parser.BlockStatement
	Env        *scope.Scope
}

func (f *Function) GetType() objects.ObjectType { return objects.FUNCTION_OBJ }

// ToString renders a Function the same way a FunctionLiteral AST node
// renders itself, minus a function name (functions in this language
// are anonymous values; `let` merely binds one to a name).
func (f *Function) ToString() string {
	var out bytes.Buffer

	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(f.Body.String())

	return out.String()
}
