/*
File    : langcore/scope/scope.go
*/

// Package scope implements the environment chain that backs lexical
// scoping and closures: a tree of variable bindings rooted at the
// global scope, extended on each function call and walked outward on
// lookup. Blocks (if/else branches) do not open a scope of their own.
package scope

import "github.com/lenna-dev/langcore/objects"

// Scope is one link in the environment chain. A function literal
// captures the *Scope active at its definition site and keeps a live
// pointer to it for its entire lifetime: nothing here is ever copied,
// which is what lets a closure see later mutations of its outer scope
// and what lets a function bind its own name in its defining scope for
// recursion.
type Scope struct {
	// Variables maps names bound directly in this scope.
	Variables map[string]objects.Object

	// Parent is the enclosing scope, or nil for the global scope.
	Parent *Scope
}

// NewScope creates a scope enclosed by parent. Pass nil to create the
// global scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.Object),
		Parent:    parent,
	}
}

// LookUp resolves varName by checking this scope, then walking Parent
// outward until the name is found or the chain is exhausted.
func (s *Scope) LookUp(varName string) (objects.Object, bool) {
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		return s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates or overwrites a binding in this scope only; it never
// touches Parent. This is how `let` introduces a name and how a
// function call binds its parameters in the new call scope.
func (s *Scope) Bind(varName string, obj objects.Object) objects.Object {
	s.Variables[varName] = obj
	return obj
}
