/*
File    : lox-v1/scope/scope.go
Author  : aQaTL
*/
package scope

import "github.com/aQaTL/lox-v1/objects"

// Scope defines a lexical scope boundary for variable lifetime and
// accessibility.
//
// Scope implements a hierarchical environment chain that enables lexical
// scoping and closures. Each scope maintains its own variable bindings and
// can access variables from parent scopes. This structure supports:
// - Variable shadowing: inner scopes can redefine variables from outer scopes
// - Closures: functions capture their defining scope and keep it alive
// - Block scoping: each block, function call, and method binding gets its own scope
//
// Two access styles exist and the split matters:
//   - Get/Assign walk the chain outward by name. Only the global scope is
//     accessed this way, because globals are late-bound.
//   - GetAt/AssignAt jump to an exact ancestor using the depth the resolver
//     computed. All local access goes through these, so a local reference
//     can never accidentally land on a different binding than the resolver
//     saw.
//
// Scopes form a garbage-collected graph rather than a strict tree: a
// closure may keep a block's scope alive long after the block exits, and a
// class's method scopes can reference the class itself. Go's tracing GC
// tolerates the cycles.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.LoxObject

	// Parent points to the enclosing scope, forming a scope chain
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent
// scope.
//
// Parameters:
//   - parent: The enclosing scope, or nil for the global scope
//
// Returns:
//   - *Scope: A fully initialized scope ready for variable bindings
//
// Example usage:
//
//	globalScope := NewScope(nil)           // Create global scope
//	callScope := NewScope(closureScope)    // Create function-call scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.LoxObject),
		Parent:    parent,
	}
}

// Define creates or overwrites a binding in this scope only. Parent scopes
// are never touched, so defining a name that exists further out shadows it.
func (s *Scope) Define(name string, obj objects.LoxObject) {
	s.Variables[name] = obj
}

// Get searches for a variable by name in this scope and all parent scopes.
//
// The traversal order ensures that variables in inner scopes shadow those
// in outer scopes. Used only for global lookups: the evaluator calls it on
// the global scope when the resolver left a reference unresolved.
//
// Parameters:
//   - name: The name of the variable to look up
//
// Returns:
//   - objects.LoxObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent
func (s *Scope) Get(name string) (objects.LoxObject, bool) {
	obj, ok := s.Variables[name]
	if !ok && s.Parent != nil {
		return s.Parent.Get(name)
	}
	return obj, ok
}

// Assign updates an existing binding, searching this scope and then the
// parents. Unlike Define it never creates a binding.
//
// Parameters:
//   - name: The name of the variable to assign
//   - obj: The new value
//
// Returns:
//   - bool: true if an existing binding was found and updated
func (s *Scope) Assign(name string, obj objects.LoxObject) bool {
	if _, ok := s.Variables[name]; ok {
		s.Variables[name] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, obj)
	}
	return false
}

// Ancestor walks exactly depth parents up the chain and returns that scope.
// Depth 0 is the receiver itself. The resolver guarantees the depth is
// valid for every reference it resolves, so the walk cannot run off the
// chain for resolved programs.
func (s *Scope) Ancestor(depth int) *Scope {
	scope := s
	for i := 0; i < depth; i++ {
		scope = scope.Parent
	}
	return scope
}

// GetAt reads a variable from the scope exactly depth frames up the chain.
// Used for every resolved local reference.
func (s *Scope) GetAt(depth int, name string) (objects.LoxObject, bool) {
	obj, ok := s.Ancestor(depth).Variables[name]
	return obj, ok
}

// AssignAt writes a variable in the scope exactly depth frames up the
// chain. Used for every resolved local assignment.
func (s *Scope) AssignAt(depth int, name string, obj objects.LoxObject) {
	s.Ancestor(depth).Variables[name] = obj
}
