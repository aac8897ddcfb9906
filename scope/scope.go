/*
File    : go-pico/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/go-pico/objects"

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping and
// closures. Each scope maintains its own variable bindings and can access
// variables from parent scopes. This structure supports:
// - Variable shadowing: inner scopes can rebind names from outer scopes
// - Closures: functions capture their defining scope and can access outer variables
// - Call scoping: each function call gets its own scope
//
// The scope chain is traversed upward (from child to parent) during variable
// lookup, implementing standard lexical scoping rules. Scopes are shared by
// reference: a function value holds the scope it was created in, so a scope
// may outlive the call that created it, and a scope graph may contain cycles
// when a function is bound into the very scope it captured. Reclamation is
// left to the Go garbage collector.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.PicoObject

	// Parent points to the enclosing scope, forming a scope chain
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent scope.
//
// The parent parameter determines the scope's position in the hierarchy:
// - parent == nil: Creates a global (root) scope with no parent
// - parent != nil: Creates a nested scope that can access parent variables
//
// Each new scope starts with empty variable bindings but inherits access to
// all variables in parent scopes through the lookup chain.
//
// Parameters:
//   - parent: The enclosing scope, or nil for a global scope
//
// Returns:
//   - *Scope: A fully initialized scope ready for variable bindings
//
// Example usage:
//
//	globalScope := NewScope(nil)           // Create global scope
//	callScope := NewScope(globalScope)     // Create function call scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.PicoObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent scopes.
//
// This method implements the core variable resolution algorithm for lexical scoping:
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches the parent
// 3. Continues up the scope chain until the variable is found or the root is reached
//
// This traversal order ensures that:
// - Variables in inner scopes shadow those in outer scopes
// - All variables in the scope chain are accessible
//
// The method is safe to call even if Variables map is nil (lazy initialization).
//
// Parameters:
//   - varName: The name of the variable to look up
//
// Returns:
//   - objects.PicoObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent, false otherwise
//
// Example:
//
//	let x = 10;            // Bound in global scope
//	let f = fn(y) {
//	    x + y;             // LookUp finds y (current) and x (parent)
//	};
func (s *Scope) LookUp(varName string) (objects.PicoObject, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.PicoObject)
	}
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates or updates a variable binding in the current scope.
//
// This method writes the current scope only, without affecting parent
// scopes. There is no separate create-vs-assign distinction: a let
// binding and any later rebind of the same name both land here, and
// shadowing a name from a parent scope is always permitted.
//
// The method is safe to call even if Variables map is nil (lazy initialization).
//
// Parameters:
//   - varName: The name of the variable to bind
//   - obj: The value to bind to the variable
//
// Returns:
//   - string: The variable name (echoed back)
//   - bool: true if the variable already existed in the current scope, false if new
//
// Example:
//
//	scope.Bind("x", &objects.Integer{Value: 10})  // New binding, returns ("x", false)
//	scope.Bind("x", &objects.Integer{Value: 20})  // Rebind, returns ("x", true)
func (s *Scope) Bind(varName string, obj objects.PicoObject) (string, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.PicoObject)
	}
	_, has := s.Variables[varName]
	s.Variables[varName] = obj
	return varName, has
}
