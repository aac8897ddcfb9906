/*
File    : go-pico/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function defines the Pico function value. It lives in its own
// package because the value needs the AST (for its body) and the scope
// chain (for its closure), while the objects package must stay free of
// both to avoid an import cycle.
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-pico/objects"
	"github.com/akashmaji946/go-pico/parser"
	"github.com/akashmaji946/go-pico/scope"
)

// Function represents a user-defined function value in Pico.
// It captures the function's parameters, body, and the scope in which the
// literal was evaluated. Holding that scope by reference is what makes
// closures work: the function can read bindings from its defining scope
// long after the enclosing call has finished, and two closures created in
// the same scope observe each other's rebinds.
//
// Functions compare by identity; there is no structural equality on them.
type Function struct {
	Params []*parser.IdentifierExpressionNode // Function parameter names
	Body   *parser.BlockStatementNode         // Function body (statements to execute)
	Scp    *scope.Scope                       // Captured scope for closures
}

// GetType returns the type identifier for this Function object.
// This implements the objects.PicoObject interface.
func (f *Function) GetType() objects.PicoType {
	return objects.FunctionType
}

// ToString returns the inspect form of the function:
//
//	fn(<params joined by ", ">) {
//	<body canonical form>
//	}
//
// Example:
//
//	For fn(x, y) { x + y; } this returns: "fn(x, y) {\n(x + y)\n}"
func (f *Function) ToString() string {
	params := make([]string, 0, len(f.Params))
	for _, param := range f.Params {
		params = append(params, param.Name)
	}

	var out strings.Builder
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.InnerToString())
	out.WriteString("\n}")
	return out.String()
}

// ToObject returns a detailed representation including the type tag and
// parameter names, e.g. "<FUNCTION(x, y)>". Used for debugging.
func (f *Function) ToObject() string {
	params := make([]string, 0, len(f.Params))
	for _, param := range f.Params {
		params = append(params, param.Name)
	}
	return fmt.Sprintf("<%s(%s)>", objects.FunctionType, strings.Join(params, ", "))
}
