/*
File    : go-pico/function/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"testing"

	"github.com/akashmaji946/go-pico/lexer"
	"github.com/akashmaji946/go-pico/objects"
	"github.com/akashmaji946/go-pico/parser"
	"github.com/akashmaji946/go-pico/scope"
	"github.com/stretchr/testify/assert"
)

// parseFunctionLiteral parses the input and extracts its single
// function literal node
func parseFunctionLiteral(t *testing.T, input string) *parser.FunctionLiteralExpressionNode {
	t.Helper()
	par := parser.NewParser(lexer.NewLexer(input))
	root := par.Parse()
	assert.False(t, par.HasErrors(), "parser errors: %v", par.GetErrors())
	assert.Equal(t, 1, len(root.Statements))

	literal, ok := root.Statements[0].(*parser.FunctionLiteralExpressionNode)
	assert.True(t, ok, "expected function literal, got %T", root.Statements[0])
	return literal
}

// TestFunction_Inspect verifies the inspect form of a function value
func TestFunction_Inspect(t *testing.T) {
	literal := parseFunctionLiteral(t, "fn(x, y) { x + y; }")

	fn := &Function{
		Params: literal.Params,
		Body:   literal.Body,
		Scp:    scope.NewScope(nil),
	}

	assert.Equal(t, objects.FunctionType, fn.GetType())
	assert.Equal(t, "fn(x, y) {\n(x + y)\n}", fn.ToString())
	assert.Equal(t, "<FUNCTION(x, y)>", fn.ToObject())
}

// TestFunction_InspectNoParams verifies the inspect form with an empty
// parameter list
func TestFunction_InspectNoParams(t *testing.T) {
	literal := parseFunctionLiteral(t, "fn() { 1; }")

	fn := &Function{
		Params: literal.Params,
		Body:   literal.Body,
		Scp:    scope.NewScope(nil),
	}

	assert.Equal(t, "fn() {\n1\n}", fn.ToString())
}

// TestFunction_CapturedScope verifies that the function holds its
// defining scope by reference, not a copy
func TestFunction_CapturedScope(t *testing.T) {
	literal := parseFunctionLiteral(t, "fn() { x; }")

	defining := scope.NewScope(nil)
	fn := &Function{Params: literal.Params, Body: literal.Body, Scp: defining}

	// a binding made after capture is visible through the function's scope
	defining.Bind("x", &objects.Integer{Value: 3})
	obj, ok := fn.Scp.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, int64(3), obj.(*objects.Integer).Value)
}
