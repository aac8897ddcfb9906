/*
File    : go-pico/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator for the Pico
// language. The evaluator recurses over the AST produced by the parser
// and computes a runtime value for every node, against a chain of
// lexical scopes.
//
// The evaluator is total: language-level failures never become Go panics
// or Go errors. They are objects.Error values, and both errors and
// return statements propagate as ordinary values that the statement
// loops recognize and short-circuit on.
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-pico/function"
	"github.com/akashmaji946/go-pico/objects"
	"github.com/akashmaji946/go-pico/parser"
	"github.com/akashmaji946/go-pico/scope"
)

// Evaluator holds the state for evaluating Pico AST nodes.
// It serves as the main execution engine for the interpreter, tracking
// the scope that evaluation currently runs in. The REPL keeps one
// Evaluator alive across lines so bindings persist between inputs.
type Evaluator struct {
	Scp *scope.Scope // Current scope for variable bindings and lexical scoping
}

// NewEvaluator creates and initializes a new Evaluator instance with a
// fresh global scope.
//
// Returns:
//   - *Evaluator: A fully initialized evaluator ready to execute Pico code
//
// Example usage:
//
//	ev := NewEvaluator()
//	result := ev.Eval(rootNode)
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Scp: scope.NewScope(nil),
	}
}

// Eval evaluates any AST node against the evaluator's current scope and
// returns the resulting value. This is the single dispatch point of the
// interpreter: every recursive step goes back through it.
//
// Parameters:
//   - node: Any AST node (the root node, a statement, or an expression)
//
// Returns:
//   - objects.PicoObject: The computed value. Failures come back as
//     *objects.Error values, never as panics.
func (e *Evaluator) Eval(node parser.Node) objects.PicoObject {
	switch n := node.(type) {

	// Statements
	case *parser.RootNode:
		return e.evalRootNode(n)
	case *parser.LetStatementNode:
		return e.evalLetStatement(n)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)

	// Literals
	case *parser.IntegerLiteralExpressionNode:
		return &objects.Integer{Value: n.Value}
	case *parser.StringLiteralExpressionNode:
		return &objects.String{Value: n.Value}
	case *parser.BooleanLiteralExpressionNode:
		return boolToObject(n.Value)

	// Expressions
	case *parser.IdentifierExpressionNode:
		return e.evalIdentifierExpression(n)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.IfExpressionNode:
		return e.evalIfExpression(n)
	case *parser.FunctionLiteralExpressionNode:
		// The literal captures the scope it is evaluated in: the closure
		return &function.Function{
			Params: n.Params,
			Body:   n.Body,
			Scp:    e.Scp,
		}
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)

	default:
		return NULL
	}
}

// CallFunction executes a Pico function value with the provided,
// already-evaluated arguments.
//
// The call runs in a fresh scope whose parent is the function's captured
// scope (not the caller's scope - that is what makes scoping lexical
// rather than dynamic). Each parameter name is bound to the matching
// argument, the body is evaluated, and a top-level ReturnValue is
// unwrapped exactly one level before the result is handed back.
//
// Parameters:
//   - fn: The value being called (checked to actually be a function)
//   - args: The evaluated argument values, in order
//
// Returns:
//   - objects.PicoObject: The call's result, or an Error for a
//     non-function callee or an arity mismatch
func (e *Evaluator) CallFunction(fn objects.PicoObject, args []objects.PicoObject) objects.PicoObject {
	if fn.GetType() != objects.FunctionType {
		return e.CreateError("not a function: %s", fn.GetType())
	}
	functionObject := fn.(*function.Function)

	if len(args) != len(functionObject.Params) {
		return e.CreateError("wrong number of arguments. got=%d, want=%d", len(args), len(functionObject.Params))
	}

	callSiteScope := scope.NewScope(functionObject.Scp)
	for i, param := range functionObject.Params {
		callSiteScope.Bind(param.Name, args[i])
	}

	oldScope := e.Scp
	e.Scp = callSiteScope
	result := e.Eval(functionObject.Body)
	e.Scp = oldScope

	return UnwrapReturnValue(result)
}

// CreateError creates a new Error value with a formatted message.
// The format string and arguments follow fmt.Sprintf conventions.
//
// Parameters:
//   - format: A format string following fmt.Sprintf conventions
//   - a: Variable arguments to be formatted into the error message
//
// Returns:
//   - *objects.Error: An Error value carrying the formatted message
//
// Example usage:
//
//	return e.CreateError("identifier not found: %s", varName)
func (e *Evaluator) CreateError(format string, a ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, a...)}
}
