/*
File    : go-pico/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-pico/objects"
	"github.com/akashmaji946/go-pico/parser"
)

// evalRootNode evaluates the program's top-level statement sequence.
//
// The loop follows the same short-circuit rule as blocks, but with one
// difference: at the very top a ReturnValue is unwrapped before being
// handed to the caller, so the REPL sees the inner value rather than the
// propagation wrapper.
//
// Parameters:
//   - n: The program's root node
//
// Returns:
//   - objects.PicoObject: The value of the last statement, the unwrapped
//     value of the first return statement, or the first Error produced
func (e *Evaluator) evalRootNode(n *parser.RootNode) objects.PicoObject {
	var result objects.PicoObject = NULL
	for _, stmt := range n.Statements {
		result = e.Eval(stmt)

		if returnValue, isReturn := result.(*objects.ReturnValue); isReturn {
			return returnValue.Value
		}
		if IsError(result) {
			return result
		}
	}
	return result
}

// evalBlockStatement evaluates a sequence of statements within a block.
//
// A ReturnValue encountered here is returned as-is, WITHOUT unwrapping:
// that is what lets a return inside a nested block travel through every
// enclosing block and still exit the whole function. Errors likewise
// stop the block immediately.
//
// Note: blocks do not open a new scope - scope creation belongs to the
// constructs that use blocks (function calls).
//
// Parameters:
//   - n: A BlockStatementNode containing a list of statements to evaluate
//
// Returns:
//   - objects.PicoObject: The result of the last statement, a still-wrapped
//     ReturnValue, or the first Error produced
//
// Example:
//
//	if (10 > 1) {
//	    if (10 > 1) {
//	        return 10;   // wrapped value passes through both blocks
//	    }
//	    return 1;        // never reached
//	}
func (e *Evaluator) evalBlockStatement(n *parser.BlockStatementNode) objects.PicoObject {
	var result objects.PicoObject = NULL
	for _, stmt := range n.Statements {
		result = e.Eval(stmt)

		// Stop evaluation if we hit a return statement or an error;
		// the wrapper keeps propagating so outer sequences can see it
		if result.GetType() == objects.ReturnType || result.GetType() == objects.ErrorType {
			return result
		}
	}
	return result
}

// evalLetStatement handles a variable binding.
//
// The bound expression is evaluated first; an Error result propagates
// instead of binding. Otherwise the name is bound in the CURRENT scope
// (creating or rebinding, both through the same operation) and the bound
// value is the statement's result.
//
// Parameters:
//   - n: A LetStatementNode with the identifier and the bound expression
//
// Returns:
//   - objects.PicoObject: The bound value, or the Error the expression produced
func (e *Evaluator) evalLetStatement(n *parser.LetStatementNode) objects.PicoObject {
	val := e.Eval(n.Expr)
	if IsError(val) {
		return val
	}

	e.Scp.Bind(n.Identifier.Name, val)
	return val
}

// evalReturnStatement evaluates a return statement's payload and wraps it.
//
// The wrapper is what the statement loops key on: it rides up through
// enclosing blocks untouched and is unwrapped only at a function call
// boundary or at the program top level.
//
// Parameters:
//   - n: A ReturnStatementNode with the returned expression
//
// Returns:
//   - objects.PicoObject: A ReturnValue wrapping the payload, or the
//     Error the payload produced
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode) objects.PicoObject {
	val := e.Eval(n.Expr)
	if IsError(val) {
		return val
	}
	return &objects.ReturnValue{Value: val}
}
