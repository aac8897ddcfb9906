/*
File    : go-pico/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-pico/objects"
	"github.com/akashmaji946/go-pico/parser"
)

// evalIdentifierExpression resolves a name against the scope chain.
// Lookup walks from the current scope outward; a miss anywhere along
// the chain produces the canonical unbound-identifier error.
func (e *Evaluator) evalIdentifierExpression(n *parser.IdentifierExpressionNode) objects.PicoObject {
	if val, ok := e.Scp.LookUp(n.Name); ok {
		return val
	}
	return e.CreateError("identifier not found: %s", n.Name)
}

// evalUnaryExpression evaluates a prefix operation (! or -).
// The operand is evaluated first and its Error, if any, propagates.
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) objects.PicoObject {
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operation.Literal {
	case "!":
		return e.evalNotOperator(right)
	case "-":
		return e.evalMinusOperator(right)
	default:
		return e.CreateError("unknown operator: %s%s", n.Operation.Literal, right.GetType())
	}
}

// evalNotOperator inverts the truthiness of its operand.
// Null and false are falsy; every other value (including 0 and the empty
// string) is truthy, so ! maps it to false.
func (e *Evaluator) evalNotOperator(right objects.PicoObject) objects.PicoObject {
	return boolToObject(!isTruthy(right))
}

// evalMinusOperator negates an integer operand.
// Any other operand type is the canonical unknown-operator error.
func (e *Evaluator) evalMinusOperator(right objects.PicoObject) objects.PicoObject {
	if right.GetType() != objects.IntegerType {
		return e.CreateError("unknown operator: -%s", right.GetType())
	}
	value := right.(*objects.Integer).Value
	return &objects.Integer{Value: -value}
}

// evalBinaryExpression evaluates an infix operation.
// Operands evaluate left to right; the first Error wins and skips the
// rest. The operator is then applied according to the operand types.
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) objects.PicoObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}

	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	return e.evalBinaryOperation(n.Operation.Literal, left, right)
}

// evalBinaryOperation applies an infix operator to two evaluated operands.
//
// Dispatch order matters:
//  1. two integers get the full arithmetic/comparison set
//  2. two strings get concatenation and equality
//  3. == and != on anything else compare structurally and never error;
//     operands of different types are simply unequal
//  4. remaining mixed-type pairs are a type mismatch
//  5. remaining same-type pairs are an unsupported operator
func (e *Evaluator) evalBinaryOperation(operator string, left, right objects.PicoObject) objects.PicoObject {
	switch {
	case left.GetType() == objects.IntegerType && right.GetType() == objects.IntegerType:
		return e.evalIntegerBinaryOperation(operator, left, right)
	case left.GetType() == objects.StringType && right.GetType() == objects.StringType:
		return e.evalStringBinaryOperation(operator, left, right)
	case operator == "==":
		return boolToObject(objectEquals(left, right))
	case operator == "!=":
		return boolToObject(!objectEquals(left, right))
	case left.GetType() != right.GetType():
		return e.CreateError("type mismatch: %s %s %s", left.GetType(), operator, right.GetType())
	default:
		return e.CreateError("unknown operator: %s %s %s", left.GetType(), operator, right.GetType())
	}
}

// evalIntegerBinaryOperation applies an infix operator to two integers.
// Division truncates toward zero and arithmetic wraps on overflow
// (native 64-bit semantics); dividing by zero yields an Error value.
func (e *Evaluator) evalIntegerBinaryOperation(operator string, left, right objects.PicoObject) objects.PicoObject {
	leftValue := left.(*objects.Integer).Value
	rightValue := right.(*objects.Integer).Value

	switch operator {
	case "+":
		return &objects.Integer{Value: leftValue + rightValue}
	case "-":
		return &objects.Integer{Value: leftValue - rightValue}
	case "*":
		return &objects.Integer{Value: leftValue * rightValue}
	case "/":
		if rightValue == 0 {
			return e.CreateError("division by zero")
		}
		return &objects.Integer{Value: leftValue / rightValue}
	case "<":
		return boolToObject(leftValue < rightValue)
	case ">":
		return boolToObject(leftValue > rightValue)
	case "==":
		return boolToObject(leftValue == rightValue)
	case "!=":
		return boolToObject(leftValue != rightValue)
	default:
		return e.CreateError("unknown operator: %s %s %s", left.GetType(), operator, right.GetType())
	}
}

// evalStringBinaryOperation applies an infix operator to two strings.
// Concatenation and equality are the only defined operations; everything
// else is the canonical unknown-operator error.
func (e *Evaluator) evalStringBinaryOperation(operator string, left, right objects.PicoObject) objects.PicoObject {
	leftValue := left.(*objects.String).Value
	rightValue := right.(*objects.String).Value

	switch operator {
	case "+":
		return &objects.String{Value: leftValue + rightValue}
	case "==":
		return boolToObject(leftValue == rightValue)
	case "!=":
		return boolToObject(leftValue != rightValue)
	default:
		return e.CreateError("unknown operator: %s %s %s", left.GetType(), operator, right.GetType())
	}
}

// evalIfExpression evaluates a conditional.
// A truthy condition selects the consequence; otherwise the alternative
// runs if present, and a missing alternative produces null.
func (e *Evaluator) evalIfExpression(n *parser.IfExpressionNode) objects.PicoObject {
	condition := e.Eval(n.Condition)
	if IsError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(n.Consequence)
	} else if n.Alternative != nil {
		return e.Eval(n.Alternative)
	}
	return NULL
}

// evalCallExpression evaluates a function call.
// The callee evaluates first, then the arguments left to right; the
// first Error anywhere aborts the call with that single Error. The
// actual invocation is delegated to CallFunction.
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) objects.PicoObject {
	callee := e.Eval(n.Callee)
	if IsError(callee) {
		return callee
	}

	args := e.evalExpressions(n.Arguments)
	if len(args) == 1 && IsError(args[0]) {
		return args[0]
	}

	return e.CallFunction(callee, args)
}

// evalExpressions evaluates a list of expressions in source order.
// On the first Error the result collapses to a one-element slice holding
// just that Error, which the caller checks for.
func (e *Evaluator) evalExpressions(exprs []parser.ExpressionNode) []objects.PicoObject {
	results := make([]objects.PicoObject, 0, len(exprs))

	for _, expr := range exprs {
		result := e.Eval(expr)
		if IsError(result) {
			return []objects.PicoObject{result}
		}
		results = append(results, result)
	}

	return results
}
