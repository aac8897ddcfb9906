/*
File    : go-pico/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/go-pico/objects"

// Shared singleton values.
// There is exactly one null and one of each boolean in a running
// interpreter; every evaluation that produces one of these hands out
// the shared instance, so identity comparisons on them are meaningful.
var (
	TRUE  = &objects.Boolean{Value: true}
	FALSE = &objects.Boolean{Value: false}
	NULL  = &objects.Null{}
)

// boolToObject maps a native bool onto the shared Boolean singletons.
func boolToObject(value bool) *objects.Boolean {
	if value {
		return TRUE
	}
	return FALSE
}

// IsError reports whether a value is a runtime Error.
// Used by every evaluation rule to short-circuit on the first failure.
func IsError(obj objects.PicoObject) bool {
	if obj == nil {
		return false
	}
	return obj.GetType() == objects.ErrorType
}

// UnwrapReturnValue strips one level of ReturnValue wrapping, if present.
// Call sites use it so that a function's return statement yields the
// returned value to the caller instead of the propagation wrapper.
func UnwrapReturnValue(obj objects.PicoObject) objects.PicoObject {
	if returnValue, ok := obj.(*objects.ReturnValue); ok {
		return returnValue.Value
	}
	return obj
}

// isTruthy decides how a value behaves as a condition.
// Null and false are falsy; everything else is truthy - including the
// integer 0 and the empty string.
func isTruthy(obj objects.PicoObject) bool {
	switch obj {
	case NULL:
		return false
	case FALSE:
		return false
	case TRUE:
		return true
	default:
		return true
	}
}

// objectEquals implements structural equality for the == and != operators
// on operand pairs that are not two integers and not two strings (those
// take the dedicated paths). Values of different types are never equal;
// booleans and null compare through their shared singletons, and
// functions compare by identity.
func objectEquals(left, right objects.PicoObject) bool {
	if left.GetType() != right.GetType() {
		return false
	}
	return left == right
}
