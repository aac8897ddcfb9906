/*
File    : go-pico/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/akashmaji946/go-pico/function"
	"github.com/akashmaji946/go-pico/lexer"
	"github.com/akashmaji946/go-pico/objects"
	"github.com/akashmaji946/go-pico/parser"
)

// testEval runs the full pipeline over the input against a fresh scope
func testEval(input string) objects.PicoObject {
	par := parser.NewParser(lexer.NewLexer(input))
	rootNode := par.Parse()
	evaluator := NewEvaluator()
	return evaluator.Eval(rootNode)
}

// checkIntegerObject verifies that a result is an Integer with the given value
func checkIntegerObject(t *testing.T, obj objects.PicoObject, expected int64) {
	t.Helper()
	if obj.GetType() != objects.IntegerType {
		t.Errorf("expected %s, got %s (%s)", objects.IntegerType, obj.GetType(), obj.ToString())
		return
	}
	if obj.(*objects.Integer).Value != expected {
		t.Errorf("expected %d, got %d", expected, obj.(*objects.Integer).Value)
	}
}

// checkBooleanObject verifies that a result is a Boolean with the given value
func checkBooleanObject(t *testing.T, obj objects.PicoObject, expected bool) {
	t.Helper()
	if obj.GetType() != objects.BooleanType {
		t.Errorf("expected %s, got %s (%s)", objects.BooleanType, obj.GetType(), obj.ToString())
		return
	}
	if obj.(*objects.Boolean).Value != expected {
		t.Errorf("expected %t, got %t", expected, obj.(*objects.Boolean).Value)
	}
}

// TestEvaluator_Ints verifies integer literal evaluation and arithmetic operations
func TestEvaluator_Ints(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"3 * (3 * 3) + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
		// integer division truncates toward zero
		{"7 / 2", 3},
		{"-7 / 2", -3},
	}

	for _, tt := range tests {
		checkIntegerObject(t, testEval(tt.input), tt.expected)
	}
}

// TestEvaluator_Strings verifies string literal evaluation and concatenation
func TestEvaluator_Strings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"Hello World!"`, "Hello World!"},
		{`"Hello" + " " + "World!"`, "Hello World!"},
		{`"" + ""`, ""},
	}

	for _, tt := range tests {
		result := testEval(tt.input)
		if result.GetType() != objects.StringType {
			t.Errorf("expected %s, got %s (%s)", objects.StringType, result.GetType(), result.ToString())
			continue
		}
		if result.(*objects.String).Value != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, result.(*objects.String).Value)
		}
	}
}

// TestEvaluator_Bools verifies boolean literal evaluation and comparison operations
func TestEvaluator_Bools(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 > 1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 != 2", true},
		{"true == true", true},
		{"false == false", true},
		{"true == false", false},
		{"true != false", true},
		{"(1 < 2) == true", true},
		{"(1 < 2) == false", false},
		{`"a" == "a"`, true},
		{`"a" == "b"`, false},
		{`"a" != "b"`, true},
		// operands of different types are simply unequal
		{"5 == true", false},
		{"5 != true", true},
		{`"5" == 5`, false},
	}

	for _, tt := range tests {
		checkBooleanObject(t, testEval(tt.input), tt.expected)
	}
}

// TestEvaluator_NotOperator verifies truthiness inversion
func TestEvaluator_NotOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!5", false},
		{"!!true", true},
		{"!!false", false},
		{"!!5", true},
		// zero and the empty string are truthy
		{"!0", false},
		{`!""`, false},
	}

	for _, tt := range tests {
		checkBooleanObject(t, testEval(tt.input), tt.expected)
	}
}

// TestEvaluator_IfElse verifies conditional evaluation and the null
// result of a false condition without an alternative
func TestEvaluator_IfElse(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"if (true) { 10 }", int64(10)},
		{"if (false) { 10 }", nil},
		{"if (1) { 10 }", int64(10)},
		{"if (1 < 2) { 10 }", int64(10)},
		{"if (1 > 2) { 10 }", nil},
		{"if (1 > 2) { 10 } else { 20 }", int64(20)},
		{"if (1 < 2) { 10 } else { 20 }", int64(10)},
	}

	for _, tt := range tests {
		result := testEval(tt.input)
		if expected, ok := tt.expected.(int64); ok {
			checkIntegerObject(t, result, expected)
		} else {
			if result != NULL {
				t.Errorf("expected the shared null, got %s (%s)", result.GetType(), result.ToString())
			}
		}
	}
}

// TestEvaluator_Returns verifies return propagation, including a nested
// return travelling through an outer block without being unwrapped early
func TestEvaluator_Returns(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{"if (10 > 1) { if (10 > 1) { return 10; } return 1; }", 10},
	}

	for _, tt := range tests {
		checkIntegerObject(t, testEval(tt.input), tt.expected)
	}
}

// TestEvaluator_Lets verifies let bindings, lookups, and rebinding
func TestEvaluator_Lets(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
		// rebinding goes through the same operation as binding
		{"let a = 5; let a = a + 1; a;", 6},
		// a let statement's own value is the bound value
		{"let a = 5;", 5},
	}

	for _, tt := range tests {
		checkIntegerObject(t, testEval(tt.input), tt.expected)
	}
}

// TestEvaluator_Functions verifies the function value produced by a literal
func TestEvaluator_Functions(t *testing.T) {
	result := testEval("fn(x) { x + 2; };")

	if result.GetType() != objects.FunctionType {
		t.Fatalf("expected %s, got %s (%s)", objects.FunctionType, result.GetType(), result.ToString())
	}

	fn := result.(*function.Function)
	if len(fn.Params) != 1 {
		t.Fatalf("expected 1 parameter, got %d", len(fn.Params))
	}
	if fn.Params[0].Name != "x" {
		t.Errorf("expected parameter x, got %s", fn.Params[0].Name)
	}

	expected := "fn(x) {\n(x + 2)\n}"
	if fn.ToString() != expected {
		t.Errorf("expected %q, got %q", expected, fn.ToString())
	}
}

// TestEvaluator_FunctionCalls verifies calls, argument binding, implicit
// and explicit returns, and immediate invocation of a literal
func TestEvaluator_FunctionCalls(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let identity = fn(x) { x; }; identity(5);", 5},
		{"let identity = fn(x) { return x; }; identity(5);", 5},
		{"let double = fn(x) { x * 2; }; double(5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5, 5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));", 20},
		{"fn(x) { x; }(5)", 5},
	}

	for _, tt := range tests {
		checkIntegerObject(t, testEval(tt.input), tt.expected)
	}
}

// TestEvaluator_Closures verifies that functions capture their defining
// scope by reference, including self-reference through the global scope
func TestEvaluator_Closures(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{
			"let newAdder = fn(x) { fn(y) { x + y }; }; let addTwo = newAdder(2); addTwo(3);",
			5,
		},
		{
			"let newAdder = fn(x) { fn(y) { x + y }; }; let addTen = newAdder(10); addTen(32);",
			42,
		},
		// recursion works because the function captured the scope its own
		// name is later bound into
		{
			"let fact = fn(n) { if (n < 2) { 1 } else { n * fact(n - 1) } }; fact(5);",
			120,
		},
		{
			"let fib = fn(n) { if (n < 2) { n } else { fib(n - 1) + fib(n - 2) } }; fib(10);",
			55,
		},
	}

	for _, tt := range tests {
		checkIntegerObject(t, testEval(tt.input), tt.expected)
	}
}

// TestEvaluator_Errors verifies the canonical runtime error messages and
// that the first error short-circuits the rest of the evaluation
func TestEvaluator_Errors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5 + true;", "type mismatch: INTEGER + BOOLEAN"},
		{"5 + true; 5;", "type mismatch: INTEGER + BOOLEAN"},
		{"-true", "unknown operator: -BOOLEAN"},
		{`-"hi"`, "unknown operator: -STRING"},
		{"true + false;", "unknown operator: BOOLEAN + BOOLEAN"},
		{"5; true + false; 5", "unknown operator: BOOLEAN + BOOLEAN"},
		{"if (10 > 1) { true + false; }", "unknown operator: BOOLEAN + BOOLEAN"},
		{
			"if (10 > 1) { if (10 > 1) { return true + false; } return 1; }",
			"unknown operator: BOOLEAN + BOOLEAN",
		},
		{"foobar", "identifier not found: foobar"},
		{`"Hello" - "World!"`, "unknown operator: STRING - STRING"},
		{`"a" < "b"`, "unknown operator: STRING < STRING"},
		{"5 < true", "type mismatch: INTEGER < BOOLEAN"},
		{"let f = 5; f(1);", "not a function: INTEGER"},
		{"let f = fn(x) { x; }; f(1, 2);", "wrong number of arguments. got=2, want=1"},
		{"let f = fn(x, y) { x + y; }; f(1);", "wrong number of arguments. got=1, want=2"},
		// an error in an argument aborts the call with that single error
		{"let f = fn(x) { x; }; f(missing);", "identifier not found: missing"},
		// an error in the bound expression propagates instead of binding
		{"let a = 5 + true; a;", "type mismatch: INTEGER + BOOLEAN"},
	}

	for _, tt := range tests {
		result := testEval(tt.input)

		if result.GetType() != objects.ErrorType {
			t.Errorf("no error returned for %q, got %s (%s)", tt.input, result.GetType(), result.ToString())
			continue
		}
		if result.(*objects.Error).Message != tt.expected {
			t.Errorf("wrong error for %q: expected %q, got %q", tt.input, tt.expected, result.(*objects.Error).Message)
		}
	}
}

// TestEvaluator_ErrorInspect verifies the inspect form of runtime errors
func TestEvaluator_ErrorInspect(t *testing.T) {
	result := testEval("foobar")
	if result.ToString() != "ERROR: identifier not found: foobar" {
		t.Errorf("unexpected inspect form: %q", result.ToString())
	}
}

// TestEvaluator_EmptyProgram verifies that an empty program evaluates to null
func TestEvaluator_EmptyProgram(t *testing.T) {
	result := testEval("")
	if result != NULL {
		t.Errorf("expected the shared null, got %s", result.GetType())
	}
}

// TestEvaluator_ScopePersistsAcrossEvals verifies REPL-style reuse: one
// evaluator keeps its bindings between separately parsed inputs
func TestEvaluator_ScopePersistsAcrossEvals(t *testing.T) {
	evaluator := NewEvaluator()

	inputs := []string{
		"let counterStep = 7;",
		"let bump = fn(x) { x + counterStep; };",
		"bump(35);",
	}

	var result objects.PicoObject
	for _, input := range inputs {
		par := parser.NewParser(lexer.NewLexer(input))
		result = evaluator.Eval(par.Parse())
	}

	checkIntegerObject(t, result, 42)
}
